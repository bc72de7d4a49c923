// Package report handles the post-service reports the two parties of a
// completed booking file about each other. Client-to-provider reports carry
// a rating that feeds the provider's public average.
package report

import (
	"context"
	"fmt"
	"time"

	bookingRepo "vitago/database/repository/booking"
	reportRepo "vitago/database/repository/report"
	"vitago/models"
	"vitago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportRequest is the payload for filing a report.
type ReportRequest struct {
	BookingID string  `json:"bookingId" binding:"required"`
	Rating    float64 `json:"rating" binding:"required"`
	Comment   string  `json:"comment"`
}

// RatingApplier stores a recomputed provider rating. Satisfied by the
// provider service.
type RatingApplier interface {
	ApplyRating(ctx context.Context, providerID string, rating float64, count int) error
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Repo        reportRepo.ReportRepository
	BookingRepo bookingRepo.BookingRepository
	Ratings     RatingApplier
}

// ReportService defines post-service report operations.
type ReportService interface {
	// FileReport records a report from one booking party about the other.
	// direction names the author side, one of the ReportDirection constants.
	FileReport(ctx context.Context, authorID, direction string, req ReportRequest) (*models.Report, error)
	GetReportsByBooking(ctx context.Context, bookingID string) ([]models.Report, error)
	GetReportsByProvider(ctx context.Context, providerID string) ([]models.Report, error)
}

var _ ReportService = (*DefaultReportService)(nil)

// FileReport validates the report against its booking and stores it. A
// client-to-provider report also refreshes the provider's average rating.
// Reports are only accepted on completed bookings.
func (s *DefaultReportService) FileReport(ctx context.Context, authorID, direction string, req ReportRequest) (*models.Report, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %g", req.Rating)
	}

	b, err := s.BookingRepo.GetByID(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	if b.Status != models.BookingStatusCompleted {
		return nil, fmt.Errorf("reports can only be filed on completed bookings, booking is %s", b.Status)
	}

	switch direction {
	case models.ReportDirectionClientToProvider:
		if b.ClientID != authorID {
			return nil, fmt.Errorf("booking %s does not belong to client %s", req.BookingID, authorID)
		}
	case models.ReportDirectionProviderToClient:
		if b.ProviderID != authorID {
			return nil, fmt.Errorf("booking %s does not belong to provider %s", req.BookingID, authorID)
		}
	default:
		return nil, fmt.Errorf("invalid report direction: %q", direction)
	}

	existing, err := s.Repo.GetByBooking(req.BookingID)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.Direction == direction {
			return nil, fmt.Errorf("a %s report already exists for booking %s", direction, req.BookingID)
		}
	}

	report := models.Report{
		ID:         uuid.NewString(),
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		ClientID:   b.ClientID,
		Direction:  direction,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(&report); err != nil {
		return nil, err
	}

	if direction == models.ReportDirectionClientToProvider {
		s.refreshProviderRating(ctx, b.ProviderID)
	}
	return &report, nil
}

// refreshProviderRating recomputes the provider average from stored reports.
// A failure here leaves the report in place and only logs.
func (s *DefaultReportService) refreshProviderRating(ctx context.Context, providerID string) {
	logger := utils.GetLogger()
	avg, count, err := s.Repo.AverageProviderRating(providerID)
	if err != nil {
		logger.Warn("failed to compute provider rating", zap.String("providerID", providerID), zap.Error(err))
		return
	}
	if err := s.Ratings.ApplyRating(ctx, providerID, avg, count); err != nil {
		logger.Warn("failed to store provider rating", zap.String("providerID", providerID), zap.Error(err))
	}
}

func (s *DefaultReportService) GetReportsByBooking(ctx context.Context, bookingID string) ([]models.Report, error) {
	return s.Repo.GetByBooking(bookingID)
}

func (s *DefaultReportService) GetReportsByProvider(ctx context.Context, providerID string) ([]models.Report, error) {
	return s.Repo.GetByProvider(providerID)
}
