package provider

import (
	"context"
	"fmt"
	"time"

	"vitago/models"
	"vitago/services/availability"
	"vitago/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// RegisterProvider creates a provider account, hashes its password and
// returns an authenticated session.
func (s *DefaultProviderService) RegisterProvider(ctx context.Context, p models.Provider) (*models.ProviderAuthResponse, error) {
	if p.Profile.Email == "" || p.Security.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if existing, _ := s.Repo.GetByEmail(p.Profile.Email); existing != nil {
		return nil, fmt.Errorf("provider with email %s already exists", p.Profile.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p.ID = uuid.NewString()
	p.Security = models.Security{PasswordHash: string(hash)}
	p.Profile.Status = "active"
	p.Availability = availability.NormalizeGrid(p.Availability)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	token, err := utils.GenerateToken(p.ID, p.Profile.Email, "provider", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	p.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}

	p.Security = models.Security{}
	return &models.ProviderAuthResponse{Provider: p, Token: token}, nil
}

// AuthenticateProvider verifies credentials and issues a fresh token.
func (s *DefaultProviderService) AuthenticateProvider(ctx context.Context, email, password string) (*models.ProviderAuthResponse, error) {
	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(p.ID, p.Profile.Email, "provider", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	updateDoc := bson.M{"$set": bson.M{"security.tokenHash": tokenHash, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(p.ID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	p.Availability = availability.NormalizeGrid(p.Availability)
	p.Security = models.Security{}
	return &models.ProviderAuthResponse{Provider: *p, Token: token}, nil
}

// RevokeProviderAuthToken clears the stored token hash and the auth cache entry.
func (s *DefaultProviderService) RevokeProviderAuthToken(providerID string) error {
	updateDoc := bson.M{"$set": bson.M{"security.tokenHash": "", "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(providerID, updateDoc); err != nil {
		return fmt.Errorf("failed to revoke provider auth token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + providerID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		zap.L().Error("Failed to clear auth cache on revoke", zap.Error(err))
	}
	return nil
}
