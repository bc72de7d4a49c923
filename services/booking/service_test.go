package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"vitago/models"
	"vitago/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) GetByProvider(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProviderAndDate(providerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByClient(clientID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	delete(r.bookings, id)
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, errors.New("provider not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.Profile.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.New("provider not found")
}

func (r *fakeProviderRepo) GetAll() ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProviderRepo) GetByServiceType(service string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		if p.Profile.ServiceType == service {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProviderRepo) Create(p *models.Provider) error {
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *fakeProviderRepo) Update(p *models.Provider) error {
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *fakeProviderRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := r.providers[id]; !ok {
		return errors.New("provider not found")
	}
	return nil
}

func (r *fakeProviderRepo) Delete(id string) error {
	delete(r.providers, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*models.Client)}
}

func (r *fakeClientRepo) GetByID(id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errors.New("client not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByEmail(email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, errors.New("client not found")
}

func (r *fakeClientRepo) Create(c *models.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Update(c *models.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := r.clients[id]; !ok {
		return errors.New("client not found")
	}
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type recordingNotifier struct {
	confirmations []string
	reminders     []string
}

func (n *recordingNotifier) SendBookingConfirmation(b models.Booking, recipient string) error {
	n.confirmations = append(n.confirmations, recipient)
	return nil
}

func (n *recordingNotifier) SendBookingReminder(b models.Booking, recipient string) error {
	n.reminders = append(n.reminders, recipient)
	return nil
}

func completeProvider(id string) *models.Provider {
	return &models.Provider{
		ID: id,
		Profile: models.Profile{
			ProviderName: "Test Provider",
			Email:        id + "@example.com",
			ServiceType:  "cleaning",
		},
		SocialSecurityNumber: "19900101-1234",
		BankDetails: &models.BankDetails{
			Name:           "Swedbank",
			ClearingNumber: "8327",
			BankNumber:     "1234567",
		},
		Consents: &models.Consents{GeneralConsent: true},
	}
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeProviderRepo, *fakeClientRepo, *recordingNotifier) {
	br := newFakeBookingRepo()
	pr := newFakeProviderRepo()
	cr := newFakeClientRepo()
	n := &recordingNotifier{}
	svc := &DefaultBookingService{
		Repo:         br,
		ProviderRepo: pr,
		ClientRepo:   cr,
		Notifier:     n,
		MaxLeadDays:  60,
		DailyLimit:   4,
	}
	return svc, br, pr, cr, n
}

func futureDate(days int) string {
	return schedule.FormatDate(time.Now().AddDate(0, 0, days))
}

func TestCreateBookingPending(t *testing.T) {
	svc, _, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))

	b, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ProviderID:  "p1",
		ServiceType: "cleaning",
		Date:        futureDate(7),
		StartTime:   "09:00",
		EndTime:     "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.PeriodMorning, b.Period)
}

func TestCreateBookingRequiresProviderUnlessGeneral(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ServiceType: "cleaning",
		Date:        futureDate(7),
		StartTime:   "09:00",
	})
	require.Error(t, err)

	b, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ServiceType:    "cleaning",
		Date:           futureDate(7),
		StartTime:      "09:00",
		GeneralRequest: true,
	})
	require.NoError(t, err)
	assert.True(t, b.GeneralRequest)
}

func TestCreateBookingRejectsOutOfRangeDate(t *testing.T) {
	svc, _, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))

	var slotErr *SlotUnavailableError

	_, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ProviderID:  "p1",
		ServiceType: "cleaning",
		Date:        futureDate(-1),
		StartTime:   "09:00",
	})
	require.Error(t, err)
	assert.True(t, errors.As(err, &slotErr))

	_, err = svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ProviderID:  "p1",
		ServiceType: "cleaning",
		Date:        futureDate(61),
		StartTime:   "09:00",
	})
	require.Error(t, err)
	assert.True(t, errors.As(err, &slotErr))
}

func TestCreateBookingRejectsUnavailableWeekday(t *testing.T) {
	svc, _, pr, _, _ := newTestService()
	p := completeProvider("p1")
	// Nothing open anywhere on the grid.
	p.Availability = models.WeeklyAvailability{
		models.PeriodMorning: {"monday": false},
	}
	require.NoError(t, pr.Create(p))

	_, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ProviderID:  "p1",
		ServiceType: "cleaning",
		Date:        futureDate(7),
		StartTime:   "09:00",
	})
	var slotErr *SlotUnavailableError
	require.Error(t, err)
	assert.True(t, errors.As(err, &slotErr))
}

func TestCreateBookingRejectsOccupiedTime(t *testing.T) {
	svc, br, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))
	date := futureDate(7)
	require.NoError(t, br.Create(&models.Booking{
		ID:         "b0",
		ProviderID: "p1",
		ClientID:   "other",
		Date:       date,
		StartTime:  "09:00",
		EndTime:    "10:00",
		Status:     models.BookingStatusAccepted,
	}))

	_, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ProviderID:  "p1",
		ServiceType: "cleaning",
		Date:        date,
		StartTime:   "09:30",
	})
	var slotErr *SlotUnavailableError
	require.Error(t, err)
	assert.True(t, errors.As(err, &slotErr))

	b, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ProviderID:  "p1",
		ServiceType: "cleaning",
		Date:        date,
		StartTime:   "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", b.StartTime)
}

func TestCreateBookingRejectsFullyBookedDate(t *testing.T) {
	svc, br, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))
	date := futureDate(7)
	for i, start := range []string{"08:00", "10:00", "12:00", "14:00"} {
		require.NoError(t, br.Create(&models.Booking{
			ID:         string(rune('a' + i)),
			ProviderID: "p1",
			ClientID:   "other",
			Date:       date,
			StartTime:  start,
			EndTime:    start,
			Status:     models.BookingStatusPending,
		}))
	}

	_, err := svc.CreateBooking(context.Background(), "c1", models.BookingRequest{
		ProviderID:  "p1",
		ServiceType: "cleaning",
		Date:        date,
		StartTime:   "16:00",
	})
	var slotErr *SlotUnavailableError
	require.Error(t, err)
	assert.True(t, errors.As(err, &slotErr))
}

func TestAcceptBookingRequiresCompleteProfile(t *testing.T) {
	svc, br, pr, cr, n := newTestService()

	p := completeProvider("p1")
	p.BankDetails = nil
	p.Consents = nil
	require.NoError(t, pr.Create(p))
	require.NoError(t, cr.Create(&models.Client{ID: "c1", Email: "c1@example.com"}))
	require.NoError(t, br.Create(&models.Booking{
		ID:         "b1",
		ProviderID: "p1",
		ClientID:   "c1",
		Date:       futureDate(7),
		StartTime:  "09:00",
		Status:     models.BookingStatusPending,
	}))

	_, err := svc.AcceptBooking(context.Background(), "p1", "b1")
	var incomplete *IncompleteProfileError
	require.Error(t, err)
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []string{models.FieldBankDetails, models.FieldConsents}, incomplete.Missing)

	stored, err := br.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
	assert.Empty(t, n.confirmations)
}

func TestAcceptBookingUsesFreshProviderData(t *testing.T) {
	svc, br, pr, cr, _ := newTestService()

	p := completeProvider("p1")
	p.Consents = nil
	require.NoError(t, pr.Create(p))
	require.NoError(t, cr.Create(&models.Client{ID: "c1", Email: "c1@example.com"}))
	require.NoError(t, br.Create(&models.Booking{
		ID:         "b1",
		ProviderID: "p1",
		ClientID:   "c1",
		Date:       futureDate(7),
		StartTime:  "09:00",
		Status:     models.BookingStatusPending,
	}))

	_, err := svc.AcceptBooking(context.Background(), "p1", "b1")
	require.Error(t, err)

	// Complete the profile, then the same call goes through.
	p.Consents = &models.Consents{GeneralConsent: true}
	require.NoError(t, pr.Update(p))

	b, err := svc.AcceptBooking(context.Background(), "p1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, b.Status)
}

func TestAcceptBookingSendsConfirmation(t *testing.T) {
	svc, br, pr, cr, n := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))
	require.NoError(t, cr.Create(&models.Client{ID: "c1", Email: "c1@example.com"}))
	require.NoError(t, br.Create(&models.Booking{
		ID:         "b1",
		ProviderID: "p1",
		ClientID:   "c1",
		Date:       futureDate(7),
		StartTime:  "09:00",
		Status:     models.BookingStatusPending,
	}))

	_, err := svc.AcceptBooking(context.Background(), "p1", "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1@example.com"}, n.confirmations)
}

func TestReminderFireAtUsesStartInstant(t *testing.T) {
	fireAt, err := reminderFireAt(models.Booking{
		Date:      "2030-06-10",
		StartTime: "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 9, 14, 0, 0, 0, time.UTC), fireAt)
}

func TestReminderFireAtWithinTwoDaysStaysFuture(t *testing.T) {
	// Accepted ~36h before the start: 24h before the start instant is
	// still ahead, even though 24h before the date's midnight is not.
	start := time.Now().UTC().Add(36 * time.Hour)
	b := models.Booking{
		Date:      schedule.FormatDate(start),
		StartTime: schedule.FormatTime(start.Hour(), start.Minute()-start.Minute()%5),
	}
	fireAt, err := reminderFireAt(b)
	require.NoError(t, err)
	assert.True(t, fireAt.After(time.Now()))
}

func TestReminderFireAtInvalidTimes(t *testing.T) {
	_, err := reminderFireAt(models.Booking{Date: "2030-06-10", StartTime: "25:00"})
	require.Error(t, err)
	_, err = reminderFireAt(models.Booking{Date: "not-a-date", StartTime: "14:00"})
	require.Error(t, err)
}

func TestAcceptBookingWrongProvider(t *testing.T) {
	svc, br, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))
	require.NoError(t, br.Create(&models.Booking{
		ID:         "b1",
		ProviderID: "p1",
		ClientID:   "c1",
		Status:     models.BookingStatusPending,
	}))

	_, err := svc.AcceptBooking(context.Background(), "p2", "b1")
	require.Error(t, err)
}

func TestBookingStatusTransitions(t *testing.T) {
	svc, br, pr, cr, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))
	require.NoError(t, cr.Create(&models.Client{ID: "c1", Email: "c1@example.com"}))

	seed := func(id, status string) {
		require.NoError(t, br.Create(&models.Booking{
			ID:         id,
			ProviderID: "p1",
			ClientID:   "c1",
			Date:       futureDate(7),
			StartTime:  "09:00",
			Status:     status,
		}))
	}
	ctx := context.Background()
	var transition *InvalidTransitionError

	// Accept and decline only apply to pending bookings.
	seed("b1", models.BookingStatusDeclined)
	_, err := svc.AcceptBooking(ctx, "p1", "b1")
	require.Error(t, err)
	assert.True(t, errors.As(err, &transition))

	seed("b2", models.BookingStatusAccepted)
	_, err = svc.DeclineBooking(ctx, "p1", "b2")
	require.Error(t, err)
	assert.True(t, errors.As(err, &transition))

	// Complete only applies to accepted bookings.
	seed("b3", models.BookingStatusPending)
	_, err = svc.CompleteBooking(ctx, "p1", "b3")
	require.Error(t, err)
	assert.True(t, errors.As(err, &transition))

	b, err := svc.CompleteBooking(ctx, "p1", "b2")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, b.Status)

	// Cancel applies while the booking is still active.
	b, err = svc.CancelBooking(ctx, "c1", "b3")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)

	_, err = svc.CancelBooking(ctx, "c1", "b1")
	require.Error(t, err)
	assert.True(t, errors.As(err, &transition))
}

func TestDeclineBooking(t *testing.T) {
	svc, br, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))
	require.NoError(t, br.Create(&models.Booking{
		ID:         "b1",
		ProviderID: "p1",
		ClientID:   "c1",
		Status:     models.BookingStatusPending,
	}))

	b, err := svc.DeclineBooking(context.Background(), "p1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusDeclined, b.Status)
}

func TestMonthOptionsShape(t *testing.T) {
	svc, _, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))

	now := time.Now()
	out, err := svc.MonthOptions(context.Background(), "p1", now.Year(), int(now.Month()), false)
	require.NoError(t, err)

	grid := schedule.NewMonthGrid(now.Year(), now.Month())
	assert.Equal(t, grid.LeadingBlanks, out.LeadingBlanks)
	assert.Len(t, out.Dates, grid.DaysInMonth)

	// Yesterday is below the minimum date, tomorrow is within range.
	for _, d := range out.Dates {
		switch d.Date {
		case schedule.FormatDate(now.AddDate(0, 0, -1)):
			assert.False(t, d.Selectable)
		case schedule.FormatDate(now.AddDate(0, 0, 1)):
			assert.True(t, d.Selectable)
			assert.NotEmpty(t, d.Periods)
		}
	}
}

func TestMonthOptionsRejectsBadMonth(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.MonthOptions(context.Background(), "p1", 2026, 13, false)
	require.Error(t, err)
}

func TestTimeOptionsForDateMarksOccupiedSlots(t *testing.T) {
	svc, br, pr, _, _ := newTestService()
	require.NoError(t, pr.Create(completeProvider("p1")))
	date := futureDate(7)
	require.NoError(t, br.Create(&models.Booking{
		ID:         "b1",
		ProviderID: "p1",
		ClientID:   "c1",
		Date:       date,
		StartTime:  "09:00",
		EndTime:    "09:10",
		Status:     models.BookingStatusAccepted,
	}))

	out, err := svc.TimeOptionsForDate(context.Background(), "p1", date, false)
	require.NoError(t, err)
	require.Len(t, out.Options, 288)

	byTime := make(map[string]bool, len(out.Options))
	for _, o := range out.Options {
		byTime[o.Time] = o.Available
	}
	assert.False(t, byTime["09:00"])
	assert.False(t, byTime["09:05"])
	assert.True(t, byTime["09:10"])
	assert.True(t, byTime["10:00"])
}

func TestTimeOptionsForDateInvalidDate(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.TimeOptionsForDate(context.Background(), "p1", "not-a-date", false)
	require.Error(t, err)
}
