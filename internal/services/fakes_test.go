package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/database"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/pkg/geoip"
	"github.com/princeomar/cruise-backend/pkg/notify"
)

var errBoom = errors.New("boom")

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func runInline(f func()) { f() }

// cairo stands in for Africa/Cairo without depending on tzdata
var cairo = time.FixedZone("EET", 2*60*60)

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
	calls    int
}

func (f *fakeBookingStore) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) List(_ context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if status == nil || b.Status == *status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id uuid.UUID, next models.BookingStatus) (*models.Booking, error) {
	f.calls++
	for i := range f.bookings {
		if f.bookings[i].ID != id {
			continue
		}
		if f.bookings[i].Status != models.BookingStatusPending {
			return nil, database.ErrBookingNotPending
		}
		f.bookings[i].Status = next
		updated := f.bookings[i]
		return &updated, nil
	}
	return nil, database.ErrNotFound
}

type fakeVisitStore struct {
	mu     sync.Mutex
	visits []models.Visit
	err    error
}

func (f *fakeVisitStore) Create(_ context.Context, v *models.Visit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	v.ID = uuid.New()
	f.visits = append(f.visits, *v)
	return nil
}

func (f *fakeVisitStore) List(_ context.Context) ([]models.Visit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.visits, nil
}

type fakeLocator struct {
	loc   *geoip.Location
	err   error
	calls int
}

func (f *fakeLocator) Locate(_ context.Context, _ string) (*geoip.Location, error) {
	f.calls++
	return f.loc, f.err
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notify.BookingEvent
	err    error
}

func (f *fakeNotifier) Name() string { return "fake" }

func (f *fakeNotifier) Notify(_ context.Context, event notify.BookingEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

type fakeAuditor struct {
	mu     sync.Mutex
	events []AuditEvent
}

func (f *fakeAuditor) Log(_ context.Context, event AuditEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeAuditor) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Action)
	}
	return out
}

type fakeUsers struct {
	byID map[uuid.UUID]*models.AdminUser
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*models.AdminUser{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.AdminUser) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return database.ErrDuplicate
		}
	}
	u.ID = uuid.New()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.AdminUser, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	now := time.Now()
	f.byID[id].LastLoginAt = &now
	return nil
}

type fakeRoles struct {
	grants map[uuid.UUID][]string
}

func newFakeRoles() *fakeRoles {
	return &fakeRoles{grants: map[uuid.UUID][]string{}}
}

func (f *fakeRoles) HasRole(_ context.Context, userID uuid.UUID, role string) (bool, error) {
	for _, r := range f.grants[userID] {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoles) ListRoles(_ context.Context, userID uuid.UUID) ([]string, error) {
	return append([]string{}, f.grants[userID]...), nil
}

func (f *fakeRoles) Grant(_ context.Context, userID uuid.UUID, role string, grantedBy *uuid.UUID) (*models.UserRole, error) {
	if ok, _ := f.HasRole(context.Background(), userID, role); !ok {
		f.grants[userID] = append(f.grants[userID], role)
	}
	return &models.UserRole{ID: uuid.New(), UserID: userID, Role: role, GrantedBy: grantedBy}, nil
}

type fakeSessions struct {
	tokens     map[string]*models.RefreshToken
	revokedAll []uuid.UUID
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeSessions) Store(_ context.Context, userID uuid.UUID, token, _, _ string, expiresAt time.Time) error {
	f.tokens[token] = &models.RefreshToken{ID: uuid.New(), AdminUserID: userID, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeSessions) Get(_ context.Context, token string) (*models.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeSessions) MarkUsed(_ context.Context, _ string) error { return nil }

func (f *fakeSessions) Revoke(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return database.ErrNotFound
	}
	t.Revoked = true
	return nil
}

func (f *fakeSessions) RevokeAllForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	f.revokedAll = append(f.revokedAll, userID)
	var n int64
	for _, t := range f.tokens {
		if t.AdminUserID == userID && !t.Revoked {
			t.Revoked = true
			n++
		}
	}
	return n, nil
}

func (f *fakeSessions) active(userID uuid.UUID) int {
	n := 0
	for _, t := range f.tokens {
		if t.AdminUserID == userID && !t.Revoked {
			n++
		}
	}
	return n
}
