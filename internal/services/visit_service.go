package services

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/utils"
	"github.com/princeomar/cruise-backend/pkg/geoip"
)

const visitInsertTimeout = 10 * time.Second

// VisitStore persists page views
type VisitStore interface {
	Create(ctx context.Context, v *models.Visit) error
}

// VisitInput describes one page view as seen by the HTTP layer
type VisitInput struct {
	PagePath  string
	Referrer  string
	IP        string
	UserAgent string
}

// VisitService records page views with best-effort geography
type VisitService struct {
	store         VisitStore
	locator       geoip.Locator
	lookupTimeout time.Duration
	logger        logrus.FieldLogger
	wg            sync.WaitGroup
}

// NewVisitService creates a new visit service. locator may be nil, in which
// case every visit is stored without geography.
func NewVisitService(store VisitStore, locator geoip.Locator, lookupTimeout time.Duration, logger logrus.FieldLogger) *VisitService {
	if lookupTimeout <= 0 {
		lookupTimeout = 5 * time.Second
	}
	return &VisitService{
		store:         store,
		locator:       locator,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Track records a visit in the background and returns immediately.
// The work is detached from ctx so it outlives the request.
func (s *VisitService) Track(ctx context.Context, in VisitInput) {
	detached := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Record(detached, in)
	}()
}

// Wait blocks until every tracked visit has been recorded or dropped
func (s *VisitService) Wait() {
	s.wg.Wait()
}

// Record looks up the visitor's location and inserts the visit.
// Lookup failures leave geography empty; insert failures are logged and dropped.
func (s *VisitService) Record(ctx context.Context, in VisitInput) {
	device := utils.ParseUserAgent(in.UserAgent)
	visit := &models.Visit{
		PagePath:   in.PagePath,
		UserAgent:  in.UserAgent,
		Referrer:   optional(in.Referrer),
		DeviceType: device.DeviceType,
		Browser:    device.Browser,
		OS:         device.OS,
		IsBot:      device.IsBot,
	}

	if loc := s.locate(ctx, in.IP); loc != nil {
		visit.Country = optional(loc.Country)
		visit.CountryCode = optional(loc.CountryCode)
		visit.City = optional(loc.City)
	}

	insertCtx, cancel := context.WithTimeout(ctx, visitInsertTimeout)
	defer cancel()
	if err := s.store.Create(insertCtx, visit); err != nil {
		s.logger.WithFields(logrus.Fields{
			"page_path": in.PagePath,
			"error":     err.Error(),
		}).Error("Failed to record visit")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"visit_id":  visit.ID,
		"page_path": visit.PagePath,
		"device":    visit.DeviceType,
	}).Debug("Visit recorded")
}

func (s *VisitService) locate(ctx context.Context, ip string) *geoip.Location {
	if s.locator == nil {
		return nil
	}
	parsed := net.ParseIP(ip)
	if parsed == nil || !geoip.IsPublic(parsed) {
		return nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()
	loc, err := s.locator.Locate(lookupCtx, ip)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"ip":    ip,
			"error": err.Error(),
		}).Warn("Geolocation lookup failed")
		return nil
	}
	return loc
}
