package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/models"
)

const (
	jobTimeout         = 2 * time.Minute
	tokenCleanupSpec   = "0 30 3 * * *"
	auditCleanupSpec   = "0 0 4 * * 0"
	auditRetention     = 180 * 24 * time.Hour
	expiredTokenMaxAge = 7 * 24 * time.Hour
)

// DashboardSource computes the dashboard view
type DashboardSource interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

// DigestSender delivers the daily digest
type DigestSender interface {
	Send(subject, body string) error
}

// TokenCleaner removes expired refresh tokens
type TokenCleaner interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditCleaner removes old audit rows
type AuditCleaner interface {
	CleanupOldAuditLogs(ctx context.Context, olderThan time.Duration) (int64, error)
}

// CronJobs groups the dependencies of scheduled jobs. Nil members disable their job.
type CronJobs struct {
	Dashboard DashboardSource
	Digest    DigestSender
	Tokens    TokenCleaner
	Audit     AuditCleaner
}

// CronService manages scheduled background jobs
type CronService struct {
	cron       *cron.Cron
	jobs       CronJobs
	digestSpec string
	loc        *time.Location
	logger     logrus.FieldLogger
}

// NewCronService creates a new CronService. Specs use six fields (with seconds)
// and are evaluated in loc.
func NewCronService(jobs CronJobs, digestSpec string, loc *time.Location, logger logrus.FieldLogger) *CronService {
	if loc == nil {
		loc = time.UTC
	}
	return &CronService{
		cron:       cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		jobs:       jobs,
		digestSpec: digestSpec,
		loc:        loc,
		logger:     logger,
	}
}

// Start schedules all jobs and starts the scheduler
func (s *CronService) Start() error {
	s.logger.Info("Starting cron service...")

	if s.jobs.Dashboard != nil && s.digestSpec != "" {
		if _, err := s.cron.AddFunc(s.digestSpec, s.digestJob); err != nil {
			return fmt.Errorf("failed to schedule digest job: %w", err)
		}
		s.logger.WithField("spec", s.digestSpec).Info("Scheduled: daily booking digest")
	}

	if s.jobs.Tokens != nil {
		if _, err := s.cron.AddFunc(tokenCleanupSpec, s.tokenCleanupJob); err != nil {
			return fmt.Errorf("failed to schedule token cleanup job: %w", err)
		}
		s.logger.WithField("spec", tokenCleanupSpec).Info("Scheduled: expired refresh token cleanup")
	}

	if s.jobs.Audit != nil {
		if _, err := s.cron.AddFunc(auditCleanupSpec, s.auditCleanupJob); err != nil {
			return fmt.Errorf("failed to schedule audit cleanup job: %w", err)
		}
		s.logger.WithField("spec", auditCleanupSpec).Info("Scheduled: audit log cleanup")
	}

	s.cron.Start()
	s.logger.Info("Cron service started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	s.logger.Info("Stopping cron service...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron service stopped")
}

// RunDigestNow computes and delivers the digest immediately
func (s *CronService) RunDigestNow(ctx context.Context) error {
	if s.jobs.Dashboard == nil {
		return fmt.Errorf("digest job is not configured")
	}
	stats, err := s.jobs.Dashboard.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute dashboard: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"job":            "digest",
		"total_visits":   stats.TotalVisits,
		"today_visits":   stats.TodayVisits,
		"total_bookings": stats.TotalBookings,
		"pending":        stats.BookingsByStatus.Pending,
		"revenue":        stats.Revenue,
	}).Info("Daily digest computed")

	if s.jobs.Digest == nil {
		return nil
	}
	subject := fmt.Sprintf("Daily digest %s", stats.GeneratedAt.In(s.loc).Format(models.DateLayout))
	if err := s.jobs.Digest.Send(subject, FormatDigest(stats)); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}

func (s *CronService) digestJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	if err := s.RunDigestNow(ctx); err != nil {
		s.logger.WithError(err).WithField("job", "digest").Error("Cron job failed")
		return
	}
	s.logger.WithFields(logrus.Fields{"job": "digest", "duration": time.Since(start).String()}).Info("Cron job finished")
}

func (s *CronService) tokenCleanupJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	removed, err := s.jobs.Tokens.DeleteExpired(ctx, time.Now().Add(-expiredTokenMaxAge))
	if err != nil {
		s.logger.WithError(err).WithField("job", "token_cleanup").Error("Cron job failed")
		return
	}
	s.logger.WithFields(logrus.Fields{"job": "token_cleanup", "removed": removed}).Info("Cron job finished")
}

func (s *CronService) auditCleanupJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	removed, err := s.jobs.Audit.CleanupOldAuditLogs(ctx, auditRetention)
	if err != nil {
		s.logger.WithError(err).WithField("job", "audit_cleanup").Error("Cron job failed")
		return
	}
	s.logger.WithFields(logrus.Fields{"job": "audit_cleanup", "removed": removed}).Info("Cron job finished")
}

// FormatDigest renders the dashboard as a plain-text email body
func FormatDigest(stats *models.DashboardStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Visits today: %d\n", stats.TodayVisits)
	fmt.Fprintf(&b, "Visits this week: %d\n", stats.WeekVisits)
	fmt.Fprintf(&b, "Visits total: %d (%d countries)\n\n", stats.TotalVisits, stats.UniqueCountries)
	fmt.Fprintf(&b, "Bookings: %d total, %d pending, %d confirmed, %d cancelled\n",
		stats.TotalBookings,
		stats.BookingsByStatus.Pending,
		stats.BookingsByStatus.Confirmed,
		stats.BookingsByStatus.Cancelled)
	fmt.Fprintf(&b, "Confirmed revenue: $%d\n", stats.Revenue)

	if len(stats.Countries) > 0 {
		b.WriteString("\nTop countries:\n")
		for _, c := range stats.Countries {
			fmt.Fprintf(&b, "  %s: %d (%d%%)\n", c.Country, c.Visits, c.Percentage)
		}
	}
	return b.String()
}
