package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"studentregistry/internal/models"
	"studentregistry/internal/repository"
)

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// AuditService exposes the trail with normalized filters.
type AuditService struct {
	audit repository.Audit
}

func NewAuditService(audit repository.Audit) *AuditService {
	return &AuditService{audit: audit}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f AuditFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	eventType := strings.TrimSpace(strings.ToUpper(f.Type))
	return from, to, eventType, nil
}

func (s *AuditService) List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.audit.List(ctx, from, to, typ)
}

// defaultAuditRetention applies when config leaves the window unset.
const defaultAuditRetention = 90 * 24 * time.Hour

// RetentionService prunes audit events older than the retention window.
type RetentionService struct {
	audit  repository.Audit
	window time.Duration
}

func NewRetentionService(audit repository.Audit, window time.Duration) *RetentionService {
	if window <= 0 {
		window = defaultAuditRetention
	}
	return &RetentionService{audit: audit, window: window}
}

// Run ticks at the given interval until ctx is canceled, deleting events
// that fell out of the retention window. Prune errors are skipped; the next
// tick retries.
func (s *RetentionService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			_, _ = s.audit.DeleteOlderThan(ctx, now.Add(-s.window))
		}
	}
}
