package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the audit
// trail collection.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event. Events are best-effort: a failed
// insert is reported to the dispatcher, which logs and drops it.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if event.Action == "" {
		return fmt.Errorf("audit event without action")
	}
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	s.log.Debug().
		Str("actor", event.Actor).
		Str("action", event.Action).
		Msg("audit event recorded")

	return nil
}
