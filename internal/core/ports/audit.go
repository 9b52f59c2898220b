package ports

import (
	"context"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// AuditRepository persists audit events to the audit trail collection.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes audit events dequeued by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink is where request-path code drops audit events. Implementations
// must not block the caller; recording is best-effort and never affects the
// outcome of the request that produced the event.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
