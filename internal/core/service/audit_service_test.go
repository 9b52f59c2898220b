package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

type stubAuditRepo struct {
	events []*domain.AuditEvent
	err    error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := domain.AuditEvent{Actor: "u1", Action: "login_succeeded", Timestamp: time.Now()}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(repo.events) != 1 || repo.events[0].Action != "login_succeeded" {
		t.Fatalf("event not persisted: %+v", repo.events)
	}
}

func TestAuditService_Process_MissingAction(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{}, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.AuditEvent{Actor: "u1"}); err == nil {
		t.Fatalf("expected error for event without action")
	}
}

func TestAuditService_Process_RepoFailure(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{err: errors.New("down")}, zerolog.Nop())

	err := svc.Process(context.Background(), domain.AuditEvent{Actor: "u1", Action: "login_failed"})
	if err == nil {
		t.Fatalf("expected error when repository fails")
	}
}
