package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type mockActivityRepo struct {
	personal []repository.ActivityEvent
	org      []repository.ActivityEvent

	personalLimit int
	orgLimit      int
	recorded      []repository.ActivityEvent
}

func (m *mockActivityRepo) ListPersonal(_ context.Context, _ uuid.UUID, limit int) ([]repository.ActivityEvent, error) {
	m.personalLimit = limit
	return m.personal, nil
}

func (m *mockActivityRepo) ListOrg(_ context.Context, limit int) ([]repository.ActivityEvent, error) {
	m.orgLimit = limit
	return m.org, nil
}

func (m *mockActivityRepo) Record(_ context.Context, ev repository.ActivityEvent) error {
	m.recorded = append(m.recorded, ev)
	return nil
}

func TestRecentActivity_MergesAndExcludesOwnOrgRows(t *testing.T) {
	requester := uuid.New()
	other := uuid.New()

	events := &mockActivityRepo{
		personal: []repository.ActivityEvent{
			{ID: uuid.New(), OwnerID: requester, Action: "skill_added", Subject: "Go", OccurredAt: "2026-08-30T10:00:00Z"},
		},
		org: []repository.ActivityEvent{
			// The requester's own row appears in the org feed too; it must
			// not come back twice.
			{ID: uuid.New(), OwnerID: requester, Action: "skill_added", Subject: "Go", OccurredAt: "2026-08-30T10:00:00Z"},
			{ID: uuid.New(), OwnerID: other, Action: "skill_updated", Subject: "SQL", OccurredAt: "2026-08-31T09:00:00Z"},
		},
	}
	uc := NewActivityUsecase(mockEmployeeRepo{exists: true}, events, discardLogger())

	out, err := uc.RecentActivity(context.Background(), requester, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 merged events, got %d", len(out))
	}
	if out[0].Subject != "SQL" || out[1].Subject != "Go" {
		t.Fatalf("expected newest-first ordering, got %+v", out)
	}
	if events.personalLimit != 10 || events.orgLimit != 20 {
		t.Fatalf("unexpected fetch limits: personal=%d org=%d", events.personalLimit, events.orgLimit)
	}
}

func TestRecentActivity_LimitDefaultsAndClamps(t *testing.T) {
	events := &mockActivityRepo{}
	uc := NewActivityUsecase(mockEmployeeRepo{exists: true}, events, discardLogger())

	if _, err := uc.RecentActivity(context.Background(), uuid.New(), 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if events.personalLimit != defaultActivityLimit {
		t.Fatalf("expected default limit %d, got %d", defaultActivityLimit, events.personalLimit)
	}

	if _, err := uc.RecentActivity(context.Background(), uuid.New(), 500); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if events.personalLimit != maxActivityLimit {
		t.Fatalf("expected clamp to %d, got %d", maxActivityLimit, events.personalLimit)
	}

	if _, err := uc.RecentActivity(context.Background(), uuid.New(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative limit, got %v", err)
	}
}

func TestRecentActivity_UnknownEmployee(t *testing.T) {
	uc := NewActivityUsecase(mockEmployeeRepo{exists: false}, &mockActivityRepo{}, discardLogger())
	if _, err := uc.RecentActivity(context.Background(), uuid.New(), 5); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
