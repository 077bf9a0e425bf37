package suppression

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ignite/emspanel/internal/domain"
)

type mockRepo struct {
	listCalls  int
	lastFilter ListFilter
}

func (m *mockRepo) List(_ context.Context, f ListFilter) ([]domain.Suppression, domain.Page, error) {
	m.listCalls++
	m.lastFilter = f
	return []domain.Suppression{{ID: 101, Email: "bounce@remote.test", Type: domain.SuppressionHardBounce}},
		domain.Page{Page: 1, PerPage: 10, ItemsOnCurrentPage: 1, TotalItems: 1}, nil
}

func TestList_PassesFilterThrough(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	filter := ListFilter{DateFrom: &from, DateTo: &to, Page: 1, PerPage: 10}

	items, _, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 suppression, got %d", len(items))
	}
	if repo.lastFilter.DateFrom != &from || repo.lastFilter.DateTo != &to {
		t.Error("expected the date range to pass through unchanged")
	}
}

func TestList_RejectsReversedDateRange(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	from := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.List(context.Background(), ListFilter{DateFrom: &from, DateTo: &to})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
	if repo.listCalls != 0 {
		t.Error("expected no network call for a reversed range")
	}
}

func TestList_OpenEndedRangesAllowed(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, _, err := svc.List(ctx, ListFilter{DateFrom: &from}); err != nil {
		t.Fatalf("from-only range: %v", err)
	}
	if _, _, err := svc.List(ctx, ListFilter{DateTo: &from}); err != nil {
		t.Fatalf("to-only range: %v", err)
	}
	if _, _, err := svc.List(ctx, ListFilter{}); err != nil {
		t.Fatalf("no range: %v", err)
	}
}
