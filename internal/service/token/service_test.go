package token

import (
	"context"
	"errors"
	"testing"

	"github.com/ignite/emspanel/internal/domain"
)

type mockRepo struct {
	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastFilter ListFilter
	lastName   string
	lastState  domain.TokenState
}

func (m *mockRepo) List(_ context.Context, f ListFilter) ([]domain.Token, domain.Page, error) {
	m.listCalls++
	m.lastFilter = f
	return []domain.Token{{Name: "production", State: domain.TokenStateActive}},
		domain.Page{Page: f.Page, PerPage: f.PerPage, ItemsOnCurrentPage: 1, TotalItems: 1}, nil
}

func (m *mockRepo) Create(_ context.Context, name string) (*domain.Token, error) {
	m.createCalls++
	m.lastName = name
	return &domain.Token{Name: name, State: domain.TokenStateActive}, nil
}

func (m *mockRepo) Update(_ context.Context, token, name string, state domain.TokenState) (*domain.Token, error) {
	m.updateCalls++
	m.lastName = name
	m.lastState = state
	return &domain.Token{Name: name, Value: token, State: state}, nil
}

func (m *mockRepo) Delete(_ context.Context, _ string) error {
	m.deleteCalls++
	return nil
}

func TestList_PassesFilterThrough(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	filter := ListFilter{Page: 2, PerPage: 25, OrderBy: "createdAt", OrderDirection: "desc"}
	tokens, page, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if repo.lastFilter != filter {
		t.Errorf("filter not passed through: %+v", repo.lastFilter)
	}
	if page.Page != 2 {
		t.Errorf("unexpected page %d", page.Page)
	}
}

func TestCreate_RejectsBlankName(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "   "); !errors.Is(err, ErrEmptyTokenName) {
		t.Errorf("expected ErrEmptyTokenName, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("expected no network call for a blank name")
	}

	tok, err := svc.Create(ctx, "staging")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tok.Name != "staging" {
		t.Errorf("unexpected name %q", tok.Name)
	}
}

func TestUpdate_Validation(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Update(ctx, "", "name", domain.TokenStateActive); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
	if _, err := svc.Update(ctx, "tok-1", " ", domain.TokenStateActive); !errors.Is(err, ErrEmptyTokenName) {
		t.Errorf("expected ErrEmptyTokenName, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Error("expected no network calls during validation failures")
	}

	tok, err := svc.Update(ctx, "tok-1", "renamed", domain.TokenStateInactive)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if tok.State != domain.TokenStateInactive {
		t.Errorf("unexpected state %q", tok.State)
	}
}

func TestDelete_RequiresToken(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Delete(ctx, ""); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
	if err := svc.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.deleteCalls != 1 {
		t.Errorf("expected one delete call, got %d", repo.deleteCalls)
	}
}
