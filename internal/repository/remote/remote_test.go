package remote

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/emspanel/internal/config"
	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/emsapi"
	"github.com/ignite/emspanel/internal/service/auth"
	"github.com/ignite/emspanel/internal/service/suppression"
	"github.com/ignite/emspanel/internal/service/token"
	"github.com/ignite/emspanel/internal/service/userdomain"
	"github.com/ignite/emspanel/internal/session"
	"github.com/ignite/emspanel/internal/stubapi"
)

// harness wires the full client stack against an in-process stub panel.
type harness struct {
	store        *session.Store
	auth         *auth.Service
	tokens       *token.Service
	suppressions *suppression.Service
	domains      *userdomain.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	server := httptest.NewServer(stubapi.New().Handler())
	t.Cleanup(server.Close)

	backend, err := session.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	store := session.New(backend)

	client := emsapi.NewClient(config.APIConfig{BaseURL: server.URL, TimeoutSeconds: 5}, store.Cookie)

	return &harness{
		store:        store,
		auth:         auth.NewService(NewAuthRepository(client, store.User), store),
		tokens:       token.NewService(NewTokenRepository(client)),
		suppressions: suppression.NewService(NewSuppressionRepository(client)),
		domains:      userdomain.NewService(NewUserDomainRepository(client)),
	}
}

func (h *harness) login(t *testing.T) *domain.User {
	t.Helper()
	user, err := h.auth.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)
	return user
}

func TestLoginFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	assert.False(t, h.auth.IsAuthenticated(ctx))

	user := h.login(t)
	assert.Equal(t, "demo@example.com", user.Email)
	assert.Equal(t, "Demo Sender", user.FullName())
	assert.Equal(t, "smtp.example.com", user.SMTP.Host)
	assert.True(t, user.HasPermission("token.manage"))

	// The cookie was captured from the login response.
	assert.True(t, h.auth.IsAuthenticated(ctx))
	// The profile DTO was cached for cold start.
	cached, ok := h.store.User.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "demo@example.com", cached.Email)
	// The current user cell was populated.
	require.NotNil(t, h.store.Current.Get())
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newHarness(t)

	_, err := h.auth.Login(context.Background(), "demo@example.com", "wrong")
	assert.True(t, errors.Is(err, emsapi.ErrAuthentication))
	assert.False(t, h.auth.IsAuthenticated(context.Background()))
}

func TestLogin_AccountNotActivated(t *testing.T) {
	h := newHarness(t)

	_, err := h.auth.Login(context.Background(), "pending@example.com", "password123")
	assert.True(t, errors.Is(err, emsapi.ErrAccountNotActivated))
}

func TestProfile_WithoutSession(t *testing.T) {
	h := newHarness(t)

	_, err := h.auth.RefreshProfile(context.Background())
	assert.True(t, errors.Is(err, emsapi.ErrAuthentication))
}

func TestLogoutFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.login(t)
	require.NoError(t, h.auth.Logout(ctx))

	assert.False(t, h.auth.IsAuthenticated(ctx))
	assert.Nil(t, h.store.Current.Get())
	_, ok := h.store.User.Load(ctx)
	assert.False(t, ok)

	// The server-side session is gone too.
	_, err := h.auth.RefreshProfile(ctx)
	assert.True(t, errors.Is(err, emsapi.ErrAuthentication))
}

func TestRegisterFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	user, err := h.auth.Register(ctx, auth.RegisterParams{
		FirstName:            "New",
		LastName:             "Sender",
		Email:                "new@example.com",
		Password:             "password456",
		PasswordConfirmation: "password456",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	// Registration signs the account in.
	assert.True(t, h.auth.IsAuthenticated(ctx))

	// Re-registering the same address fails validation.
	_, err = h.auth.Register(ctx, auth.RegisterParams{
		FirstName:            "New",
		LastName:             "Sender",
		Email:                "new@example.com",
		Password:             "password456",
		PasswordConfirmation: "password456",
	})
	assert.True(t, errors.Is(err, emsapi.ErrValidation))

	var apiErr *emsapi.APIError
	require.True(t, errors.As(err, &apiErr))
	require.NotEmpty(t, apiErr.Details)
	assert.Equal(t, "email", apiErr.Details[0].Entity)
}

func TestPasswordRecoveryFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.auth.ForgotPassword(ctx, "demo@example.com"))

	// The stub seeds a known reset token for the demo account.
	require.NoError(t, h.auth.ResetPassword(ctx, "reset-demo-1", "rotated-pw-1", "rotated-pw-1"))

	err := h.auth.ResetPassword(ctx, "reset-demo-1", "rotated-pw-2", "rotated-pw-2")
	assert.True(t, errors.Is(err, emsapi.ErrNotFound), "reset token is single-use")

	_, err = h.auth.Login(ctx, "demo@example.com", "rotated-pw-1")
	assert.NoError(t, err)
}

func TestResendActivation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	assert.NoError(t, h.auth.ResendActivationEmail(ctx, "pending@example.com"))

	err := h.auth.ResendActivationEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, emsapi.ErrNotFound))

	err = h.auth.ResendActivationEmail(ctx, "demo@example.com")
	assert.True(t, errors.Is(err, emsapi.ErrValidation), "already activated")
}

func TestTokenLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t)

	tokens, page, err := h.tokens.List(ctx, token.ListFilter{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
	assert.Equal(t, 2, page.TotalItems)
	assert.False(t, page.HasMore())

	created, err := h.tokens.Create(ctx, "ci-pipeline")
	require.NoError(t, err)
	assert.Equal(t, "ci-pipeline", created.Name)
	assert.True(t, created.IsUsable())
	assert.NotEmpty(t, created.Value)

	updated, err := h.tokens.Update(ctx, created.Value, "ci-pipeline-v2", domain.TokenStateInactive)
	require.NoError(t, err)
	assert.Equal(t, "ci-pipeline-v2", updated.Name)
	assert.Equal(t, domain.TokenStateInactive, updated.State)
	assert.False(t, updated.IsUsable())

	require.NoError(t, h.tokens.Delete(ctx, created.Value))

	err = h.tokens.Delete(ctx, created.Value)
	assert.True(t, errors.Is(err, emsapi.ErrNotFound))

	_, err = h.tokens.Update(ctx, "no-such-token", "name", domain.TokenStateActive)
	assert.True(t, errors.Is(err, emsapi.ErrNotFound))
}

func TestTokenListing_Pagination(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t)

	first, page, err := h.tokens.List(ctx, token.ListFilter{Page: 1, PerPage: 1})
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.True(t, page.HasMore())

	second, page, err := h.tokens.List(ctx, token.ListFilter{Page: 2, PerPage: 1})
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.False(t, page.HasMore())
	assert.NotEqual(t, first[0].Name, second[0].Name)
}

func TestSuppressionListing(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t)

	all, page, err := h.suppressions.List(ctx, suppression.ListFilter{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, page.TotalItems)

	// The record with no domain on the wire maps to the wildcard.
	var wildcards int
	for _, s := range all {
		if s.DomainName == domain.AllDomains {
			wildcards++
		}
	}
	assert.Equal(t, 1, wildcards)

	// Seeded records sit around mid-January 2026; a range starting
	// 2026-01-01 drops the oldest one.
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	filtered, _, err := h.suppressions.List(ctx, suppression.ListFilter{DateFrom: &from, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}

func TestDomainLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t)

	domains, _, err := h.domains.List(ctx, userdomain.ListFilter{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, domains, 2)

	created, err := h.domains.Create(ctx, "Offers.Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "offers.example.com", created.DomainName)
	assert.Equal(t, domain.UserDomainUnverified, created.State)
	assert.False(t, created.FullyValid())
	assert.NotEmpty(t, created.DNS.DKIM.Hostname)
	assert.NotEmpty(t, created.DNS.OwnerValidationToken)

	verified, err := h.domains.Verify(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserDomainVerified, verified.State)
	assert.True(t, verified.FullyValid())

	require.NoError(t, h.domains.Delete(ctx, created.UUID))

	_, err = h.domains.Verify(ctx, created.UUID)
	assert.True(t, errors.Is(err, emsapi.ErrNotFound))
}

func TestListings_RequireSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, _, err := h.tokens.List(ctx, token.ListFilter{})
	assert.True(t, errors.Is(err, emsapi.ErrAuthentication))

	_, _, err = h.domains.List(ctx, userdomain.ListFilter{})
	assert.True(t, errors.Is(err, emsapi.ErrAuthentication))
}
