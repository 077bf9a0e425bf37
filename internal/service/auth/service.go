package auth

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/session"
)

var validate = validator.New()

// validateEmail rejects empty and malformed addresses locally, without
// a network round trip.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if err := validate.Var(email, "email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Service implements the authentication use cases.
type Service struct {
	repo  Repository
	store *session.Store
}

// NewService creates an auth service over the repository and the
// composition root's session store.
func NewService(repo Repository, store *session.Store) *Service {
	return &Service{repo: repo, store: store}
}

// Login authenticates with email and password. On success the current
// user is replaced wholesale; the cookie was already captured from the
// login response by the network client.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	user, err := s.repo.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.store.Current.Set(user)
	return user, nil
}

// Logout invalidates the session remotely, then clears the credential,
// the cached profile, and the current user.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.repo.Logout(ctx); err != nil {
		return err
	}
	s.store.Cookie.Clear(ctx)
	s.store.User.Clear(ctx)
	s.store.Current.Clear()
	return nil
}

// Register creates a new account and signs it in.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*domain.User, error) {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return nil, ErrEmptyName
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if p.Password == "" {
		return nil, ErrEmptyPassword
	}
	if p.Password != p.PasswordConfirmation {
		return nil, ErrPasswordMismatch
	}
	user, err := s.repo.Register(ctx, p)
	if err != nil {
		return nil, err
	}
	s.store.Current.Set(user)
	return user, nil
}

// ForgotPassword triggers the reset email after local validation.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	return s.repo.ForgotPassword(ctx, email)
}

// ResetPassword completes a password reset.
func (s *Service) ResetPassword(ctx context.Context, resetToken, password, confirmation string) error {
	if strings.TrimSpace(resetToken) == "" {
		return ErrEmptyResetToken
	}
	if password == "" {
		return ErrEmptyPassword
	}
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return s.repo.ResetPassword(ctx, resetToken, password, confirmation)
}

// ResendActivationEmail re-sends the activation email. The address must
// be well-formed, same as ForgotPassword.
func (s *Service) ResendActivationEmail(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	return s.repo.ResendActivationEmail(ctx, email)
}

// RefreshProfile re-fetches the profile and replaces the current user.
func (s *Service) RefreshProfile(ctx context.Context) (*domain.User, error) {
	user, err := s.repo.Profile(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Current.Set(user)
	return user, nil
}

// IsAuthenticated reports whether a session credential is stored. No
// network call is made.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.store.Cookie.IsAuthenticated(ctx)
}

// RestoreCachedUser loads the last persisted profile into the current
// user cell for cold start. Returns false when no usable cache exists.
func (s *Service) RestoreCachedUser(ctx context.Context) (*domain.User, bool) {
	dto, ok := s.store.User.Load(ctx)
	if !ok {
		return nil, false
	}
	user := dto.ToDomain()
	s.store.Current.Set(&user)
	return &user, true
}
