package auth

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
)

// RegisterParams carries the registration form fields.
type RegisterParams struct {
	FirstName            string
	LastName             string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Repository defines the remote access contract for authentication.
// Implementations build the matching endpoint, execute it, and map the
// returned DTO to the domain type.
type Repository interface {
	// Login authenticates and returns the user profile. The session
	// cookie is established as a side effect of the response.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// Logout invalidates the server-side session.
	Logout(ctx context.Context) error

	// Register creates an account and returns the new profile.
	Register(ctx context.Context, p RegisterParams) (*domain.User, error)

	// ForgotPassword triggers the password reset email.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword completes a reset started by ForgotPassword.
	ResetPassword(ctx context.Context, resetToken, password, confirmation string) error

	// ResendActivationEmail re-sends the account activation email.
	ResendActivationEmail(ctx context.Context, email string) error

	// Profile fetches the current user's profile.
	Profile(ctx context.Context) (*domain.User, error)
}
