package remote

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/emsapi"
	"github.com/ignite/emspanel/internal/service/auth"
	"github.com/ignite/emspanel/internal/session"
)

// AuthRepository executes the authentication endpoints. It also owns
// the user-cache write: it is the only layer that sees the wire DTO,
// which the session store persists verbatim.
type AuthRepository struct {
	client *emsapi.Client
	users  *session.UserStore
}

var _ auth.Repository = (*AuthRepository)(nil)

// NewAuthRepository creates the repository.
func NewAuthRepository(client *emsapi.Client, users *session.UserStore) *AuthRepository {
	return &AuthRepository{client: client, users: users}
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*domain.User, error) {
	ep := emsapi.NewLoginEndpoint(emsapi.LoginRequest{Email: email, Password: password})
	dto, err := emsapi.Do[emsapi.UserDTO](ctx, r.client, ep)
	if err != nil {
		return nil, err
	}
	r.users.Save(ctx, dto)
	user := dto.ToDomain()
	return &user, nil
}

func (r *AuthRepository) Logout(ctx context.Context) error {
	return r.client.DoNoContent(ctx, emsapi.NewLogoutEndpoint())
}

func (r *AuthRepository) Register(ctx context.Context, p auth.RegisterParams) (*domain.User, error) {
	ep := emsapi.NewRegisterEndpoint(emsapi.RegisterRequest{
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Email:                p.Email,
		Password:             p.Password,
		PasswordConfirmation: p.PasswordConfirmation,
	})
	dto, err := emsapi.Do[emsapi.UserDTO](ctx, r.client, ep)
	if err != nil {
		return nil, err
	}
	r.users.Save(ctx, dto)
	user := dto.ToDomain()
	return &user, nil
}

func (r *AuthRepository) ForgotPassword(ctx context.Context, email string) error {
	ep := emsapi.NewForgotPasswordEndpoint(emsapi.ForgotPasswordRequest{Email: email})
	return r.client.DoNoContent(ctx, ep)
}

func (r *AuthRepository) ResetPassword(ctx context.Context, resetToken, password, confirmation string) error {
	ep := emsapi.NewResetPasswordEndpoint(emsapi.ResetPasswordRequest{
		ResetToken:           resetToken,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
	return r.client.DoNoContent(ctx, ep)
}

func (r *AuthRepository) ResendActivationEmail(ctx context.Context, email string) error {
	ep := emsapi.NewResendActivationEndpoint(emsapi.ResendActivationRequest{Email: email})
	return r.client.DoNoContent(ctx, ep)
}

func (r *AuthRepository) Profile(ctx context.Context) (*domain.User, error) {
	dto, err := emsapi.Do[emsapi.UserDTO](ctx, r.client, emsapi.NewProfileEndpoint())
	if err != nil {
		return nil, err
	}
	r.users.Save(ctx, dto)
	user := dto.ToDomain()
	return &user, nil
}
