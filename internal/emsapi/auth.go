package emsapi

import (
	"net/http"

	"github.com/ignite/emspanel/internal/domain"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewLoginEndpoint describes the login operation.
func NewLoginEndpoint(req LoginRequest) Endpoint {
	return Endpoint{Path: pathLogin, Method: http.MethodPost, Body: mustJSON(req)}
}

// NewLogoutEndpoint describes the logout operation. Logout carries no body.
func NewLogoutEndpoint() Endpoint {
	return Endpoint{Path: pathLogout, Method: http.MethodDelete}
}

// RegisterRequest is the body of POST /api/user/registration.
type RegisterRequest struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// NewRegisterEndpoint describes the registration operation.
func NewRegisterEndpoint(req RegisterRequest) Endpoint {
	return Endpoint{Path: pathRegistration, Method: http.MethodPost, Body: mustJSON(req)}
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot_password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// NewForgotPasswordEndpoint describes the forgot-password operation.
func NewForgotPasswordEndpoint(req ForgotPasswordRequest) Endpoint {
	return Endpoint{Path: pathForgotPassword, Method: http.MethodPost, Body: mustJSON(req)}
}

// ResetPasswordRequest is the body of POST /api/auth/reset_password.
type ResetPasswordRequest struct {
	ResetToken           string `json:"resetToken"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// NewResetPasswordEndpoint describes the reset-password operation.
func NewResetPasswordEndpoint(req ResetPasswordRequest) Endpoint {
	return Endpoint{Path: pathResetPassword, Method: http.MethodPost, Body: mustJSON(req)}
}

// ResendActivationRequest is the body of
// PUT /api/user/registration/resend_activation_email.
type ResendActivationRequest struct {
	Email string `json:"email"`
}

// NewResendActivationEndpoint describes the resend-activation operation.
func NewResendActivationEndpoint(req ResendActivationRequest) Endpoint {
	return Endpoint{Path: pathResendActivation, Method: http.MethodPut, Body: mustJSON(req)}
}

// NewProfileEndpoint describes the current-user profile fetch.
func NewProfileEndpoint() Endpoint {
	return Endpoint{Path: pathProfile, Method: http.MethodGet}
}

// SMTPSettingsDTO mirrors the SMTP settings block inside the user payload.
type SMTPSettingsDTO struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Login string `json:"login"`
}

// UserDTO mirrors the user payload returned by login, registration, and
// profile fetches. The session store persists it verbatim for cold-start
// restoration, which is why it stays a plain serializable shape.
type UserDTO struct {
	UUID                  string          `json:"uuid"`
	Email                 string          `json:"email"`
	FirstName             string          `json:"firstName"`
	LastName              string          `json:"lastName"`
	CreatedAt             string          `json:"createdAt"`
	Address               string          `json:"address,omitempty"`
	City                  string          `json:"city,omitempty"`
	PostalCode            string          `json:"postalCode,omitempty"`
	Country               string          `json:"country,omitempty"`
	RateLimit             *int            `json:"rateLimit,omitempty"`
	SMTPSettings          SMTPSettingsDTO `json:"smtpSettings"`
	PermissionObjectCodes []string        `json:"permissionObjectCodes"`
}

// ToDomain maps the wire shape to the domain aggregate.
func (d UserDTO) ToDomain() domain.User {
	return domain.User{
		UUID:       d.UUID,
		Email:      d.Email,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		CreatedAt:  parseTimestamp(d.CreatedAt),
		Address:    d.Address,
		City:       d.City,
		PostalCode: d.PostalCode,
		Country:    d.Country,
		RateLimit:  d.RateLimit,
		SMTP: domain.SMTPSettings{
			Host:  d.SMTPSettings.Host,
			Port:  d.SMTPSettings.Port,
			Login: d.SMTPSettings.Login,
		},
		PermissionObjectCodes: append([]string(nil), d.PermissionObjectCodes...),
	}
}
