package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type smtpSettingsPayload struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Login string `json:"login"`
}

type userPayload struct {
	UUID                  string              `json:"uuid"`
	Email                 string              `json:"email"`
	FirstName             string              `json:"firstName"`
	LastName              string              `json:"lastName"`
	CreatedAt             string              `json:"createdAt"`
	SMTPSettings          smtpSettingsPayload `json:"smtpSettings"`
	PermissionObjectCodes []string            `json:"permissionObjectCodes"`
}

func userToPayload(u *stubUser) userPayload {
	return userPayload{
		UUID:      u.UUID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		SMTPSettings: smtpSettingsPayload{
			Host:  u.SMTPHost,
			Port:  u.SMTPPort,
			Login: u.SMTPLogin,
		},
		PermissionObjectCodes: append([]string(nil), u.Perms...),
	}
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	var details []fieldError
	if strings.TrimSpace(req.Email) == "" {
		details = append(details, fieldError{Entity: "email", Error: "must not be empty"})
	}
	if req.Password == "" {
		details = append(details, fieldError{Entity: "password", Error: "must not be empty"})
	}
	if len(details) > 0 {
		writeValidation(w, details...)
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	user := s.store.findUserByEmail(req.Email)
	if user == nil || user.Password != req.Password {
		writeError(w, http.StatusUnauthorized, codeUnauthenticated)
		return
	}
	if !user.Activated {
		writeError(w, http.StatusForbidden, codeAccountNotActivated)
		return
	}
	setSessionCookie(w, s.store.openSession(user.UUID))
	writeOK(w, userToPayload(user))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.store.mu.Lock()
		delete(s.store.sessions, cookie.Value)
		s.store.mu.Unlock()
	}
	writeOK(w, nil)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName            string `json:"firstName"`
		LastName             string `json:"lastName"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"passwordConfirmation"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	var details []fieldError
	if strings.TrimSpace(req.FirstName) == "" {
		details = append(details, fieldError{Entity: "firstName", Error: "must not be empty"})
	}
	if strings.TrimSpace(req.LastName) == "" {
		details = append(details, fieldError{Entity: "lastName", Error: "must not be empty"})
	}
	if !strings.Contains(req.Email, "@") {
		details = append(details, fieldError{Entity: "email", Error: "must be a valid email address"})
	}
	if len(req.Password) < 8 {
		details = append(details, fieldError{Entity: "password", Error: "must be at least 8 characters"})
	}
	if req.Password != req.PasswordConfirmation {
		details = append(details, fieldError{Entity: "passwordConfirmation", Error: "must match password"})
	}
	if len(details) > 0 {
		writeValidation(w, details...)
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.store.findUserByEmail(req.Email) != nil {
		writeValidation(w, fieldError{Entity: "email", Error: "already registered"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := &stubUser{
		UUID:      uuid.NewString(),
		Email:     email,
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		CreatedAt: time.Now().UTC(),
		Activated: true,
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		SMTPLogin: email,
		Perms:     []string{"token.manage", "domain.manage", "suppression.read"},
	}
	s.store.users[email] = user
	setSessionCookie(w, s.store.openSession(user.UUID))
	writeOK(w, userToPayload(user))
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeValidation(w, fieldError{Entity: "email", Error: "must not be empty"})
		return
	}
	// Unknown addresses still succeed so the route cannot be used to
	// probe which accounts exist.
	writeOK(w, nil)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResetToken           string `json:"resetToken"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"passwordConfirmation"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	var details []fieldError
	if req.ResetToken == "" {
		details = append(details, fieldError{Entity: "resetToken", Error: "must not be empty"})
	}
	if len(req.Password) < 8 {
		details = append(details, fieldError{Entity: "password", Error: "must be at least 8 characters"})
	}
	if req.Password != req.PasswordConfirmation {
		details = append(details, fieldError{Entity: "passwordConfirmation", Error: "must match password"})
	}
	if len(details) > 0 {
		writeValidation(w, details...)
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, u := range s.store.users {
		if u.ResetToken != "" && u.ResetToken == req.ResetToken {
			u.Password = req.Password
			u.ResetToken = ""
			writeOK(w, nil)
			return
		}
	}
	writeError(w, http.StatusNotFound, codeNotFound)
}

func (s *Server) handleResendActivation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeValidation(w, fieldError{Entity: "email", Error: "must be a valid email address"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	user := s.store.findUserByEmail(req.Email)
	if user == nil {
		writeError(w, http.StatusNotFound, codeNotFound)
		return
	}
	if user.Activated {
		writeValidation(w, fieldError{Entity: "email", Error: "account already activated"})
		return
	}
	writeOK(w, nil)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeOK(w, userToPayload(currentUser(r)))
}
