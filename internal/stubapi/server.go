package stubapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const sessionCookie = "emsid"

type contextKey string

const userKey contextKey = "stubapi.user"

// Server is the stub panel. Zero-configuration: construct and mount.
type Server struct {
	store  *memoryStore
	router *chi.Mux
}

// New builds a stub server with seeded fixtures.
func New() *Server {
	s := &Server{store: newMemoryStore()}
	s.router = s.routes()
	return s
}

// Handler exposes the stub as a plain http.Handler for httptest and for
// the standalone binary.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"emspanel-stub"}`))
	})

	// Routes reachable without a session.
	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/user/registration", s.handleRegister)
	r.Post("/api/auth/forgot_password", s.handleForgotPassword)
	r.Post("/api/auth/reset_password", s.handleResetPassword)
	r.Put("/api/user/registration/resend_activation_email", s.handleResendActivation)

	// Routes behind the session cookie.
	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Delete("/api/auth/logout", s.handleLogout)
		r.Get("/api/user", s.handleProfile)

		r.Get("/api/token/listing", s.handleTokenListing)
		r.Post("/api/token/create", s.handleTokenCreate)
		r.Put("/api/token/update", s.handleTokenUpdate)
		r.Delete("/api/token/delete", s.handleTokenDelete)

		r.Get("/api/suppression/listing", s.handleSuppressionListing)

		r.Get("/api/user_domain/listing", s.handleDomainListing)
		r.Post("/api/user_domain/create", s.handleDomainCreate)
		r.Post("/api/user_domain/verify", s.handleDomainVerify)
		r.Delete("/api/user_domain/delete", s.handleDomainDelete)
	})

	return r
}

// requireSession resolves the session cookie into an account and stores
// it on the request context. Missing or stale cookies get a 401.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthenticated)
			return
		}
		s.store.mu.Lock()
		userUUID, ok := s.store.sessions[cookie.Value]
		var user *stubUser
		if ok {
			user = s.store.findUserByUUID(userUUID)
		}
		s.store.mu.Unlock()
		if user == nil {
			writeError(w, http.StatusUnauthorized, codeUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func currentUser(r *http.Request) *stubUser {
	u, _ := r.Context().Value(userKey).(*stubUser)
	return u
}
