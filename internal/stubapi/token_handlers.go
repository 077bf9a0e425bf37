package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type tokenPayload struct {
	TokenName string `json:"tokenName"`
	Token     string `json:"token"`
	State     string `json:"state"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func tokenToPayload(t *stubToken) tokenPayload {
	return tokenPayload{
		TokenName: t.Name,
		Token:     t.Value,
		State:     t.State,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) handleTokenListing(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	total := len(s.store.tokens)
	low, high := slicePage(total, page, perPage)
	items := make([]tokenPayload, 0, high-low)
	for _, t := range s.store.tokens[low:high] {
		items = append(items, tokenToPayload(t))
	}
	writeOK(w, listing(items, page, perPage, len(items), total))
}

func (s *Server) handleTokenCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TokenName string `json:"tokenName"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	name := strings.TrimSpace(req.TokenName)
	if name == "" {
		writeValidation(w, fieldError{Entity: "tokenName", Error: "must not be empty"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	now := time.Now().UTC()
	t := &stubToken{Name: name, Value: uuid.NewString(), State: "active", CreatedAt: now, UpdatedAt: now}
	s.store.tokens = append(s.store.tokens, t)
	writeOK(w, tokenToPayload(t))
}

func (s *Server) handleTokenUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token     string `json:"token"`
		TokenName string `json:"tokenName"`
		State     string `json:"state"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	var details []fieldError
	if strings.TrimSpace(req.TokenName) == "" {
		details = append(details, fieldError{Entity: "tokenName", Error: "must not be empty"})
	}
	if req.State != "active" && req.State != "inactive" {
		details = append(details, fieldError{Entity: "state", Error: "must be active or inactive"})
	}
	if len(details) > 0 {
		writeValidation(w, details...)
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t := s.store.findToken(req.Token)
	if t == nil {
		writeError(w, http.StatusNotFound, codeNotFound)
		return
	}
	t.Name = strings.TrimSpace(req.TokenName)
	t.State = req.State
	t.UpdatedAt = time.Now().UTC()
	writeOK(w, tokenToPayload(t))
}

func (s *Server) handleTokenDelete(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("token")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, t := range s.store.tokens {
		if t.Value == value {
			s.store.tokens = append(s.store.tokens[:i], s.store.tokens[i+1:]...)
			writeOK(w, nil)
			return
		}
	}
	writeError(w, http.StatusNotFound, codeNotFound)
}
