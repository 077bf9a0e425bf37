package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type cnameRecordPayload struct {
	Hostname string `json:"hostname"`
	PointTo  string `json:"pointTo"`
}

type dnsSettingsPayload struct {
	DKIMDomain           string             `json:"dkimDomain"`
	OwnerValidationToken string             `json:"ownerValidationToken"`
	DKIM                 cnameRecordPayload `json:"dkim"`
	SPF                  cnameRecordPayload `json:"spf"`
	Tracking             cnameRecordPayload `json:"tracking"`
}

type userDomainPayload struct {
	UUID       string             `json:"uuid"`
	DomainName string             `json:"domainName"`
	State      string             `json:"state"`
	CreatedAt  string             `json:"createdAt"`
	UpdatedAt  string             `json:"updatedAt"`
	SPFValid   bool               `json:"spfValid"`
	DKIMValid  bool               `json:"dkimValid"`
	OwnerValid bool               `json:"ownerValid"`
	FBLValid   bool               `json:"fblValid"`
	DNS        dnsSettingsPayload `json:"dnsSettings"`
}

func domainToPayload(d *stubDomain) userDomainPayload {
	return userDomainPayload{
		UUID:       d.UUID,
		DomainName: d.Name,
		State:      d.State,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.UTC().Format(time.RFC3339),
		SPFValid:   d.SPFValid,
		DKIMValid:  d.DKIMValid,
		OwnerValid: d.OwnerValid,
		FBLValid:   d.FBLValid,
		DNS: dnsSettingsPayload{
			DKIMDomain:           "dkim." + d.Name,
			OwnerValidationToken: "ems-verify-" + d.UUID[:8],
			DKIM:                 cnameRecordPayload{Hostname: "dkim." + d.Name, PointTo: "dkim.emspanel.net"},
			SPF:                  cnameRecordPayload{Hostname: d.Name, PointTo: "spf.emspanel.net"},
			Tracking:             cnameRecordPayload{Hostname: "track." + d.Name, PointTo: "track.emspanel.net"},
		},
	}
}

func (s *Server) handleDomainListing(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	total := len(s.store.domains)
	low, high := slicePage(total, page, perPage)
	items := make([]userDomainPayload, 0, high-low)
	for _, d := range s.store.domains[low:high] {
		items = append(items, domainToPayload(d))
	}
	writeOK(w, listing(items, page, perPage, len(items), total))
}

func (s *Server) handleDomainCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DomainName string `json:"domainName"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	name := strings.ToLower(strings.TrimSpace(req.DomainName))
	if name == "" || !strings.Contains(name, ".") {
		writeValidation(w, fieldError{Entity: "domainName", Error: "must be a valid domain name"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, d := range s.store.domains {
		if d.Name == name {
			writeValidation(w, fieldError{Entity: "domainName", Error: "already registered"})
			return
		}
	}
	now := time.Now().UTC()
	d := &stubDomain{UUID: uuid.NewString(), Name: name, State: "unverified", CreatedAt: now, UpdatedAt: now}
	s.store.domains = append(s.store.domains, d)
	writeOK(w, domainToPayload(d))
}

func (s *Server) handleDomainVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UUID string `json:"uuid"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UUID == "" {
		writeValidation(w, fieldError{Entity: "uuid", Error: "must not be empty"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	d := s.store.findDomain(req.UUID)
	if d == nil {
		writeError(w, http.StatusNotFound, codeNotFound)
		return
	}
	// The stub has no DNS to consult, so verification always passes.
	d.SPFValid = true
	d.DKIMValid = true
	d.OwnerValid = true
	d.FBLValid = true
	d.State = "verified"
	d.UpdatedAt = time.Now().UTC()
	writeOK(w, domainToPayload(d))
}

func (s *Server) handleDomainDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("uuid")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, d := range s.store.domains {
		if d.UUID == id {
			s.store.domains = append(s.store.domains[:i], s.store.domains[i+1:]...)
			writeOK(w, nil)
			return
		}
	}
	writeError(w, http.StatusNotFound, codeNotFound)
}
