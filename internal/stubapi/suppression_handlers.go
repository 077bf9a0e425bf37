package stubapi

import (
	"net/http"
	"time"
)

type suppressionPayload struct {
	SuppressionID int64  `json:"suppressionId"`
	Email         string `json:"email"`
	Type          string `json:"type"`
	DomainName    string `json:"domainName,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func suppressionToPayload(s *stubSuppression) suppressionPayload {
	return suppressionPayload{
		SuppressionID: s.ID,
		Email:         s.Email,
		Type:          s.Type,
		DomainName:    s.DomainName,
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) handleSuppressionListing(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	from, okFrom := parseDateParam(r, "dateFrom")
	to, okTo := parseDateParam(r, "dateTo")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	matched := make([]*stubSuppression, 0, len(s.store.suppressions))
	for _, rec := range s.store.suppressions {
		if okFrom && rec.CreatedAt.Before(from) {
			continue
		}
		if okTo && rec.CreatedAt.After(to.AddDate(0, 0, 1)) {
			continue
		}
		matched = append(matched, rec)
	}
	total := len(matched)
	low, high := slicePage(total, page, perPage)
	items := make([]suppressionPayload, 0, high-low)
	for _, rec := range matched[low:high] {
		items = append(items, suppressionToPayload(rec))
	}
	writeOK(w, listing(items, page, perPage, len(items), total))
}

func parseDateParam(r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
