package domain

// Page describes the pagination block returned alongside every listing.
// All fields are non-negative; ItemsOnCurrentPage never exceeds PerPage,
// and the last page may be partial.
type Page struct {
	Page               int
	PerPage            int
	ItemsOnCurrentPage int
	TotalItems         int
}

// HasMore reports whether pages beyond this one exist.
func (p Page) HasMore() bool {
	return p.Page*p.PerPage < p.TotalItems
}
