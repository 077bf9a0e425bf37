package suppression

import (
	"context"
	"time"

	"github.com/ignite/emspanel/internal/domain"
)

// ListFilter controls the date range, pagination, and ordering for
// suppression listings. Nil dates mean an open-ended range.
type ListFilter struct {
	DateFrom       *time.Time
	DateTo         *time.Time
	Page           int
	PerPage        int
	OrderBy        string
	OrderDirection string
}

// Repository defines the remote access contract for the suppression list.
type Repository interface {
	// List returns one page of suppressions with the pagination block.
	List(ctx context.Context, filter ListFilter) ([]domain.Suppression, domain.Page, error)
}
