package repositories

import (
	"context"

	"vehicle-finance.backend/internal/domain/entities"
)

// LeadRepository owns the canonical ordered lead collection for the
// running process and is the sole writer of the local store. Case ids
// are assigned here only, never by callers.
type LeadRepository interface {
	// Create assigns the next case id, sets status New and createdAt,
	// appends the lead and persists the full collection.
	Create(ctx context.Context, lead *entities.Lead) (*entities.Lead, error)
	// Update shallow-merges the patch into the lead with the given id
	// and persists. Returns ErrNotFound for an unknown id, leaving the
	// collection unchanged.
	Update(ctx context.Context, id string, update entities.LeadUpdate) (*entities.Lead, error)
	GetByID(ctx context.Context, id string) (*entities.Lead, error)
	// List returns the collection in insertion order, unfiltered.
	List(ctx context.Context) ([]*entities.Lead, error)
}
