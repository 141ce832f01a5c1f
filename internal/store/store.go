package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/synthlab/crucible/internal/core/model"
)

// Store is the durable world state behind the resolver: discovered elements,
// recorded recipes, and per-player unlocks. Lookups return (nil, nil) on a
// miss; errors are reserved for the store itself failing.
//
// InsertElement and InsertRecipe are insert-if-absent: a concurrent writer
// winning the race is reported as success, with the winner's row returned
// where applicable. This is what keeps the resolver's read-then-write
// sequence safe without a cross-request lock.
type Store interface {
	GetElement(ctx context.Context, id int64) (*model.Element, error)
	GetElements(ctx context.Context, ids []int64) ([]model.Element, error)
	GetElementByText(ctx context.Context, text string) (*model.Element, error)

	// InsertElement creates a new element with is_first_discovery set. If an
	// element with the same text already exists (or appears mid-insert), the
	// existing row is returned and created is false.
	InsertElement(ctx context.Context, text, emoji string) (el *model.Element, created bool, err error)

	// GetRecipe looks up the canonical pair (low <= high).
	GetRecipe(ctx context.Context, low, high int64) (*model.Recipe, error)

	// InsertRecipe records the canonical pair. A pre-existing row for the
	// pair is not an error; the first writer wins.
	InsertRecipe(ctx context.Context, low, high, resultID int64) error

	UnlockElements(ctx context.Context, playerID uuid.UUID, elementIDs []int64) error
	GetProgress(ctx context.Context, playerID uuid.UUID) ([]model.Element, error)
}
