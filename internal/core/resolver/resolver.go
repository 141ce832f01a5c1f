package resolver

import (
	"context"
	"fmt"

	"github.com/synthlab/crucible/internal/core/model"
	"github.com/synthlab/crucible/internal/core/synthesis"
	"github.com/synthlab/crucible/internal/logger"
	"github.com/synthlab/crucible/internal/store"
)

// Resolver answers the one question the game asks: what do these two
// elements make? Every pair is resolved at most once globally; after that
// the recorded recipe is the answer forever and the model is never asked
// again.
type Resolver struct {
	Store store.Store
	Synth *synthesis.Synthesizer
	log   *logger.Logger
}

func NewResolver(st store.Store, synth *synthesis.Synthesizer, logg *logger.Logger) *Resolver {
	return &Resolver{
		Store: st,
		Synth: synth,
		log:   logg.With("component", "resolver"),
	}
}

// Resolve returns the canonical result of combining idA and idB, order
// independent, and whether this resolution created a brand-new element.
//
// The new-discovery flag is text-global, not pair-global: an unseen pair
// whose synthesized text matches an existing element resolves to that
// element with isNewDiscovery false.
func (r *Resolver) Resolve(ctx context.Context, idA, idB int64) (*model.Element, bool, error) {
	if idA <= 0 || idB <= 0 {
		return nil, false, fmt.Errorf("%w: got ids (%d, %d)", ErrMissingInput, idA, idB)
	}

	low, high := idA, idB
	if low > high {
		low, high = high, low
	}

	// Memoization check. A hit never touches the model.
	recipe, err := r.Store.GetRecipe(ctx, low, high)
	if err != nil {
		return nil, false, fmt.Errorf("%w: recipe lookup: %v", ErrStorageFailed, err)
	}
	if recipe != nil {
		el, err := r.Store.GetElement(ctx, recipe.ResultID)
		if err != nil {
			return nil, false, fmt.Errorf("%w: result lookup: %v", ErrStorageFailed, err)
		}
		if el != nil {
			return el, false, nil
		}
		// Recipe points at a missing element. Fall through and resolve the
		// pair again; text dedup converges on a consistent row.
		r.log.Warn("recipe result element missing, re-resolving",
			"input_a", low, "input_b", high, "result_id", recipe.ResultID)
	}

	nameA, nameB, err := r.inputNames(ctx, low, high)
	if err != nil {
		return nil, false, err
	}

	concept, err := r.Synth.Combine(ctx, nameA, nameB)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	// Novelty is decided against the whole world by text, not by pair.
	result, err := r.Store.GetElementByText(ctx, concept.Text)
	if err != nil {
		return nil, false, fmt.Errorf("%w: dedup lookup: %v", ErrStorageFailed, err)
	}

	isNewDiscovery := false
	if result == nil {
		var created bool
		result, created, err = r.Store.InsertElement(ctx, concept.Text, concept.Emoji)
		if err != nil {
			return nil, false, fmt.Errorf("%w: element insert: %v", ErrStorageFailed, err)
		}
		isNewDiscovery = created
	}

	// Close the memoization loop. Losing this write is tolerated: the
	// caller already has a fully persisted element, and a future request
	// for the pair converges on the same text.
	if err := r.Store.InsertRecipe(ctx, low, high, result.ID); err != nil {
		r.log.Warn("failed to persist recipe",
			"input_a", low, "input_b", high, "result_id", result.ID, "error", err)
	}

	return result, isNewDiscovery, nil
}

// inputNames fetches the display names for the canonical pair. A self-pair
// fetches a single row and uses its name for both sides.
func (r *Resolver) inputNames(ctx context.Context, low, high int64) (string, string, error) {
	if low == high {
		el, err := r.Store.GetElement(ctx, low)
		if err != nil {
			return "", "", fmt.Errorf("%w: input lookup: %v", ErrStorageFailed, err)
		}
		if el == nil {
			return "", "", fmt.Errorf("%w: id %d", ErrElementNotFound, low)
		}
		return el.Text, el.Text, nil
	}

	els, err := r.Store.GetElements(ctx, []int64{low, high})
	if err != nil {
		return "", "", fmt.Errorf("%w: input lookup: %v", ErrStorageFailed, err)
	}

	byID := make(map[int64]model.Element, len(els))
	for _, el := range els {
		byID[el.ID] = el
	}
	a, okA := byID[low]
	b, okB := byID[high]
	if !okA || !okB {
		return "", "", fmt.Errorf("%w: ids (%d, %d)", ErrElementNotFound, low, high)
	}
	return a.Text, b.Text, nil
}
