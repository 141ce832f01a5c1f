package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab/crucible/internal/config"
	"github.com/synthlab/crucible/internal/core/synthesis"
	"github.com/synthlab/crucible/internal/logger"
)

func newTestResolver(st *fakeStore, mockLLM *synthesis.MockLLMClient) *Resolver {
	synth := synthesis.NewSynthesizer(mockLLM, config.DefaultSynthesisPrompt)
	return NewResolver(st, synth, logger.NewNop())
}

func TestResolveFirstDiscovery(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	mockLLM := &synthesis.MockLLMClient{
		Response: `{"text": "수증기", "emoji": "♨️"}`,
	}
	r := newTestResolver(st, mockLLM)
	ctx := context.Background()

	// Water + Fire, never combined before.
	el, isNew, err := r.Resolve(ctx, 1, 2)

	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, int64(5), el.ID)
	assert.Equal(t, "수증기", el.Text)
	assert.Equal(t, "♨️", el.Emoji)
	assert.True(t, el.IsFirstDiscovery)

	recipe, err := st.GetRecipe(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, el.ID, recipe.ResultID)
}

func TestResolveMemoizedAndOrderIndependent(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	mockLLM := &synthesis.MockLLMClient{
		Response: `{"text": "수증기", "emoji": "♨️"}`,
	}
	r := newTestResolver(st, mockLLM)
	ctx := context.Background()

	first, isNew, err := r.Resolve(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Reversed argument order must hit the recorded recipe, not the model.
	second, isNew, err := r.Resolve(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, mockLLM.Prompts, 1)
}

func TestResolveSelfCombination(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	mockLLM := &synthesis.MockLLMClient{
		Response: `{"text": "바다", "emoji": "🌊"}`,
	}
	r := newTestResolver(st, mockLLM)
	ctx := context.Background()

	el, isNew, err := r.Resolve(ctx, 1, 1)

	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "바다", el.Text)

	// Both sides of the prompt carry the single element's name.
	assert.Contains(t, mockLLM.Prompts[0], `Combine "물" and "물"`)
}

func TestResolveGlobalTextDedup(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()

	// Two distinct pairs happen to synthesize identical text.
	mockLLM := &synthesis.MockLLMClient{
		ResponseQueue: []string{
			`{"text": "먼지", "emoji": "🌫️"}`,
			`{"text": "먼지", "emoji": "💨"}`,
		},
	}
	r := newTestResolver(st, mockLLM)
	ctx := context.Background()

	first, isNew, err := r.Resolve(ctx, 3, 4)
	require.NoError(t, err)
	assert.True(t, isNew)

	second, isNew, err := r.Resolve(ctx, 2, 3)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "🌫️", second.Emoji)

	// The second pair still gets its own recipe row onto the shared result.
	recipe, err := st.GetRecipe(ctx, 2, 3)
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, first.ID, recipe.ResultID)
}

func TestResolveMissingInput(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	r := newTestResolver(st, &synthesis.MockLLMClient{})
	ctx := context.Background()

	_, _, err := r.Resolve(ctx, 0, 2)
	assert.ErrorIs(t, err, ErrMissingInput)

	_, _, err = r.Resolve(ctx, 1, -3)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestResolveUnknownElement(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	mockLLM := &synthesis.MockLLMClient{
		Response: `{"text": "무언가", "emoji": "❓"}`,
	}
	r := newTestResolver(st, mockLLM)
	ctx := context.Background()

	_, _, err := r.Resolve(ctx, 1, 99)

	assert.ErrorIs(t, err, ErrElementNotFound)
	assert.Empty(t, mockLLM.Prompts)
	assert.Empty(t, st.recipes)
	assert.Len(t, st.elements, 4)
}

func TestResolveMalformedSynthesis(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	mockLLM := &synthesis.MockLLMClient{
		Response: "Steam sounds about right, doesn't it?",
	}
	r := newTestResolver(st, mockLLM)
	ctx := context.Background()

	_, _, err := r.Resolve(ctx, 1, 2)

	assert.ErrorIs(t, err, ErrSynthesisFailed)
	assert.Empty(t, st.recipes)
	assert.Len(t, st.elements, 4)
}

func TestResolveSynthesizerUnreachable(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	mockLLM := &synthesis.MockLLMClient{
		Err: errors.New("connection refused"),
	}
	r := newTestResolver(st, mockLLM)

	_, _, err := r.Resolve(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrSynthesisFailed)
}

func TestResolveElementInsertFailure(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	st.failInsertElement = errors.New("disk full")
	mockLLM := &synthesis.MockLLMClient{
		Response: `{"text": "수증기", "emoji": "♨️"}`,
	}
	r := newTestResolver(st, mockLLM)

	_, _, err := r.Resolve(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrStorageFailed)
	assert.Empty(t, st.recipes)
}

func TestResolveRecipeInsertFailureSwallowed(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	st.failInsertRecipe = errors.New("disk full")
	mockLLM := &synthesis.MockLLMClient{
		Response: `{"text": "수증기", "emoji": "♨️"}`,
	}
	r := newTestResolver(st, mockLLM)

	// The element is fully persisted, so the caller still gets it even
	// though the memoization row was lost.
	el, isNew, err := r.Resolve(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "수증기", el.Text)
}

func TestResolveDanglingRecipeReResolves(t *testing.T) {
	st := newFakeStore()
	st.seedStarters()
	require.NoError(t, st.InsertRecipe(context.Background(), 1, 2, 42))

	mockLLM := &synthesis.MockLLMClient{
		Response: `{"text": "수증기", "emoji": "♨️"}`,
	}
	r := newTestResolver(st, mockLLM)

	el, isNew, err := r.Resolve(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "수증기", el.Text)
	assert.Len(t, mockLLM.Prompts, 1)
}
