package resolver

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/synthlab/crucible/internal/core/model"
)

// fakeStore is an in-memory Store with per-operation error injection.
type fakeStore struct {
	elements map[int64]model.Element
	recipes  map[[2]int64]model.Recipe
	nextID   int64

	failReads         error
	failInsertElement error
	failInsertRecipe  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		elements: make(map[int64]model.Element),
		recipes:  make(map[[2]int64]model.Recipe),
		nextID:   1,
	}
}

func (f *fakeStore) seedStarters() {
	for _, el := range []model.Element{
		{Text: "물", Emoji: "💧"},
		{Text: "불", Emoji: "🔥"},
		{Text: "흙", Emoji: "🌍"},
		{Text: "바람", Emoji: "💨"},
	} {
		el.ID = f.nextID
		f.nextID++
		f.elements[el.ID] = el
	}
}

func (f *fakeStore) GetElement(ctx context.Context, id int64) (*model.Element, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	el, ok := f.elements[id]
	if !ok {
		return nil, nil
	}
	return &el, nil
}

func (f *fakeStore) GetElements(ctx context.Context, ids []int64) ([]model.Element, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	var els []model.Element
	for _, id := range ids {
		if el, ok := f.elements[id]; ok {
			els = append(els, el)
		}
	}
	sort.Slice(els, func(i, j int) bool { return els[i].ID < els[j].ID })
	return els, nil
}

func (f *fakeStore) GetElementByText(ctx context.Context, text string) (*model.Element, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	for _, el := range f.elements {
		if el.Text == text {
			el := el
			return &el, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertElement(ctx context.Context, text, emoji string) (*model.Element, bool, error) {
	if f.failInsertElement != nil {
		return nil, false, f.failInsertElement
	}
	if existing, _ := f.GetElementByText(ctx, text); existing != nil {
		return existing, false, nil
	}
	el := model.Element{
		ID:               f.nextID,
		Text:             text,
		Emoji:            emoji,
		IsFirstDiscovery: true,
	}
	f.nextID++
	f.elements[el.ID] = el
	return &el, true, nil
}

func (f *fakeStore) GetRecipe(ctx context.Context, low, high int64) (*model.Recipe, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	r, ok := f.recipes[[2]int64{low, high}]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeStore) InsertRecipe(ctx context.Context, low, high, resultID int64) error {
	if f.failInsertRecipe != nil {
		return f.failInsertRecipe
	}
	key := [2]int64{low, high}
	if _, ok := f.recipes[key]; ok {
		return nil
	}
	f.recipes[key] = model.Recipe{InputA: low, InputB: high, ResultID: resultID}
	return nil
}

func (f *fakeStore) UnlockElements(ctx context.Context, playerID uuid.UUID, elementIDs []int64) error {
	return nil
}

func (f *fakeStore) GetProgress(ctx context.Context, playerID uuid.UUID) ([]model.Element, error) {
	return nil, nil
}
