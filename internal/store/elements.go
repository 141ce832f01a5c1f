package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/synthlab/crucible/internal/core/model"
)

func (s *GormStore) GetElement(ctx context.Context, id int64) (*model.Element, error) {
	var el model.Element
	err := s.db.WithContext(ctx).First(&el, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get element %d: %w", id, err)
	}
	return &el, nil
}

func (s *GormStore) GetElements(ctx context.Context, ids []int64) ([]model.Element, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var els []model.Element
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&els).Error; err != nil {
		return nil, fmt.Errorf("failed to get elements: %w", err)
	}
	return els, nil
}

func (s *GormStore) GetElementByText(ctx context.Context, text string) (*model.Element, error) {
	var el model.Element
	err := s.db.WithContext(ctx).Where("text = ?", text).First(&el).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get element by text: %w", err)
	}
	return &el, nil
}

func (s *GormStore) InsertElement(ctx context.Context, text, emoji string) (*model.Element, bool, error) {
	el := model.Element{
		Text:             text,
		Emoji:            emoji,
		IsFirstDiscovery: true,
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "text"}},
			DoNothing: true,
		}).
		Create(&el)
	if res.Error != nil {
		return nil, false, fmt.Errorf("failed to insert element: %w", res.Error)
	}

	// Lost the race: another request created this text first. Return the
	// winner's row so both callers converge on one element.
	if res.RowsAffected == 0 {
		existing, err := s.GetElementByText(ctx, text)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, fmt.Errorf("element %q vanished after insert conflict", text)
		}
		return existing, false, nil
	}

	return &el, true, nil
}
