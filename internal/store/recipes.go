package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/synthlab/crucible/internal/core/model"
)

func (s *GormStore) GetRecipe(ctx context.Context, low, high int64) (*model.Recipe, error) {
	var r model.Recipe
	err := s.db.WithContext(ctx).
		Where("input_a = ? AND input_b = ?", low, high).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe (%d, %d): %w", low, high, err)
	}
	return &r, nil
}

func (s *GormStore) InsertRecipe(ctx context.Context, low, high, resultID int64) error {
	r := model.Recipe{
		InputA:   low,
		InputB:   high,
		ResultID: resultID,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "input_a"}, {Name: "input_b"}},
			DoNothing: true,
		}).
		Create(&r).Error
	if err != nil {
		return fmt.Errorf("failed to insert recipe (%d, %d): %w", low, high, err)
	}
	return nil
}
