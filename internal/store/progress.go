package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/synthlab/crucible/internal/core/model"
)

func (s *GormStore) UnlockElements(ctx context.Context, playerID uuid.UUID, elementIDs []int64) error {
	if len(elementIDs) == 0 {
		return nil
	}

	rows := make([]model.PlayerProgress, 0, len(elementIDs))
	for _, id := range elementIDs {
		rows = append(rows, model.PlayerProgress{
			PlayerID:  playerID,
			ElementID: id,
		})
	}

	// Re-unlocking an element a player already has is a no-op.
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to unlock elements for player %s: %w", playerID, err)
	}
	return nil
}

func (s *GormStore) GetProgress(ctx context.Context, playerID uuid.UUID) ([]model.Element, error) {
	var els []model.Element
	err := s.db.WithContext(ctx).
		Joins("JOIN player_progress ON player_progress.element_id = elements.id").
		Where("player_progress.player_id = ?", playerID).
		Order("elements.id").
		Find(&els).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get progress for player %s: %w", playerID, err)
	}
	return els, nil
}
