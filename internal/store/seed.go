package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/synthlab/crucible/internal/core/model"
)

// Starters returns the four base elements every fresh world begins with.
// Their ids are fixed so clients can hardcode the initial inventory.
func Starters() []model.Element {
	return []model.Element{
		{ID: 1, Text: "물", Emoji: "💧"},
		{ID: 2, Text: "불", Emoji: "🔥"},
		{ID: 3, Text: "흙", Emoji: "🌍"},
		{ID: 4, Text: "바람", Emoji: "💨"},
	}
}

// SeedStarters inserts the base elements if they are not already present.
// Safe to run on every boot.
func (s *GormStore) SeedStarters(ctx context.Context) error {
	starters := Starters()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&starters).Error
	if err != nil {
		return fmt.Errorf("failed to seed starter elements: %w", err)
	}

	// Explicit ids bypass the Postgres sequence; advance it past them so the
	// first discovered element does not collide with a starter id.
	if s.db.Dialector.Name() == "postgres" {
		err := s.db.WithContext(ctx).
			Exec(`SELECT setval(pg_get_serial_sequence('elements', 'id'), (SELECT MAX(id) FROM elements))`).Error
		if err != nil {
			return fmt.Errorf("failed to advance elements id sequence: %w", err)
		}
	}

	return nil
}
