package model

import (
	"time"

	"github.com/google/uuid"
)

// PlayerProgress records one element a player has unlocked. Global
// Element/Recipe rows belong to the shared world; these rows belong to a
// player and are the only per-player state the server keeps.
type PlayerProgress struct {
	PlayerID  uuid.UUID `json:"player_id" gorm:"primaryKey;type:uuid"`
	ElementID int64     `json:"element_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (PlayerProgress) TableName() string { return "player_progress" }
