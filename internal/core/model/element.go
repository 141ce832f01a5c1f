package model

import "time"

// Element is a discoverable concept in the game world. The id is assigned
// by the store on insert, never by callers. Text is globally unique and is
// the deduplication key for new discoveries.
type Element struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Text             string    `json:"text" gorm:"uniqueIndex;not null"`
	Emoji            string    `json:"emoji" gorm:"not null"`
	IsFirstDiscovery bool      `json:"is_first_discovery"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Recipe maps an unordered pair of element ids to a result. InputA <= InputB
// always holds; the pair is the primary key so a combination resolves to at
// most one row regardless of argument order.
type Recipe struct {
	InputA   int64 `json:"input_a" gorm:"primaryKey;autoIncrement:false"`
	InputB   int64 `json:"input_b" gorm:"primaryKey;autoIncrement:false"`
	ResultID int64 `json:"result_id" gorm:"not null"`
}

// SynthesizedConcept is the validated shape of a model response.
type SynthesizedConcept struct {
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
}
