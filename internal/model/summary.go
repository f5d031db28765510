package model

import (
	"time"
)

// Summary is the AI-generated digest of a note, exactly one per note.
type Summary struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	NoteID    uint      `json:"note_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
