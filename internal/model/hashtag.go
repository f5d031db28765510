package model

import (
	"time"

	"gorm.io/gorm"
)

type Hashtag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Tag       string    `json:"tag" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteHashtag links notes to hashtags. The link is soft-deleted so a removed
// tag disappears from the note without losing the hashtag row itself.
type NoteHashtag struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	NoteID    uint           `json:"note_id" gorm:"not null;index"`
	HashtagID uint           `json:"hashtag_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
