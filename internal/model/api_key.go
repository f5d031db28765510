package model

import (
	"time"
)

// ApiKey stores a Gemini credential the user has submitted before.
// Uniqueness is logical by key value: resubmitting a known key only touches
// LastUsedAt instead of inserting a duplicate row.
type ApiKey struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Key        string    `json:"-" gorm:"column:api_key;type:text;not null"`
	LastUsedAt time.Time `json:"last_used_at" gorm:"autoCreateTime"`
	CreatedAt  time.Time `json:"created_at"`
}
