package model

import (
	"time"

	"gorm.io/gorm"
)

type Note struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Summary   *Summary       `json:"summary,omitempty" gorm:"foreignKey:NoteID"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:NoteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
