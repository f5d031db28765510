package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeShortAnswer    = "short_answer"
	QuestionTypeLongAnswer     = "long_answer"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	NoteID    uint           `json:"note_id" gorm:"not null;index"`
	Content   string         `json:"question" gorm:"type:text;not null"`
	Type      string         `json:"question_type" gorm:"not null"` // "multiple_choice", "short_answer", "long_answer"
	Answer    string         `json:"answer" gorm:"type:text;not null"`
	Options   []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Grading   *Grading       `json:"grading,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
