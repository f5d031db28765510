package model

import (
	"time"
)

const (
	ScoreCorrect          = "Correct"
	ScorePartiallyCorrect = "Partially Correct"
	ScoreIncorrect        = "Incorrect"
)

// Grading is the AI's scored feedback for a user's answer to one question.
// At most one grading exists per question; regrading updates it in place.
type Grading struct {
	ID                       uint      `gorm:"primarykey" json:"id"`
	QuestionID               uint      `json:"question_id" gorm:"not null;uniqueIndex"`
	UserAnswer               string    `json:"user_answer" gorm:"type:text"`
	RealAnswer               string    `json:"real_answer" gorm:"type:text;not null"`
	Score                    string    `json:"score" gorm:"not null"` // "Correct", "Partially Correct", "Incorrect"
	CorrectionAndExplanation string    `json:"correction_and_explanation" gorm:"type:text"`
	AdditionalContext        string    `json:"additional_context" gorm:"type:text"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
