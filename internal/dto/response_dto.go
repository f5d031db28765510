package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// SubmitNoteResponse returns the analysis result plus the mapping from
// question text to its persisted ID. The mapping may be shorter than the
// quiz if individual question inserts failed (best-effort persistence).
type SubmitNoteResponse struct {
	NoteID      uint            `json:"note_id"`
	Summary     string          `json:"summary"`
	Quiz        []QuizQuestion  `json:"quiz"`
	QuestionIDs map[string]uint `json:"question_ids"`
}

type NoteSummaryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GradingResponse struct {
	ID                       uint      `json:"id"`
	QuestionID               uint      `json:"question_id"`
	UserAnswer               string    `json:"user_answer"`
	RealAnswer               string    `json:"real_answer"`
	Score                    string    `json:"score"`
	CorrectionAndExplanation string    `json:"correction_and_explanation"`
	AdditionalContext        string    `json:"additional_context"`
	UpdatedAt                time.Time `json:"updated_at"`
}

type QuestionResponse struct {
	ID      uint             `json:"id"`
	Content string           `json:"question"`
	Type    string           `json:"question_type"`
	Answer  string           `json:"answer"`
	Options []string         `json:"options,omitempty"`
	Grading *GradingResponse `json:"grading,omitempty"`
}

type NoteDetailResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Content   string             `json:"content"`
	Tags      []string           `json:"tags,omitempty"`
	Summary   string             `json:"summary,omitempty"`
	Questions []QuestionResponse `json:"questions,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type GradeQuizResponse struct {
	Quiz []GradedAnswer `json:"quiz"`
}
