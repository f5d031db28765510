package dto

// QuizItem is the shape embedded in the grading prompt: a question together
// with the user's answer.
type QuizItem struct {
	Question   string   `json:"question"`
	Options    []string `json:"options,omitempty"`
	UserAnswer string   `json:"user_answer"`
}

// QuizQuestion is one generated practice question as returned by the model.
// Options is present with at least two entries iff QuestionType is
// "multiple_choice"; short and long answers carry none.
type QuizQuestion struct {
	QuestionType string   `json:"question_type"`
	Question     string   `json:"question"`
	Options      []string `json:"options,omitempty"`
	Answer       string   `json:"answer"`
}

// NoteResult is the validated model output for a note submission.
type NoteResult struct {
	Summary string         `json:"summary"`
	Quiz    []QuizQuestion `json:"quiz"`
}

// GradedAnswer is the model's verdict on a single answered question.
type GradedAnswer struct {
	Question                 string   `json:"question"`
	Options                  []string `json:"options,omitempty"`
	UserAnswer               string   `json:"user_answer"`
	RealAnswer               string   `json:"real_answer"`
	Score                    string   `json:"score"`
	CorrectionAndExplanation string   `json:"correction_and_explanation"`
	AdditionalContext        string   `json:"additional_context"`
}

// QuizGradingResult is the validated model output for a grading submission.
// Quiz has exactly one entry per submitted item.
type QuizGradingResult struct {
	Quiz []GradedAnswer `json:"quiz"`
}
