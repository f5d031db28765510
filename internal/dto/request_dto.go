package dto

// SubmitNoteRequest carries one lecture transcript submission. QuizStructure
// maps question type ("multiple_choice", "short_answer", "long_answer") to
// the number of questions to generate; all three keys must be present.
type SubmitNoteRequest struct {
	ApiKey        string         `json:"api_key" binding:"required"`
	Model         string         `json:"model"`
	Name          string         `json:"name" binding:"required"`
	Tags          []string       `json:"tags"`
	Content       string         `json:"content" binding:"required"`
	QuizStructure map[string]int `json:"quiz_structure" binding:"required"`
}

// QuizAnswerItem is one answered question submitted for grading.
type QuizAnswerItem struct {
	QuestionID uint     `json:"question_id" binding:"required"`
	Question   string   `json:"question" binding:"required"`
	Options    []string `json:"options"`
	UserAnswer string   `json:"user_answer"`
}

type GradeQuizRequest struct {
	ApiKey string           `json:"api_key" binding:"required"`
	Model  string           `json:"model"`
	Quiz   []QuizAnswerItem `json:"quiz" binding:"required,dive"`
}
