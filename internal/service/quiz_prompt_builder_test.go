package service

import (
	"encoding/json"
	"testing"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
)

func TestBuildQuizPromptRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		quiz []dto.QuizItem
	}{
		{"nil quiz", nil},
		{"empty quiz", []dto.QuizItem{}},
		{"item with empty question", []dto.QuizItem{{Question: "", UserAnswer: "42"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildQuizPrompt(tt.quiz)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperror.IsKind(err, apperror.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestBuildQuizPromptDocument(t *testing.T) {
	quiz := []dto.QuizItem{
		{Question: "What is 2+2?", Options: []string{"3", "4"}, UserAnswer: "4"},
		{Question: "Explain gravity.", UserAnswer: ""},
	}

	prompt, err := BuildQuizPrompt(quiz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Role      string   `json:"role"`
		CoreTasks []string `json:"core_tasks"`
		UserInput struct {
			Quiz []dto.QuizItem `json:"quiz_with_answers"`
		} `json:"user_input"`
	}
	if err := json.Unmarshal([]byte(prompt), &doc); err != nil {
		t.Fatalf("prompt is not valid JSON: %v", err)
	}

	if doc.Role == "" {
		t.Error("prompt document missing role")
	}
	if len(doc.CoreTasks) == 0 {
		t.Error("prompt document missing core tasks")
	}
	if len(doc.UserInput.Quiz) != 2 {
		t.Fatalf("quiz_with_answers has %d items, want 2", len(doc.UserInput.Quiz))
	}
	if doc.UserInput.Quiz[0].Question != "What is 2+2?" {
		t.Errorf("first question = %q", doc.UserInput.Quiz[0].Question)
	}
	// An unanswered question is still submitted for grading.
	if doc.UserInput.Quiz[1].UserAnswer != "" {
		t.Errorf("empty user answer should survive the round trip, got %q", doc.UserInput.Quiz[1].UserAnswer)
	}
}
