package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
)

func validGradingResultJSON(t *testing.T, mutate func(*dto.QuizGradingResult)) string {
	t.Helper()
	result := dto.QuizGradingResult{
		Quiz: []dto.GradedAnswer{
			{
				Question:                 "What is 2+2?",
				Options:                  []string{"3", "4"},
				UserAnswer:               "4",
				RealAnswer:               "4",
				Score:                    "Correct",
				CorrectionAndExplanation: "Exactly right.",
				AdditionalContext:        "Basic arithmetic.",
			},
			{
				Question:                 "Explain gravity.",
				UserAnswer:               "",
				RealAnswer:               "Mass attracts mass.",
				Score:                    "Incorrect",
				CorrectionAndExplanation: "No answer was given; gravity is the attraction between masses.",
				AdditionalContext:        "Described by Newton, refined by Einstein.",
			},
		},
	}
	if mutate != nil {
		mutate(&result)
	}
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	return string(raw)
}

func TestValidateQuizGradingResultAcceptsValid(t *testing.T) {
	result, err := ValidateQuizGradingResult(validGradingResultJSON(t, nil), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Quiz) != 2 {
		t.Errorf("quiz has %d items, want 2", len(result.Quiz))
	}
	// An empty user answer is a legitimate grading input, not a schema hole.
	if result.Quiz[1].UserAnswer != "" {
		t.Errorf("user_answer = %q, want empty", result.Quiz[1].UserAnswer)
	}
}

func TestValidateQuizGradingResultRejects(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		expectedLength int
	}{
		{"not json", "sure, here are your grades", 2},
		{"empty quiz", `{"quiz": []}`, 2},
		{"missing quiz key", `{}`, 2},
		{"too few items", validGradingResultJSON(t, nil), 3},
		{"too many items", validGradingResultJSON(t, nil), 1},
		{"missing question", validGradingResultJSON(t, func(r *dto.QuizGradingResult) { r.Quiz[0].Question = "" }), 2},
		{"missing real_answer", validGradingResultJSON(t, func(r *dto.QuizGradingResult) { r.Quiz[0].RealAnswer = "" }), 2},
		{"missing correction", validGradingResultJSON(t, func(r *dto.QuizGradingResult) { r.Quiz[1].CorrectionAndExplanation = "" }), 2},
		{"missing context", validGradingResultJSON(t, func(r *dto.QuizGradingResult) { r.Quiz[1].AdditionalContext = "" }), 2},
		{"invalid score", validGradingResultJSON(t, func(r *dto.QuizGradingResult) { r.Quiz[0].Score = "Mostly Right" }), 2},
		{"lowercase score", validGradingResultJSON(t, func(r *dto.QuizGradingResult) { r.Quiz[0].Score = "correct" }), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuizGradingResult(tt.raw, tt.expectedLength)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperror.IsKind(err, apperror.KindSchema) {
				t.Errorf("expected schema error, got %v", err)
			}
		})
	}
}

func TestValidateQuizGradingResultLengthMessage(t *testing.T) {
	_, err := ValidateQuizGradingResult(validGradingResultJSON(t, nil), 5)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "expected 5 quiz items, got 2") {
		t.Errorf("error should cite both lengths, got %q", err.Error())
	}
}
