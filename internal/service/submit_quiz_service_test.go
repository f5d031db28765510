package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
)

func submittedQuiz() []dto.QuizItem {
	return []dto.QuizItem{
		{Question: "What is 2+2?", Options: []string{"3", "4"}, UserAnswer: "4"},
		{Question: "Explain gravity.", UserAnswer: "things fall down"},
	}
}

func goodGradingResponse(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(dto.QuizGradingResult{
		Quiz: []dto.GradedAnswer{
			{
				Question:                 "What is 2+2?",
				Options:                  []string{"3", "4"},
				UserAnswer:               "4",
				RealAnswer:               "4",
				Score:                    "Correct",
				CorrectionAndExplanation: "Exactly right [1].",
				AdditionalContext:        "Basic arithmetic.",
			},
			{
				Question:                 "Explain gravity.",
				UserAnswer:               "things fall down",
				RealAnswer:               "Mass attracts mass.",
				Score:                    "Partially Correct",
				CorrectionAndExplanation: "Falling is an effect; the cause is mutual attraction between masses.",
				AdditionalContext:        "Described by Newton, refined by Einstein.",
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	return string(raw)
}

func TestSubmitQuizEndToEnd(t *testing.T) {
	processor := newTestProcessor(&fakeApiKeyRepo{}, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})
	gemini := &fakeGemini{responses: []string{goodGradingResponse(t)}}
	cfg := testConfig(t)
	svc := NewSubmitQuizService(processor, gemini, cfg)

	result, err := svc.Submit(context.Background(), "user-key", "", submittedQuiz())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Quiz) != 2 {
		t.Fatalf("result has %d items, want 2", len(result.Quiz))
	}
	if result.Quiz[0].CorrectionAndExplanation != "Exactly right ." {
		t.Errorf("correction not sanitized: %q", result.Quiz[0].CorrectionAndExplanation)
	}
	if gemini.lastModel != "gemini-2.5-pro" {
		t.Errorf("default model not applied, got %q", gemini.lastModel)
	}

	for _, name := range []string{"full_prompt_for_quiz.json", "result_for_quiz.json"} {
		if _, err := os.Stat(filepath.Join(cfg.DumpDir, name)); err != nil {
			t.Errorf("diagnostic dump %s not written: %v", name, err)
		}
	}
}

func TestSubmitQuizRejectsEmptyApiKey(t *testing.T) {
	processor := newTestProcessor(&fakeApiKeyRepo{}, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})
	gemini := &fakeGemini{}
	svc := NewSubmitQuizService(processor, gemini, testConfig(t))

	_, err := svc.Submit(context.Background(), "   ", "", submittedQuiz())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if gemini.calls != 0 {
		t.Errorf("no model call should happen without a key, got %d", gemini.calls)
	}
}

func TestSubmitQuizRetriesOnWrongLength(t *testing.T) {
	partial, err := json.Marshal(dto.QuizGradingResult{
		Quiz: []dto.GradedAnswer{
			{
				Question:                 "What is 2+2?",
				UserAnswer:               "4",
				RealAnswer:               "4",
				Score:                    "Correct",
				CorrectionAndExplanation: "Right.",
				AdditionalContext:        "Arithmetic.",
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	processor := newTestProcessor(&fakeApiKeyRepo{}, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})
	gemini := &fakeGemini{responses: []string{string(partial), goodGradingResponse(t)}}
	svc := NewSubmitQuizService(processor, gemini, testConfig(t))

	result, err := svc.Submit(context.Background(), "user-key", "", submittedQuiz())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gemini.calls != 2 {
		t.Errorf("expected a retry after the short response, got %d calls", gemini.calls)
	}
	if len(result.Quiz) != 2 {
		t.Errorf("result has %d items, want 2", len(result.Quiz))
	}
}
