package service

import (
	"reflect"
	"testing"

	"github.com/jihokoo/notequiz/internal/dto"
)

func TestEraseBracketedCitations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no brackets", "This is a test", "This is a test"},
		{"single citation", "This is a test [1]", "This is a test"},
		{"multi number citation", "Photosynthesis [12, 13] makes sugar", "Photosynthesis  makes sugar"},
		{"multiple citations", "Mixed [1] content [2, 3] here", "Mixed  content  here"},
		{"non numeric bracket kept", "see [abc] for details", "see [abc] for details"},
		{"range bracket kept", "see [1-2] for details", "see [1-2] for details"},
		{"empty brackets removed", "trailing []", "trailing"},
		{"whitespace only citation", "a [ 1 , 2 ] b", "a  b"},
		{"leading and trailing space trimmed", "  [3] padded  ", "padded"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EraseBracketedCitations(tt.input)
			if got != tt.want {
				t.Errorf("EraseBracketedCitations(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEraseBracketedCitationsIdempotent(t *testing.T) {
	input := "Photosynthesis [12, 13] makes sugar [4]"
	once := EraseBracketedCitations(input)
	twice := EraseBracketedCitations(once)
	if once != twice {
		t.Errorf("cleaning is not idempotent: first %q, second %q", once, twice)
	}
}

func TestCleanNoteResult(t *testing.T) {
	result := &dto.NoteResult{
		Summary: "Summary with citation [1, 2]",
		Quiz: []dto.QuizQuestion{
			{
				QuestionType: "multiple_choice",
				Question:     "What is X [3]?",
				Options:      []string{"Option A [4]", "Option B"},
				Answer:       "Option A [4]",
			},
		},
	}

	CleanNoteResult(result)

	if result.Summary != "Summary with citation" {
		t.Errorf("summary not cleaned: %q", result.Summary)
	}
	if result.Quiz[0].Question != "What is X ?" {
		t.Errorf("question not cleaned: %q", result.Quiz[0].Question)
	}
	if result.Quiz[0].Answer != "Option A" {
		t.Errorf("answer not cleaned: %q", result.Quiz[0].Answer)
	}
	wantOptions := []string{"Option A", "Option B"}
	if !reflect.DeepEqual(result.Quiz[0].Options, wantOptions) {
		t.Errorf("options not cleaned: %v", result.Quiz[0].Options)
	}
}

func TestCleanNoteResultNil(t *testing.T) {
	CleanNoteResult(nil) // must not panic
}

func TestCleanGradingResult(t *testing.T) {
	result := &dto.QuizGradingResult{
		Quiz: []dto.GradedAnswer{
			{
				Question:                 "What is X [1]?",
				Options:                  []string{"A [2]", "B"},
				UserAnswer:               "A [2]",
				RealAnswer:               "A [3]",
				Score:                    "Correct",
				CorrectionAndExplanation: "Well done [4]",
				AdditionalContext:        "Context [5, 6]",
			},
		},
	}

	CleanGradingResult(result)

	g := result.Quiz[0]
	if g.Question != "What is X ?" {
		t.Errorf("question not cleaned: %q", g.Question)
	}
	if g.UserAnswer != "A" || g.RealAnswer != "A" {
		t.Errorf("answers not cleaned: user %q, real %q", g.UserAnswer, g.RealAnswer)
	}
	if g.Score != "Correct" {
		t.Errorf("score should be untouched, got %q", g.Score)
	}
	if g.CorrectionAndExplanation != "Well done" {
		t.Errorf("correction not cleaned: %q", g.CorrectionAndExplanation)
	}
	if g.AdditionalContext != "Context" {
		t.Errorf("context not cleaned: %q", g.AdditionalContext)
	}
	if !reflect.DeepEqual(g.Options, []string{"A", "B"}) {
		t.Errorf("options not cleaned: %v", g.Options)
	}
}
