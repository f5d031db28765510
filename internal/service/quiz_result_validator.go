package service

import (
	"encoding/json"
	"strings"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/jihokoo/notequiz/internal/model"
	"github.com/rs/zerolog/log"
)

var validScores = map[string]bool{
	model.ScoreCorrect:          true,
	model.ScorePartiallyCorrect: true,
	model.ScoreIncorrect:        true,
}

// ValidateQuizGradingResult parses the raw model output and enforces the
// grading schema. expectedLength is the number of submitted quiz items; the
// returned quiz must match it exactly, proving the model answered every
// question exactly once.
func ValidateQuizGradingResult(raw string, expectedLength int) (*dto.QuizGradingResult, error) {
	var result dto.QuizGradingResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Error().Err(err).Msg("Failed to parse quiz grading result as JSON")
		return nil, apperror.Wrap(apperror.KindSchema, err, "invalid JSON response from Gemini")
	}

	if len(result.Quiz) == 0 {
		log.Error().Msg("Quiz grading result failed schema check: no quiz")
		return nil, apperror.New(apperror.KindSchema, "missing 'quiz' in Gemini response")
	}
	if len(result.Quiz) != expectedLength {
		log.Error().Int("expected", expectedLength).Int("got", len(result.Quiz)).Msg("Quiz grading result has wrong length")
		return nil, apperror.New(apperror.KindSchema, "expected %d quiz items, got %d", expectedLength, len(result.Quiz))
	}

	for i, item := range result.Quiz {
		if strings.TrimSpace(item.Question) == "" {
			return nil, apperror.New(apperror.KindSchema, "quiz result item %d missing required field: question", i)
		}
		if strings.TrimSpace(item.RealAnswer) == "" {
			return nil, apperror.New(apperror.KindSchema, "quiz result item %d missing required field: real_answer", i)
		}
		if strings.TrimSpace(item.CorrectionAndExplanation) == "" {
			return nil, apperror.New(apperror.KindSchema, "quiz result item %d missing required field: correction_and_explanation", i)
		}
		if strings.TrimSpace(item.AdditionalContext) == "" {
			return nil, apperror.New(apperror.KindSchema, "quiz result item %d missing required field: additional_context", i)
		}
		if !validScores[item.Score] {
			return nil, apperror.New(apperror.KindSchema, "quiz result item %d has invalid score: %s", i, item.Score)
		}
	}

	return &result, nil
}
