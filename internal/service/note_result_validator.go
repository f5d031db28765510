package service

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/jihokoo/notequiz/internal/model"
	"github.com/rs/zerolog/log"
)

// ValidateNoteResult parses the raw model output and enforces the note
// schema, failing fast on the first violation. Malformed JSON and schema
// violations surface as the same error kind but are logged separately.
func ValidateNoteResult(raw string) (*dto.NoteResult, error) {
	var result dto.NoteResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Error().Err(err).Msg("Failed to parse note result as JSON")
		return nil, apperror.Wrap(apperror.KindSchema, err, "invalid JSON response from Gemini")
	}

	if strings.TrimSpace(result.Summary) == "" {
		log.Error().Msg("Note result failed schema check: no summary")
		return nil, apperror.New(apperror.KindSchema, "missing 'summary' in Gemini response")
	}
	if len(result.Quiz) == 0 {
		log.Error().Msg("Note result failed schema check: no quiz")
		return nil, apperror.New(apperror.KindSchema, "missing 'quiz' in Gemini response")
	}

	for i, item := range result.Quiz {
		if strings.TrimSpace(item.QuestionType) == "" {
			return nil, apperror.New(apperror.KindSchema, "quiz item %d missing required field: question_type", i)
		}
		if strings.TrimSpace(item.Question) == "" {
			return nil, apperror.New(apperror.KindSchema, "quiz item %d missing required field: question", i)
		}
		if strings.TrimSpace(item.Answer) == "" {
			return nil, apperror.New(apperror.KindSchema, "quiz item %d missing required field: answer", i)
		}
		switch item.QuestionType {
		case model.QuestionTypeMultipleChoice:
			if len(item.Options) < 2 {
				return nil, apperror.New(apperror.KindSchema, "quiz item %d must have at least 2 options for multiple choice", i)
			}
		case model.QuestionTypeShortAnswer, model.QuestionTypeLongAnswer:
			// options are optional here
		default:
			return nil, apperror.New(apperror.KindSchema, "quiz item %d has invalid question_type: %s", i, item.QuestionType)
		}
	}

	return &result, nil
}

// SaveResultToFile dumps a validated document to disk for offline
// inspection. This is a diagnostic side channel: failures are logged and
// swallowed, never escalated.
func SaveResultToFile(v any, path string) {
	payload, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to serialize result for dump file")
		return
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Processed result but failed to save dump file")
	}
}

// SavePromptToFile writes an already-serialized prompt document to disk.
// Same best-effort contract as SaveResultToFile.
func SavePromptToFile(prompt, path string) {
	if err := os.WriteFile(path, []byte(prompt), 0o644); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to save prompt dump file")
	}
}
