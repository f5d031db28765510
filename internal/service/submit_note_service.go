package service

import (
	"context"
	"path/filepath"

	"github.com/jihokoo/notequiz/config"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/rs/zerolog/log"
)

// SubmitNoteService is the end-to-end analyze-a-note operation: validate
// inputs, upsert the credential, build the prompt, call the model with
// retry, validate and sanitize the response, persist everything.
type SubmitNoteService interface {
	Submit(ctx context.Context, req dto.SubmitNoteRequest) (*dto.SubmitNoteResponse, error)
}

type submitNoteService struct {
	processor *NoteDataProcessor
	gemini    GeminiLLMService
	cfg       *config.Config
}

func NewSubmitNoteService(processor *NoteDataProcessor, gemini GeminiLLMService, cfg *config.Config) SubmitNoteService {
	return &submitNoteService{processor: processor, gemini: gemini, cfg: cfg}
}

func (s *submitNoteService) Submit(ctx context.Context, req dto.SubmitNoteRequest) (*dto.SubmitNoteResponse, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = s.cfg.Gemini.DefaultModel
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	if err := s.processor.ValidateInputs(req.ApiKey, req.Name, tags, req.Content, req.QuizStructure, modelName); err != nil {
		return nil, err
	}

	if _, err := s.processor.ProcessApiKey(req.ApiKey); err != nil {
		return nil, err
	}

	prompt, err := BuildNotePrompt(req.Content, req.QuizStructure)
	if err != nil {
		return nil, err
	}
	SavePromptToFile(prompt, filepath.Join(s.cfg.DumpDir, "full_prompt_for_note.json"))

	// The retry wraps the whole call-then-validate cycle so a malformed
	// response triggers a fresh generation, not a doomed re-parse.
	result, err := CallWithRetry(func() (*dto.NoteResult, error) {
		raw, err := s.gemini.GenerateContent(ctx, req.ApiKey, prompt, modelName)
		if err != nil {
			return nil, err
		}
		return ValidateNoteResult(raw)
	}, DefaultMaxRetries, DefaultRetryDelay)
	if err != nil {
		log.Error().Err(err).Str("noteName", req.Name).Msg("Note analysis failed after retries")
		return nil, err
	}

	CleanNoteResult(result)
	SaveResultToFile(result, filepath.Join(s.cfg.DumpDir, "result_for_note.json"))

	noteID, err := s.processor.ProcessNote(req.Name, req.Content, tags)
	if err != nil {
		return nil, err
	}
	if err := s.processor.ProcessSummary(noteID, result.Summary); err != nil {
		return nil, err
	}
	questionIDs := s.processor.ProcessQuizQuestions(noteID, result.Quiz)

	log.Info().Uint("noteID", noteID).Int("generated", len(result.Quiz)).Int("persisted", len(questionIDs)).Msg("Note submission completed")

	return &dto.SubmitNoteResponse{
		NoteID:      noteID,
		Summary:     result.Summary,
		Quiz:        result.Quiz,
		QuestionIDs: questionIDs,
	}, nil
}
