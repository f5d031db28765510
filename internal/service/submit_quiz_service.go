package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jihokoo/notequiz/config"
	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/rs/zerolog/log"
)

// SubmitQuizService is the end-to-end grade-a-quiz operation. Persisting the
// resulting gradings is the caller's responsibility; this service only talks
// to the model and validates what comes back.
type SubmitQuizService interface {
	Submit(ctx context.Context, apiKey, modelName string, quiz []dto.QuizItem) (*dto.QuizGradingResult, error)
}

type submitQuizService struct {
	processor *NoteDataProcessor
	gemini    GeminiLLMService
	cfg       *config.Config
}

func NewSubmitQuizService(processor *NoteDataProcessor, gemini GeminiLLMService, cfg *config.Config) SubmitQuizService {
	return &submitQuizService{processor: processor, gemini: gemini, cfg: cfg}
}

func (s *submitQuizService) Submit(ctx context.Context, apiKey, modelName string, quiz []dto.QuizItem) (*dto.QuizGradingResult, error) {
	if modelName == "" {
		modelName = s.cfg.Gemini.DefaultModel
	}

	if strings.TrimSpace(apiKey) == "" {
		return nil, apperror.New(apperror.KindValidation, "API key cannot be empty")
	}

	if _, err := s.processor.ProcessApiKey(apiKey); err != nil {
		return nil, err
	}

	prompt, err := BuildQuizPrompt(quiz)
	if err != nil {
		return nil, err
	}
	SavePromptToFile(prompt, filepath.Join(s.cfg.DumpDir, "full_prompt_for_quiz.json"))

	result, err := CallWithRetry(func() (*dto.QuizGradingResult, error) {
		raw, err := s.gemini.GenerateContent(ctx, apiKey, prompt, modelName)
		if err != nil {
			return nil, err
		}
		return ValidateQuizGradingResult(raw, len(quiz))
	}, DefaultMaxRetries, DefaultRetryDelay)
	if err != nil {
		log.Error().Err(err).Int("quizItems", len(quiz)).Msg("Quiz grading failed after retries")
		return nil, err
	}

	CleanGradingResult(result)
	SaveResultToFile(result, filepath.Join(s.cfg.DumpDir, "result_for_quiz.json"))

	return result, nil
}
