package service

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiLLMService is the boundary to the generation provider. It treats the
// model as an opaque text-in/text-out call; retry policy lives with the
// callers (CallWithRetry), so a failed call here returns a plain error.
type GeminiLLMService interface {
	GenerateContent(ctx context.Context, apiKey, prompt, modelName string) (string, error)
}

type geminiLLMService struct{}

func NewGeminiLLMService() GeminiLLMService {
	return &geminiLLMService{}
}

// GenerateContent streams a generation for the given prompt and returns the
// accumulated text with Markdown code fences stripped. The credential is
// supplied per call because the user brings their own key.
func (s *geminiLLMService) GenerateContent(ctx context.Context, apiKey, prompt, modelName string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", apperror.New(apperror.KindValidation, "API key cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", apperror.New(apperror.KindValidation, "prompt cannot be empty")
	}
	if strings.TrimSpace(modelName) == "" {
		return "", apperror.New(apperror.KindValidation, "model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Gemini client")
		return "", apperror.Wrap(apperror.KindProvider, err, "failed to initialize Gemini client")
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)

	var sb strings.Builder
	iter := model.GenerateContentStream(ctx, genai.Text(prompt))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Error().Err(err).Str("model", modelName).Msg("Gemini streaming call failed")
			return "", apperror.Wrap(apperror.KindProvider, err, "gemini streaming call failed")
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if txt, ok := part.(genai.Text); ok {
					sb.WriteString(string(txt))
				}
			}
		}
	}

	result := sb.String()
	if strings.TrimSpace(result) == "" {
		log.Warn().Str("model", modelName).Msg("Gemini returned no text content")
		return "", apperror.New(apperror.KindProvider, "gemini returned no text content")
	}

	result = stripCodeFences(result)
	if result == "" {
		return "", apperror.New(apperror.KindProvider, "gemini returned only code fence markers")
	}
	return result, nil
}

// stripCodeFences removes the ```json / ``` markers providers sometimes wrap
// around JSON payloads.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
