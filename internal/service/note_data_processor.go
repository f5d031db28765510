package service

import (
	"strings"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/jihokoo/notequiz/internal/model"
	"github.com/jihokoo/notequiz/internal/repository"
	"github.com/rs/zerolog/log"
)

// NoteDataProcessor owns the storage write sequence for a submission. Steps
// have different failure tolerance: the API key, note and summary writes are
// fatal, while tag and per-question failures are logged and tolerated so one
// bad row cannot discard an otherwise valid result.
type NoteDataProcessor struct {
	apiKeyRepo   repository.ApiKeyRepository
	noteRepo     repository.NoteRepository
	hashtagRepo  repository.NoteHashtagRepository
	summaryRepo  repository.SummaryRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
}

func NewNoteDataProcessor(
	apiKeyRepo repository.ApiKeyRepository,
	noteRepo repository.NoteRepository,
	hashtagRepo repository.NoteHashtagRepository,
	summaryRepo repository.SummaryRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
) *NoteDataProcessor {
	return &NoteDataProcessor{
		apiKeyRepo:   apiKeyRepo,
		noteRepo:     noteRepo,
		hashtagRepo:  hashtagRepo,
		summaryRepo:  summaryRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
	}
}

// ValidateInputs is the cheap fail-fast gate applied once per submission,
// before any network or storage cost is incurred.
func (p *NoteDataProcessor) ValidateInputs(apiKey, noteName string, noteTags []string, noteContent string, quizStructure map[string]int, modelName string) error {
	if strings.TrimSpace(apiKey) == "" {
		return apperror.New(apperror.KindValidation, "API key cannot be empty")
	}
	if strings.TrimSpace(noteName) == "" {
		return apperror.New(apperror.KindValidation, "note name cannot be empty")
	}
	if noteTags == nil {
		return apperror.New(apperror.KindValidation, "note tags must be a list")
	}
	if strings.TrimSpace(noteContent) == "" {
		return apperror.New(apperror.KindValidation, "note content cannot be empty")
	}
	if quizStructure == nil {
		return apperror.New(apperror.KindValidation, "quiz structure must be a map")
	}
	if strings.TrimSpace(modelName) == "" {
		return apperror.New(apperror.KindValidation, "model cannot be empty")
	}
	return nil
}

// ProcessApiKey touches an existing key record's last_used_at, or inserts a
// new record for an unknown key, and returns the record's ID. Failure here
// is fatal: a submission cannot proceed without a usable key record.
func (p *NoteDataProcessor) ProcessApiKey(apiKey string) (uint, error) {
	keys, err := p.apiKeyRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list API keys")
		return 0, apperror.Wrap(apperror.KindPersistence, err, "failed to process API key")
	}

	for _, existing := range keys {
		if existing.Key == apiKey {
			if err := p.apiKeyRepo.TouchLastUsed(existing.ID); err != nil {
				log.Error().Err(err).Uint("apiKeyID", existing.ID).Msg("Failed to touch API key")
				return 0, apperror.Wrap(apperror.KindPersistence, err, "failed to process API key")
			}
			return existing.ID, nil
		}
	}

	id, err := p.apiKeyRepo.Insert(apiKey)
	if err != nil {
		log.Error().Err(err).Msg("Failed to insert API key")
		return 0, apperror.Wrap(apperror.KindPersistence, err, "failed to process API key")
	}
	return id, nil
}

// ProcessNote inserts the note row and then, best-effort, its tag links.
// The note insert is fatal; a tag failure leaves the note standing without
// its tags, because tags are an enrichment and the note is the primary
// artifact.
func (p *NoteDataProcessor) ProcessNote(noteName, noteContent string, noteTags []string) (uint, error) {
	note := model.Note{Name: noteName, Content: noteContent}
	if err := p.noteRepo.Create(&note); err != nil {
		log.Error().Err(err).Str("noteName", noteName).Msg("Failed to insert note")
		return 0, apperror.Wrap(apperror.KindPersistence, err, "failed to process note")
	}

	if len(noteTags) > 0 {
		if err := p.hashtagRepo.InsertNoteHashtags(note.ID, noteTags); err != nil {
			log.Warn().Err(err).Uint("noteID", note.ID).Msg("Note created but tags failed to insert")
		}
	}

	return note.ID, nil
}

// ProcessSummary persists the note's summary. Fatal: a note without its
// summary is an incomplete submission.
func (p *NoteDataProcessor) ProcessSummary(noteID uint, summary string) error {
	if _, err := p.summaryRepo.Insert(noteID, summary); err != nil {
		log.Error().Err(err).Uint("noteID", noteID).Msg("Failed to insert summary")
		return apperror.Wrap(apperror.KindPersistence, err, "failed to process summary")
	}
	return nil
}

// ProcessQuizQuestions persists each generated question with its options and
// returns a mapping from question text to the generated ID. A per-item
// failure is logged and the loop continues; the mapping only contains the
// items that made it in.
func (p *NoteDataProcessor) ProcessQuizQuestions(noteID uint, quiz []dto.QuizQuestion) map[string]uint {
	questionIDs := make(map[string]uint, len(quiz))

	for _, item := range quiz {
		question := model.Question{
			NoteID:  noteID,
			Content: item.Question,
			Type:    item.QuestionType,
			Answer:  item.Answer,
		}
		if err := p.questionRepo.Create(&question); err != nil {
			log.Error().Err(err).Uint("noteID", noteID).Str("question", item.Question).Msg("Failed to insert quiz question, continuing with the rest")
			continue
		}

		if len(item.Options) > 0 {
			if err := p.optionRepo.InsertAll(question.ID, item.Options); err != nil {
				log.Error().Err(err).Uint("questionID", question.ID).Msg("Failed to insert options, continuing with the rest")
				continue
			}
		}

		questionIDs[item.Question] = question.ID
	}

	return questionIDs
}
