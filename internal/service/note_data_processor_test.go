package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/jihokoo/notequiz/internal/model"
)

type fakeApiKeyRepo struct {
	keys      []model.ApiKey
	inserted  []string
	touched   []uint
	findErr   error
	insertErr error
}

func (f *fakeApiKeyRepo) FindAll() ([]model.ApiKey, error) {
	return f.keys, f.findErr
}

func (f *fakeApiKeyRepo) Insert(key string) (uint, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, key)
	return uint(len(f.keys) + len(f.inserted)), nil
}

func (f *fakeApiKeyRepo) TouchLastUsed(id uint) error {
	f.touched = append(f.touched, id)
	return nil
}

type fakeNoteRepo struct {
	notes     []model.Note
	createErr error
	deleted   []uint
}

func (f *fakeNoteRepo) Create(note *model.Note) error {
	if f.createErr != nil {
		return f.createErr
	}
	note.ID = uint(len(f.notes) + 1)
	f.notes = append(f.notes, *note)
	return nil
}

func (f *fakeNoteRepo) FindByID(id uint) (*model.Note, error) {
	for i := range f.notes {
		if f.notes[i].ID == id {
			return &f.notes[i], nil
		}
	}
	return nil, errors.New("note not found")
}

func (f *fakeNoteRepo) FindByIDWithDetails(id uint) (*model.Note, error) {
	return f.FindByID(id)
}

func (f *fakeNoteRepo) FindAll() ([]model.Note, error) {
	return f.notes, nil
}

func (f *fakeNoteRepo) Delete(id uint) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeHashtagRepo struct {
	tagsByNote map[uint][]string
	insertErr  error
}

func (f *fakeHashtagRepo) InsertNoteHashtags(noteID uint, tags []string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.tagsByNote == nil {
		f.tagsByNote = make(map[uint][]string)
	}
	f.tagsByNote[noteID] = append(f.tagsByNote[noteID], tags...)
	return nil
}

func (f *fakeHashtagRepo) FindTagsByNoteID(noteID uint) ([]string, error) {
	return f.tagsByNote[noteID], nil
}

type fakeSummaryRepo struct {
	byNote    map[uint]string
	insertErr error
}

func (f *fakeSummaryRepo) Insert(noteID uint, content string) (uint, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	if f.byNote == nil {
		f.byNote = make(map[uint]string)
	}
	f.byNote[noteID] = content
	return noteID, nil
}

func (f *fakeSummaryRepo) FindByNoteID(noteID uint) (*model.Summary, error) {
	content, ok := f.byNote[noteID]
	if !ok {
		return nil, errors.New("summary not found")
	}
	return &model.Summary{NoteID: noteID, Content: content}, nil
}

type fakeQuestionRepo struct {
	questions []model.Question
	failOn    string // question text that triggers a create error
}

func (f *fakeQuestionRepo) Create(question *model.Question) error {
	if f.failOn != "" && question.Content == f.failOn {
		return errors.New("insert rejected")
	}
	question.ID = uint(len(f.questions) + 1)
	f.questions = append(f.questions, *question)
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			return &f.questions[i], nil
		}
	}
	return nil, errors.New("question not found")
}

func (f *fakeQuestionRepo) FindByNoteID(noteID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.NoteID == noteID {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeOptionRepo struct {
	byQuestion map[uint][]string
	insertErr  error
}

func (f *fakeOptionRepo) InsertAll(questionID uint, options []string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.byQuestion == nil {
		f.byQuestion = make(map[uint][]string)
	}
	f.byQuestion[questionID] = options
	return nil
}

func (f *fakeOptionRepo) FindByQuestionID(questionID uint) ([]model.Option, error) {
	var out []model.Option
	for _, content := range f.byQuestion[questionID] {
		out = append(out, model.Option{QuestionID: questionID, Content: content})
	}
	return out, nil
}

func newTestProcessor(apiKeyRepo *fakeApiKeyRepo, noteRepo *fakeNoteRepo, hashtagRepo *fakeHashtagRepo, summaryRepo *fakeSummaryRepo, questionRepo *fakeQuestionRepo, optionRepo *fakeOptionRepo) *NoteDataProcessor {
	return NewNoteDataProcessor(apiKeyRepo, noteRepo, hashtagRepo, summaryRepo, questionRepo, optionRepo)
}

func TestValidateInputs(t *testing.T) {
	p := newTestProcessor(&fakeApiKeyRepo{}, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})
	structure := map[string]int{"multiple_choice": 1, "short_answer": 1, "long_answer": 1}

	tests := []struct {
		name    string
		apiKey  string
		title   string
		tags    []string
		content string
		quiz    map[string]int
		model   string
		wantErr bool
	}{
		{"valid", "key", "title", []string{}, "content", structure, "gemini-2.5-pro", false},
		{"empty api key", "", "title", []string{}, "content", structure, "gemini-2.5-pro", true},
		{"empty name", "key", "  ", []string{}, "content", structure, "gemini-2.5-pro", true},
		{"nil tags", "key", "title", nil, "content", structure, "gemini-2.5-pro", true},
		{"empty content", "key", "title", []string{}, "", structure, "gemini-2.5-pro", true},
		{"nil quiz structure", "key", "title", []string{}, "content", nil, "gemini-2.5-pro", true},
		{"empty model", "key", "title", []string{}, "content", structure, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidateInputs(tt.apiKey, tt.title, tt.tags, tt.content, tt.quiz, tt.model)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInputs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperror.IsKind(err, apperror.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestProcessApiKeyExistingKeyTouched(t *testing.T) {
	apiKeyRepo := &fakeApiKeyRepo{
		keys: []model.ApiKey{
			{ID: 7, Key: "known-key", LastUsedAt: time.Now().Add(-time.Hour)},
		},
	}
	p := newTestProcessor(apiKeyRepo, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})

	id, err := p.ProcessApiKey("known-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}
	if len(apiKeyRepo.inserted) != 0 {
		t.Errorf("existing key should not be re-inserted, got %v", apiKeyRepo.inserted)
	}
	if len(apiKeyRepo.touched) != 1 || apiKeyRepo.touched[0] != 7 {
		t.Errorf("existing key should be touched, got %v", apiKeyRepo.touched)
	}
}

func TestProcessApiKeyUnknownKeyInserted(t *testing.T) {
	apiKeyRepo := &fakeApiKeyRepo{}
	p := newTestProcessor(apiKeyRepo, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})

	if _, err := p.ProcessApiKey("fresh-key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apiKeyRepo.inserted) != 1 || apiKeyRepo.inserted[0] != "fresh-key" {
		t.Errorf("unknown key should be inserted, got %v", apiKeyRepo.inserted)
	}
	if len(apiKeyRepo.touched) != 0 {
		t.Errorf("nothing should be touched, got %v", apiKeyRepo.touched)
	}
}

func TestProcessApiKeyStorageFailureIsFatal(t *testing.T) {
	apiKeyRepo := &fakeApiKeyRepo{findErr: errors.New("db down")}
	p := newTestProcessor(apiKeyRepo, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})

	_, err := p.ProcessApiKey("any")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperror.IsKind(err, apperror.KindPersistence) {
		t.Errorf("expected persistence error, got %v", err)
	}
}

func TestProcessNoteTagFailureIsTolerated(t *testing.T) {
	noteRepo := &fakeNoteRepo{}
	hashtagRepo := &fakeHashtagRepo{insertErr: errors.New("tag table locked")}
	p := newTestProcessor(&fakeApiKeyRepo{}, noteRepo, hashtagRepo, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})

	noteID, err := p.ProcessNote("My Note", "content", []string{"biology"})
	if err != nil {
		t.Fatalf("tag failure should not fail the note: %v", err)
	}
	if noteID == 0 {
		t.Error("note should have been created")
	}
}

func TestProcessNoteInsertFailureIsFatal(t *testing.T) {
	noteRepo := &fakeNoteRepo{createErr: errors.New("disk full")}
	p := newTestProcessor(&fakeApiKeyRepo{}, noteRepo, &fakeHashtagRepo{}, &fakeSummaryRepo{}, &fakeQuestionRepo{}, &fakeOptionRepo{})

	_, err := p.ProcessNote("My Note", "content", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperror.IsKind(err, apperror.KindPersistence) {
		t.Errorf("expected persistence error, got %v", err)
	}
}

func TestProcessQuizQuestionsContinuesPastFailures(t *testing.T) {
	questionRepo := &fakeQuestionRepo{failOn: "Bad question?"}
	optionRepo := &fakeOptionRepo{}
	p := newTestProcessor(&fakeApiKeyRepo{}, &fakeNoteRepo{}, &fakeHashtagRepo{}, &fakeSummaryRepo{}, questionRepo, optionRepo)

	quiz := []dto.QuizQuestion{
		{QuestionType: "multiple_choice", Question: "Good question?", Options: []string{"A", "B"}, Answer: "A"},
		{QuestionType: "short_answer", Question: "Bad question?", Answer: "whatever"},
		{QuestionType: "long_answer", Question: "Another good one?", Answer: "essay"},
	}

	ids := p.ProcessQuizQuestions(42, quiz)

	if len(ids) != 2 {
		t.Fatalf("mapping has %d entries, want 2: %v", len(ids), ids)
	}
	if _, ok := ids["Bad question?"]; ok {
		t.Error("failed question must not appear in the mapping")
	}
	if _, ok := ids["Good question?"]; !ok {
		t.Error("surviving question missing from the mapping")
	}

	goodID := ids["Good question?"]
	options, _ := optionRepo.FindByQuestionID(goodID)
	if len(options) != 2 {
		t.Errorf("multiple choice question should have 2 options persisted, got %d", len(options))
	}
}
