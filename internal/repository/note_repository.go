package repository

import (
	"github.com/jihokoo/notequiz/internal/model"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(note *model.Note) error
	FindByID(id uint) (*model.Note, error)
	FindByIDWithDetails(id uint) (*model.Note, error)
	FindAll() ([]model.Note, error)
	Delete(id uint) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *model.Note) error {
	return r.db.Create(note).Error
}

func (r *noteRepository) FindByID(id uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByIDWithDetails loads the note together with its summary, questions,
// options and gradings in one go.
func (r *noteRepository) FindByIDWithDetails(id uint) (*model.Note, error) {
	var note model.Note
	err := r.db.
		Preload("Summary").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.created_at ASC")
		}).
		Preload("Questions.Options").
		Preload("Questions.Grading").
		First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) FindAll() ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.Order("created_at desc").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Delete(id uint) error {
	return r.db.Delete(&model.Note{}, id).Error
}
