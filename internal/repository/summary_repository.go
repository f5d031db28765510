package repository

import (
	"github.com/jihokoo/notequiz/internal/model"
	"gorm.io/gorm"
)

type SummaryRepository interface {
	Insert(noteID uint, content string) (uint, error)
	FindByNoteID(noteID uint) (*model.Summary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Insert(noteID uint, content string) (uint, error) {
	summary := model.Summary{NoteID: noteID, Content: content}
	if err := r.db.Create(&summary).Error; err != nil {
		return 0, err
	}
	return summary.ID, nil
}

func (r *summaryRepository) FindByNoteID(noteID uint) (*model.Summary, error) {
	var summary model.Summary
	if err := r.db.Where("note_id = ?", noteID).First(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}
