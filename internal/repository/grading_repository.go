package repository

import (
	"errors"

	"github.com/jihokoo/notequiz/internal/model"
	"gorm.io/gorm"
)

type GradingRepository interface {
	Insert(grading *model.Grading) error
	Update(grading *model.Grading) error
	// FindByQuestionID returns (nil, nil) when the question has not been
	// graded yet, so callers can branch between insert and update.
	FindByQuestionID(questionID uint) (*model.Grading, error)
}

type gradingRepository struct {
	db *gorm.DB
}

func NewGradingRepository(db *gorm.DB) GradingRepository {
	return &gradingRepository{db: db}
}

func (r *gradingRepository) Insert(grading *model.Grading) error {
	return r.db.Create(grading).Error
}

func (r *gradingRepository) Update(grading *model.Grading) error {
	return r.db.Save(grading).Error
}

func (r *gradingRepository) FindByQuestionID(questionID uint) (*model.Grading, error) {
	var grading model.Grading
	err := r.db.Where("question_id = ?", questionID).First(&grading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &grading, nil
}
