package repository

import (
	"github.com/jihokoo/notequiz/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	InsertAll(questionID uint, options []string) error
	FindByQuestionID(questionID uint) ([]model.Option, error)
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) InsertAll(questionID uint, options []string) error {
	if len(options) == 0 {
		return nil
	}
	rows := make([]model.Option, 0, len(options))
	for _, content := range options {
		rows = append(rows, model.Option{QuestionID: questionID, Content: content})
	}
	return r.db.Create(&rows).Error
}

func (r *optionRepository) FindByQuestionID(questionID uint) ([]model.Option, error) {
	var options []model.Option
	if err := r.db.Where("question_id = ?", questionID).Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}
