package repository

import (
	"time"

	"github.com/jihokoo/notequiz/internal/model"
	"gorm.io/gorm"
)

type ApiKeyRepository interface {
	FindAll() ([]model.ApiKey, error)
	Insert(key string) (uint, error)
	TouchLastUsed(id uint) error
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository(db *gorm.DB) ApiKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) FindAll() ([]model.ApiKey, error) {
	var keys []model.ApiKey
	if err := r.db.Order("last_used_at desc").Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *apiKeyRepository) Insert(key string) (uint, error) {
	record := model.ApiKey{Key: key, LastUsedAt: time.Now()}
	if err := r.db.Create(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (r *apiKeyRepository) TouchLastUsed(id uint) error {
	return r.db.Model(&model.ApiKey{}).Where("id = ?", id).
		Update("last_used_at", time.Now()).Error
}
