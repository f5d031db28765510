package repository

import (
	"errors"
	"strings"

	"github.com/jihokoo/notequiz/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type NoteHashtagRepository interface {
	InsertNoteHashtags(noteID uint, tags []string) error
	FindTagsByNoteID(noteID uint) ([]string, error)
}

type noteHashtagRepository struct {
	db *gorm.DB
}

func NewNoteHashtagRepository(db *gorm.DB) NoteHashtagRepository {
	return &noteHashtagRepository{db: db}
}

// InsertNoteHashtags links the given tags to a note, creating hashtag rows
// as needed. Blank tags are skipped with a warning rather than failing the
// whole batch.
func (r *noteHashtagRepository) InsertNoteHashtags(noteID uint, tags []string) error {
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			log.Warn().Uint("noteID", noteID).Msg("Skipping blank hashtag")
			continue
		}

		var hashtag model.Hashtag
		err := r.db.Where("tag = ?", tag).First(&hashtag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hashtag = model.Hashtag{Tag: tag}
			err = r.db.Create(&hashtag).Error
		}
		if err != nil {
			return err
		}

		link := model.NoteHashtag{NoteID: noteID, HashtagID: hashtag.ID}
		if err := r.db.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindTagsByNoteID returns the tags currently linked to a note. Soft-deleted
// links are excluded by gorm's DeletedAt handling on note_hashtags.
func (r *noteHashtagRepository) FindTagsByNoteID(noteID uint) ([]string, error) {
	var tags []string
	err := r.db.Model(&model.NoteHashtag{}).
		Joins("JOIN hashtags ON hashtags.id = note_hashtags.hashtag_id").
		Where("note_hashtags.note_id = ?", noteID).
		Pluck("hashtags.tag", &tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
