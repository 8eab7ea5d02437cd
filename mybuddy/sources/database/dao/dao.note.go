// mybuddy/sources/database/dao/dao.note.go
package dao

import (
	"context"
	"errors"
	"time"

	"mybuddy/mybuddy/sources/database/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

func (dao *NoteDAO) CreateNote(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Create(note).Error
}

func (dao *NoteDAO) GetNoteByID(ctx context.Context, id uint) (*models.Note, error) {
	var note models.Note
	err := dao.DB.WithContext(ctx).First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes returns every note, most recently updated first.
func (dao *NoteDAO) ListNotes(ctx context.Context) ([]models.NoteSummary, error) {
	var notes []models.NoteSummary
	err := dao.DB.WithContext(ctx).
		Model(&models.Note{}).
		Select("id, title, created_at").
		Order("updated_at desc").
		Order("id desc").
		Scan(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// ListNotesForContact returns the notes linked to a contact, newest first.
func (dao *NoteDAO) ListNotesForContact(ctx context.Context, contactID uint) ([]models.NoteSummary, error) {
	var notes []models.NoteSummary
	err := dao.DB.WithContext(ctx).
		Table("notes AS n").
		Select("n.id, n.title, n.created_at").
		Joins("JOIN note_contacts nc ON n.id = nc.note_id").
		Where("nc.contact_id = ?", contactID).
		Order("n.created_at desc").
		Order("n.id desc").
		Scan(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote rewrites title and content and bumps updated_at. Returns false
// when no note has that id.
func (dao *NoteDAO) UpdateNote(ctx context.Context, id uint, title, content string) (bool, error) {
	res := dao.DB.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		})
	return res.RowsAffected > 0, res.Error
}

func (dao *NoteDAO) DeleteNote(ctx context.Context, id uint) (bool, error) {
	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	return res.RowsAffected > 0, res.Error
}
