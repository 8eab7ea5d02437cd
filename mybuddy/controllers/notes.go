// mybuddy/controllers/notes.go
package controllers

import (
	"context"
	"fmt"

	"mybuddy/mybuddy/services/extraction"
	"mybuddy/mybuddy/sources/database"
	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/models"
	"mybuddy/mybuddy/utils/logging"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteExtractor derives action items, contacts and reminders from a note.
type NoteExtractor interface {
	ExtractFromNote(ctx context.Context, noteID uint, title, content string) error
}

// NotesController keeps derived data in step with note edits.
type NotesController struct {
	db        *database.Database
	extractor NoteExtractor
}

func NewNotesController(db *database.Database, extractor NoteExtractor) *NotesController {
	return &NotesController{db: db, extractor: extractor}
}

var _ NoteExtractor = (*extraction.Extractor)(nil)

// NoteDetail is everything shown on a note's page.
type NoteDetail struct {
	Note        models.Note
	ActionItems []models.ActionItem
	Contacts    []models.Contact
	Reminders   []models.ReminderView
}

func (c *NotesController) ListNotes(ctx context.Context) ([]models.NoteSummary, error) {
	return dao.NewNoteDAO(c.db.DB).ListNotes(ctx)
}

func (c *NotesController) GetNote(ctx context.Context, id uint) (*models.Note, error) {
	note, err := dao.NewNoteDAO(c.db.DB).GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

func (c *NotesController) GetNoteDetail(ctx context.Context, id uint) (*NoteDetail, error) {
	note, err := c.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &NoteDetail{Note: *note}
	if detail.ActionItems, err = dao.NewActionItemDAO(c.db.DB).ListByNote(ctx, id); err != nil {
		return nil, err
	}
	if detail.Contacts, err = dao.NewNoteContactDAO(c.db.DB).ListContactsForNote(ctx, id); err != nil {
		return nil, err
	}
	if detail.Reminders, err = dao.NewReminderDAO(c.db.DB).ListByNote(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}

// CreateNote stores the note and runs extraction on it. The note is kept even
// if its extractions cannot be saved.
func (c *NotesController) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	note := &models.Note{Title: title, Content: content}
	if err := dao.NewNoteDAO(c.db.DB).CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	logging.AppLogger.Info("note created", zap.Uint("note_id", note.ID))

	if err := c.extractor.ExtractFromNote(ctx, note.ID, title, content); err != nil {
		return note, fmt.Errorf("failed to save extractions: %w", err)
	}
	return note, nil
}

// UpdateNote rewrites the note, clears everything derived from its previous
// content and extracts again from scratch.
func (c *NotesController) UpdateNote(ctx context.Context, id uint, title, content string) error {
	err := c.db.Transaction(ctx, func(tx *gorm.DB) error {
		updated, err := dao.NewNoteDAO(tx).UpdateNote(ctx, id, title, content)
		if err != nil {
			return err
		}
		if !updated {
			return ErrNotFound
		}
		if err := dao.NewActionItemDAO(tx).DeleteByNote(ctx, id); err != nil {
			return err
		}

		links := dao.NewNoteContactDAO(tx)
		reminders := dao.NewReminderDAO(tx)
		contactIDs, err := links.ContactIDsForNote(ctx, id)
		if err != nil {
			return err
		}
		for _, contactID := range contactIDs {
			shared, err := links.LinkedElsewhere(ctx, contactID, id)
			if err != nil {
				return err
			}
			if shared {
				continue
			}
			if err := reminders.DeleteByContact(ctx, contactID); err != nil {
				return err
			}
		}
		return links.UnlinkNote(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := c.extractor.ExtractFromNote(ctx, id, title, content); err != nil {
		return fmt.Errorf("failed to save extractions: %w", err)
	}
	return nil
}

// DeleteNote removes the note and any contact no other note refers to.
func (c *NotesController) DeleteNote(ctx context.Context, id uint) error {
	return c.db.Transaction(ctx, func(tx *gorm.DB) error {
		orphans, err := dao.NewNoteContactDAO(tx).ExclusiveContactIDs(ctx, id)
		if err != nil {
			return err
		}
		deleted, err := dao.NewNoteDAO(tx).DeleteNote(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		contacts := dao.NewContactDAO(tx)
		for _, contactID := range orphans {
			if _, err := contacts.DeleteContact(ctx, contactID); err != nil {
				return err
			}
		}
		logging.AppLogger.Info("note deleted",
			zap.Uint("note_id", id),
			zap.Int("orphan_contacts", len(orphans)),
		)
		return nil
	})
}
