package extraction

import (
	"context"
	"fmt"

	"mybuddy/mybuddy/sources/database"
	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/models"

	"gorm.io/gorm"
)

// Writer persists a Result for one note.
type Writer struct {
	db *database.Database
}

func NewWriter(db *database.Database) *Writer {
	return &Writer{db: db}
}

// SaveExtractions stores res against noteID in one transaction. Contacts are
// upserted by exact name and never lose a populated phone or email; reminders
// whose contact cannot be resolved are dropped.
func (w *Writer) SaveExtractions(ctx context.Context, noteID uint, res *Result) error {
	if res == nil {
		return nil
	}
	return w.db.Transaction(ctx, func(tx *gorm.DB) error {
		actions := dao.NewActionItemDAO(tx)
		contacts := dao.NewContactDAO(tx)
		links := dao.NewNoteContactDAO(tx)
		reminders := dao.NewReminderDAO(tx)

		for _, a := range res.ActionItems {
			item := &models.ActionItem{NoteID: noteID, Description: a.Description, DueDate: a.DueDate}
			if err := actions.CreateActionItem(ctx, item); err != nil {
				return fmt.Errorf("failed to save action item: %w", err)
			}
		}

		contactIDs := make(map[string]uint, len(res.Contacts))
		for _, c := range res.Contacts {
			id, err := upsertContact(ctx, contacts, c)
			if err != nil {
				return err
			}
			contactIDs[c.Name] = id
			if err := links.Link(ctx, noteID, id); err != nil {
				return fmt.Errorf("failed to link contact %q: %w", c.Name, err)
			}
		}

		for _, r := range res.Reminders {
			id, ok := contactIDs[r.ContactName]
			if !ok {
				existing, err := contacts.GetContactByName(ctx, r.ContactName)
				if err != nil {
					return fmt.Errorf("failed to resolve reminder contact: %w", err)
				}
				if existing == nil {
					continue
				}
				id = existing.ID
			}
			typ := r.Type
			if typ == "" {
				typ = models.ReminderFollowUp
			}
			reminder := &models.Reminder{
				ContactID:    id,
				ReminderType: typ,
				Message:      r.Message,
				DueDate:      r.DueDate,
			}
			if err := reminders.CreateReminder(ctx, reminder); err != nil {
				return fmt.Errorf("failed to save reminder: %w", err)
			}
		}
		return nil
	})
}

func upsertContact(ctx context.Context, contacts *dao.ContactDAO, c Contact) (uint, error) {
	existing, err := contacts.GetContactByName(ctx, c.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to look up contact %q: %w", c.Name, err)
	}
	if existing != nil {
		if err := contacts.FillEmptyFields(ctx, existing.ID, c.Phone, c.Email); err != nil {
			return 0, fmt.Errorf("failed to update contact %q: %w", c.Name, err)
		}
		return existing.ID, nil
	}
	contact := &models.Contact{Name: c.Name, Phone: c.Phone, Email: c.Email}
	if err := contacts.CreateContact(ctx, contact); err != nil {
		return 0, fmt.Errorf("failed to create contact %q: %w", c.Name, err)
	}
	return contact.ID, nil
}
