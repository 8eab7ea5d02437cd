package controllers

import (
	"context"

	"mybuddy/mybuddy/sources/database"
	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/models"
)

type ContactsController struct {
	db *database.Database
}

func NewContactsController(db *database.Database) *ContactsController {
	return &ContactsController{db: db}
}

type ContactDetail struct {
	Contact   models.Contact
	Notes     []models.NoteSummary
	Reminders []models.Reminder
}

func (c *ContactsController) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return dao.NewContactDAO(c.db.DB).ListContacts(ctx)
}

func (c *ContactsController) GetContactDetail(ctx context.Context, id uint) (*ContactDetail, error) {
	contact, err := dao.NewContactDAO(c.db.DB).GetContactByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	detail := &ContactDetail{Contact: *contact}
	if detail.Notes, err = dao.NewNoteDAO(c.db.DB).ListNotesForContact(ctx, id); err != nil {
		return nil, err
	}
	if detail.Reminders, err = dao.NewReminderDAO(c.db.DB).ListByContact(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}

// DeleteContact removes the contact with its reminders and note links.
func (c *ContactsController) DeleteContact(ctx context.Context, id uint) error {
	found, err := dao.NewContactDAO(c.db.DB).DeleteContact(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
