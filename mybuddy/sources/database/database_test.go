package database_test

import (
	"context"
	"errors"
	"testing"

	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/databasetest"
	"mybuddy/mybuddy/sources/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSchemaCreation(t *testing.T) {
	db := databasetest.New(t)
	for _, table := range []string{"notes", "contacts", "action_items", "note_contacts", "reminders"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}
	require.NoError(t, db.Ping(context.Background()))
}

func TestNoteDeleteCascadesToActionItemsAndLinks(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	note := &models.Note{Title: "N", Content: "C"}
	require.NoError(t, dao.NewNoteDAO(db.DB).CreateNote(ctx, note))
	contact := &models.Contact{Name: "Alice"}
	require.NoError(t, dao.NewContactDAO(db.DB).CreateContact(ctx, contact))
	require.NoError(t, dao.NewActionItemDAO(db.DB).CreateActionItem(ctx, &models.ActionItem{NoteID: note.ID, Description: "Do it"}))
	require.NoError(t, dao.NewNoteContactDAO(db.DB).Link(ctx, note.ID, contact.ID))

	deleted, err := dao.NewNoteDAO(db.DB).DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var items, links int64
	require.NoError(t, db.DB.Model(&models.ActionItem{}).Count(&items).Error)
	require.NoError(t, db.DB.Model(&models.NoteContact{}).Count(&links).Error)
	assert.Zero(t, items)
	assert.Zero(t, links)

	// The contact itself survives a note cascade.
	got, err := dao.NewContactDAO(db.DB).GetContactByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestContactDeleteCascadesToReminders(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	contact := &models.Contact{Name: "Bob"}
	require.NoError(t, dao.NewContactDAO(db.DB).CreateContact(ctx, contact))
	require.NoError(t, dao.NewReminderDAO(db.DB).CreateReminder(ctx, &models.Reminder{
		ContactID: contact.ID, ReminderType: models.ReminderCall, Message: "Call Bob",
	}))

	_, err := dao.NewContactDAO(db.DB).DeleteContact(ctx, contact.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.DB.Model(&models.Reminder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContactNameUnique(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	contacts := dao.NewContactDAO(db.DB)

	require.NoError(t, contacts.CreateContact(ctx, &models.Contact{Name: "Sarah"}))
	assert.Error(t, contacts.CreateContact(ctx, &models.Contact{Name: "Sarah"}))
	// Matching is case-sensitive: a differently cased name is a new contact.
	assert.NoError(t, contacts.CreateContact(ctx, &models.Contact{Name: "sarah"}))
}

func TestReminderTypeConstraint(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	contact := &models.Contact{Name: "Carol"}
	require.NoError(t, dao.NewContactDAO(db.DB).CreateContact(ctx, contact))
	err := dao.NewReminderDAO(db.DB).CreateReminder(ctx, &models.Reminder{ContactID: contact.ID, ReminderType: "email"})
	assert.Error(t, err)
}

func TestLinkIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	note := &models.Note{Title: "N"}
	require.NoError(t, dao.NewNoteDAO(db.DB).CreateNote(ctx, note))
	contact := &models.Contact{Name: "Dan"}
	require.NoError(t, dao.NewContactDAO(db.DB).CreateContact(ctx, contact))

	links := dao.NewNoteContactDAO(db.DB)
	require.NoError(t, links.Link(ctx, note.ID, contact.ID))
	require.NoError(t, links.Link(ctx, note.ID, contact.ID))

	ids, err := links.ContactIDsForNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{contact.ID}, ids)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	err := db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := dao.NewNoteDAO(tx).CreateNote(ctx, &models.Note{Title: "lost"}); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	notes, err := dao.NewNoteDAO(db.DB).ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
