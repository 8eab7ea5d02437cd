package controllers

import (
	"context"
	"testing"

	"mybuddy/mybuddy/sources/database"
	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/databasetest"
	"mybuddy/mybuddy/sources/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedActions(t *testing.T, db *database.Database, items ...models.ActionItem) uint {
	t.Helper()
	ctx := context.Background()
	note := &models.Note{Title: "N", Content: "C"}
	require.NoError(t, dao.NewNoteDAO(db.DB).CreateNote(ctx, note))
	for i := range items {
		items[i].NoteID = note.ID
		require.NoError(t, dao.NewActionItemDAO(db.DB).CreateActionItem(ctx, &items[i]))
	}
	return note.ID
}

func viewDescriptions(items []models.ActionItemView) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, item.Description)
	}
	return out
}

func TestListActionsFilters(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	seedActions(t, db,
		models.ActionItem{Description: "later", DueDate: "2026-12-01"},
		models.ActionItem{Description: "done one", IsCompleted: true},
		models.ActionItem{Description: "sooner", DueDate: "2026-11-01"},
		models.ActionItem{Description: "done two", IsCompleted: true},
	)
	ctrl := NewActionsController(dao.NewActionItemDAO(db.DB))

	pending, err := ctrl.ListActions(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, []string{"sooner", "later"}, viewDescriptions(pending))
	assert.Equal(t, "N", pending[0].NoteTitle)

	completed, err := ctrl.ListActions(ctx, "completed")
	require.NoError(t, err)
	assert.Equal(t, []string{"done two", "done one"}, viewDescriptions(completed))

	all, err := ctrl.ListActions(ctx, "bogus")
	require.NoError(t, err)
	assert.Equal(t, []string{"sooner", "later", "done one", "done two"}, viewDescriptions(all))
}

func TestToggleAndClearActions(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	seedActions(t, db, models.ActionItem{Description: "Task 1"}, models.ActionItem{Description: "Task 2"})
	ctrl := NewActionsController(dao.NewActionItemDAO(db.DB))

	item, err := ctrl.ToggleAction(ctx, 1)
	require.NoError(t, err)
	assert.True(t, item.IsCompleted)

	item, err = ctrl.ToggleAction(ctx, 1)
	require.NoError(t, err)
	assert.False(t, item.IsCompleted)

	_, err = ctrl.ToggleAction(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ctrl.ToggleAction(ctx, 2)
	require.NoError(t, err)
	cleared, err := ctrl.ClearCompleted(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cleared)

	require.NoError(t, ctrl.DeleteAction(ctx, 1))
	assert.ErrorIs(t, ctrl.DeleteAction(ctx, 1), ErrNotFound)
	all, err := ctrl.ListActions(ctx, "all")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestContactsAndReminders(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	noteID := seedActions(t, db)

	contact := &models.Contact{Name: "Sarah", Phone: "555-1234"}
	require.NoError(t, dao.NewContactDAO(db.DB).CreateContact(ctx, contact))
	require.NoError(t, dao.NewNoteContactDAO(db.DB).Link(ctx, noteID, contact.ID))
	reminder := &models.Reminder{ContactID: contact.ID, ReminderType: models.ReminderCall, Message: "Call Sarah"}
	require.NoError(t, dao.NewReminderDAO(db.DB).CreateReminder(ctx, reminder))

	contacts := NewContactsController(db)
	detail, err := contacts.GetContactDetail(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-1234", detail.Contact.Phone)
	require.Len(t, detail.Notes, 1)
	assert.Equal(t, noteID, detail.Notes[0].ID)
	require.Len(t, detail.Reminders, 1)

	reminders := NewRemindersController(dao.NewReminderDAO(db.DB))
	pending, err := reminders.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Sarah", pending[0].ContactName)

	require.NoError(t, reminders.ToggleDismissed(ctx, reminder.ID))
	pending, err = reminders.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.ErrorIs(t, reminders.ToggleDismissed(ctx, 99), ErrNotFound)

	require.NoError(t, contacts.DeleteContact(ctx, contact.ID))
	_, err = contacts.GetContactDetail(ctx, contact.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, contacts.DeleteContact(ctx, contact.ID), ErrNotFound)
	all, err := contacts.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
