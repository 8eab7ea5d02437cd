package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/databasetest"
	"mybuddy/mybuddy/sources/database/models"
	"mybuddy/mybuddy/utils/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.Disable()
}

func sampleReport() remindReport {
	return remindReport{
		Actions:   []actionRow{{Description: "Send the report", NoteTitle: "Meeting with John"}},
		Reminders: []reminderRow{{Type: "call", ContactName: "John", Message: "call John", DueDate: "2026-10-20"}},
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, "table", sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "Pending Action Items")
	assert.Contains(t, out, "Send the report")
	assert.Contains(t, out, "Call / Follow-up Reminders")
	assert.Contains(t, out, "2026-10-20")
	assert.Contains(t, out, "—")
}

func TestRenderTableAlignedWithColour(t *testing.T) {
	color.Enable()
	t.Cleanup(color.Disable)

	report := remindReport{Reminders: []reminderRow{
		{Type: "call", ContactName: "John", Message: "call John", DueDate: "2026-10-20"},
		{Type: "follow_up", ContactName: "Maximilian", Message: "send notes", DueDate: "2026-11-02"},
	}}
	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, "table", report))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	header, first, second := lines[1], lines[2], lines[3]
	for _, col := range []struct{ name, a, b string }{
		{"MESSAGE", "call John", "send notes"},
		{"DUE DATE", "2026-10-20", "2026-11-02"},
		{"TYPE", "\x1b[", "\x1b["},
	} {
		want := strings.Index(header, col.name)
		assert.Equal(t, want, strings.Index(first, col.a), col.name)
		assert.Equal(t, want, strings.Index(second, col.b), col.name)
	}
}

func TestRenderAllClear(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, "", remindReport{}))
	assert.Equal(t, "All clear! No pending items.\n", buf.String())
}

func TestRenderJSONAndYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, "json", sampleReport()))
	var fromJSON remindReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, sampleReport(), fromJSON)

	buf.Reset()
	require.NoError(t, renderReport(&buf, "yaml", sampleReport()))
	assert.Contains(t, buf.String(), "contact_name: John")
	var fromYAML remindReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, sampleReport(), fromYAML)

	assert.Error(t, renderReport(&buf, "xml", sampleReport()))
}

func TestLoadReportSkipsDoneItems(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	note := &models.Note{Title: "N"}
	require.NoError(t, dao.NewNoteDAO(db.DB).CreateNote(ctx, note))
	actions := dao.NewActionItemDAO(db.DB)
	require.NoError(t, actions.CreateActionItem(ctx, &models.ActionItem{NoteID: note.ID, Description: "open"}))
	require.NoError(t, actions.CreateActionItem(ctx, &models.ActionItem{NoteID: note.ID, Description: "done", IsCompleted: true}))

	contact := &models.Contact{Name: "Ann"}
	require.NoError(t, dao.NewContactDAO(db.DB).CreateContact(ctx, contact))
	reminders := dao.NewReminderDAO(db.DB)
	require.NoError(t, reminders.CreateReminder(ctx, &models.Reminder{ContactID: contact.ID, ReminderType: "call", Message: "later", DueDate: "2026-12-01"}))
	require.NoError(t, reminders.CreateReminder(ctx, &models.Reminder{ContactID: contact.ID, ReminderType: "follow_up", Message: "sooner", DueDate: "2026-11-01"}))
	require.NoError(t, reminders.CreateReminder(ctx, &models.Reminder{ContactID: contact.ID, ReminderType: "call", Message: "dismissed", IsDismissed: true}))

	report, err := loadReport(ctx, db)
	require.NoError(t, err)
	require.Len(t, report.Actions, 1)
	assert.Equal(t, actionRow{Description: "open", NoteTitle: "N"}, report.Actions[0])
	require.Len(t, report.Reminders, 2)
	assert.Equal(t, "sooner", report.Reminders[0].Message)
	assert.Equal(t, "Ann", report.Reminders[0].ContactName)
}

func TestInitDBCommand(t *testing.T) {
	t.Setenv("LOG_DIR", t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "nested", "cli.db")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--db", dbPath, "init-db"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Database ready: "+dbPath)

	out.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--db", dbPath, "remind", "--format", "json"})
	require.NoError(t, root.Execute())
	assert.JSONEq(t, `{"actions":[],"reminders":[]}`, out.String())
}
