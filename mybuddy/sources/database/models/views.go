// mybuddy/sources/database/models/views.go
package models

import "time"

// ActionItemView is an action item joined with its note's title.
type ActionItemView struct {
	ID          uint   `json:"id"`
	NoteID      uint   `json:"note_id"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
	DueDate     string `json:"due_date"`
	NoteTitle   string `json:"note_title"`
}

// ReminderView is a reminder joined with its contact's name.
type ReminderView struct {
	ID           uint   `json:"id"`
	ContactID    uint   `json:"contact_id"`
	ReminderType string `json:"reminder_type"`
	Message      string `json:"message"`
	IsDismissed  bool   `json:"is_dismissed"`
	DueDate      string `json:"due_date"`
	ContactName  string `json:"contact_name"`
}

// NoteSummary is the slim row used by list pages.
type NoteSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
