package extraction

import (
	"context"
	"strings"

	"mybuddy/mybuddy/sources/database/models"
)

// Result is the common shape produced by every extraction strategy and
// consumed by the writer.
type Result struct {
	ActionItems []ActionItem `json:"action_items"`
	Contacts    []Contact    `json:"contacts"`
	Reminders   []Reminder   `json:"reminders"`
}

type ActionItem struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Reminder struct {
	ContactName string `json:"contact_name"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	DueDate     string `json:"due_date"`
}

// Strategy turns a note into a Result. The application picks one at startup.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, title, content string) (*Result, error)
}

// normalize trims model output into something the writer can store as-is.
func (r *Result) normalize() {
	items := r.ActionItems[:0]
	for _, a := range r.ActionItems {
		a.Description = strings.TrimSpace(a.Description)
		if a.Description == "" {
			continue
		}
		items = append(items, a)
	}
	r.ActionItems = items

	contacts := r.Contacts[:0]
	for _, c := range r.Contacts {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			continue
		}
		c.Phone = strings.TrimSpace(c.Phone)
		c.Email = strings.TrimSpace(c.Email)
		contacts = append(contacts, c)
	}
	r.Contacts = contacts

	reminders := r.Reminders[:0]
	for _, rem := range r.Reminders {
		rem.ContactName = strings.TrimSpace(rem.ContactName)
		if rem.ContactName == "" {
			continue
		}
		if !models.ValidReminderType(rem.Type) {
			rem.Type = models.ReminderFollowUp
		}
		reminders = append(reminders, rem)
	}
	r.Reminders = reminders
}
