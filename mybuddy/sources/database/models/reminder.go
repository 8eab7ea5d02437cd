// mybuddy/sources/database/models/reminder.go
package models

const (
	ReminderCall     = "call"
	ReminderFollowUp = "follow_up"
)

type Reminder struct {
	ID           uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	ContactID    uint     `json:"contact_id" gorm:"not null;index"`
	Contact      *Contact `json:"-" gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:CASCADE"`
	ReminderType string   `json:"reminder_type" gorm:"type:varchar(16);not null;check:reminder_type IN ('call','follow_up')"`
	Message      string   `json:"message" gorm:"type:text;not null;default:''"`
	IsDismissed  bool     `json:"is_dismissed" gorm:"not null;default:false"`
	DueDate      string   `json:"due_date" gorm:"type:varchar(32);not null;default:''"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// ValidReminderType reports whether t is accepted by the reminders table.
func ValidReminderType(t string) bool {
	return t == ReminderCall || t == ReminderFollowUp
}
