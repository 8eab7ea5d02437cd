// mybuddy/sources/database/dao/dao.reminder.go
package dao

import (
	"context"

	"mybuddy/mybuddy/sources/database/models"

	"gorm.io/gorm"
)

type ReminderDAO struct {
	DB *gorm.DB
}

func NewReminderDAO(db *gorm.DB) *ReminderDAO {
	return &ReminderDAO{DB: db}
}

func (dao *ReminderDAO) CreateReminder(ctx context.Context, r *models.Reminder) error {
	return dao.DB.WithContext(ctx).Create(r).Error
}

func (dao *ReminderDAO) DeleteByContact(ctx context.Context, contactID uint) error {
	return dao.DB.WithContext(ctx).Where("contact_id = ?", contactID).Delete(&models.Reminder{}).Error
}

func (dao *ReminderDAO) ListByContact(ctx context.Context, contactID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := dao.DB.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("due_date").
		Order("id").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (dao *ReminderDAO) joined(ctx context.Context) *gorm.DB {
	return dao.DB.WithContext(ctx).
		Table("reminders AS r").
		Select("r.id, r.contact_id, r.reminder_type, r.message, r.is_dismissed, r.due_date, c.name AS contact_name").
		Joins("JOIN contacts c ON r.contact_id = c.id")
}

// ListByNote returns reminders of every contact linked to the note.
func (dao *ReminderDAO) ListByNote(ctx context.Context, noteID uint) ([]models.ReminderView, error) {
	var reminders []models.ReminderView
	err := dao.joined(ctx).
		Joins("JOIN note_contacts nc ON nc.contact_id = c.id AND nc.note_id = ?", noteID).
		Order("r.id").
		Scan(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListPending returns undismissed reminders ordered by due date, then id.
func (dao *ReminderDAO) ListPending(ctx context.Context) ([]models.ReminderView, error) {
	var reminders []models.ReminderView
	err := dao.joined(ctx).
		Where("r.is_dismissed = ?", false).
		Order("r.due_date").
		Order("r.id").
		Scan(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// ToggleDismissed flips the dismissed flag. Returns false when the reminder
// does not exist.
func (dao *ReminderDAO) ToggleDismissed(ctx context.Context, id uint) (bool, error) {
	res := dao.DB.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ?", id).
		Update("is_dismissed", gorm.Expr("NOT is_dismissed"))
	return res.RowsAffected > 0, res.Error
}
