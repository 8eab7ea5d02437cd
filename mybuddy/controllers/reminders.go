package controllers

import (
	"context"

	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/models"
)

type RemindersController struct {
	dao *dao.ReminderDAO
}

func NewRemindersController(dao *dao.ReminderDAO) *RemindersController {
	return &RemindersController{dao: dao}
}

// ListPending returns undismissed reminders, soonest first.
func (c *RemindersController) ListPending(ctx context.Context) ([]models.ReminderView, error) {
	return c.dao.ListPending(ctx)
}

func (c *RemindersController) ToggleDismissed(ctx context.Context, id uint) error {
	found, err := c.dao.ToggleDismissed(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
