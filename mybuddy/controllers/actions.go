package controllers

import (
	"context"

	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/database/models"
)

type ActionsController struct {
	dao *dao.ActionItemDAO
}

func NewActionsController(dao *dao.ActionItemDAO) *ActionsController {
	return &ActionsController{dao: dao}
}

// NormalizeFilter maps anything unrecognised to dao.FilterAll.
func NormalizeFilter(filter string) string {
	switch filter {
	case dao.FilterPending, dao.FilterCompleted:
		return filter
	default:
		return dao.FilterAll
	}
}

func (c *ActionsController) ListActions(ctx context.Context, filter string) ([]models.ActionItemView, error) {
	return c.dao.ListActionItems(ctx, NormalizeFilter(filter))
}

// ListPending is what the remind command prints.
func (c *ActionsController) ListPending(ctx context.Context) ([]models.ActionItemView, error) {
	return c.dao.ListActionItems(ctx, dao.FilterPending)
}

func (c *ActionsController) ToggleAction(ctx context.Context, id uint) (*models.ActionItemView, error) {
	item, err := c.dao.ToggleActionItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (c *ActionsController) DeleteAction(ctx context.Context, id uint) error {
	found, err := c.dao.DeleteActionItem(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (c *ActionsController) ClearCompleted(ctx context.Context) (int64, error) {
	return c.dao.DeleteCompleted(ctx)
}
