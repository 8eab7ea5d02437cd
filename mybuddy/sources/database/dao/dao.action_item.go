// mybuddy/sources/database/dao/dao.action_item.go
package dao

import (
	"context"

	"mybuddy/mybuddy/sources/database/models"

	"gorm.io/gorm"
)

const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterCompleted = "completed"
)

type ActionItemDAO struct {
	DB *gorm.DB
}

func NewActionItemDAO(db *gorm.DB) *ActionItemDAO {
	return &ActionItemDAO{DB: db}
}

func (dao *ActionItemDAO) CreateActionItem(ctx context.Context, item *models.ActionItem) error {
	return dao.DB.WithContext(ctx).Create(item).Error
}

func (dao *ActionItemDAO) ListByNote(ctx context.Context, noteID uint) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := dao.DB.WithContext(ctx).Where("note_id = ?", noteID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (dao *ActionItemDAO) joined(ctx context.Context) *gorm.DB {
	return dao.DB.WithContext(ctx).
		Table("action_items AS a").
		Select("a.id, a.note_id, a.description, a.is_completed, a.due_date, n.title AS note_title").
		Joins("JOIN notes n ON a.note_id = n.id")
}

// ListActionItems returns items joined with their note title. Unknown
// filters behave like FilterAll.
func (dao *ActionItemDAO) ListActionItems(ctx context.Context, filter string) ([]models.ActionItemView, error) {
	q := dao.joined(ctx)
	switch filter {
	case FilterPending:
		q = q.Where("a.is_completed = ?", false).Order("a.due_date").Order("a.id")
	case FilterCompleted:
		q = q.Where("a.is_completed = ?", true).Order("a.id desc")
	default:
		q = q.Order("a.is_completed").Order("a.due_date").Order("a.id")
	}
	var items []models.ActionItemView
	if err := q.Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (dao *ActionItemDAO) GetActionItemView(ctx context.Context, id uint) (*models.ActionItemView, error) {
	var items []models.ActionItemView
	if err := dao.joined(ctx).Where("a.id = ?", id).Limit(1).Scan(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// ToggleActionItem flips the completion flag and returns the updated row,
// or nil when the item does not exist.
func (dao *ActionItemDAO) ToggleActionItem(ctx context.Context, id uint) (*models.ActionItemView, error) {
	err := dao.DB.WithContext(ctx).
		Model(&models.ActionItem{}).
		Where("id = ?", id).
		Update("is_completed", gorm.Expr("NOT is_completed")).Error
	if err != nil {
		return nil, err
	}
	return dao.GetActionItemView(ctx, id)
}

func (dao *ActionItemDAO) DeleteActionItem(ctx context.Context, id uint) (bool, error) {
	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ActionItem{})
	return res.RowsAffected > 0, res.Error
}

func (dao *ActionItemDAO) DeleteByNote(ctx context.Context, noteID uint) error {
	return dao.DB.WithContext(ctx).Where("note_id = ?", noteID).Delete(&models.ActionItem{}).Error
}

func (dao *ActionItemDAO) DeleteCompleted(ctx context.Context) (int64, error) {
	res := dao.DB.WithContext(ctx).Where("is_completed = ?", true).Delete(&models.ActionItem{})
	return res.RowsAffected, res.Error
}
