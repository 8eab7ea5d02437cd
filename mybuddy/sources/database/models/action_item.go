// mybuddy/sources/database/models/action_item.go
package models

type ActionItem struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	NoteID      uint   `json:"note_id" gorm:"not null;index"`
	Note        *Note  `json:"-" gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
	Description string `json:"description" gorm:"type:text;not null"`
	IsCompleted bool   `json:"is_completed" gorm:"not null;default:false"`
	DueDate     string `json:"due_date" gorm:"type:varchar(32);not null;default:''"`
}

func (ActionItem) TableName() string {
	return "action_items"
}
