// mybuddy/sources/database/models/contact.go
package models

// Contact is shared by every note that mentions it. Name is the natural key
// used by extraction upserts and is matched exactly (case-sensitive).
type Contact struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone string `json:"phone" gorm:"type:varchar(64);not null;default:''"`
	Email string `json:"email" gorm:"type:varchar(255);not null;default:''"`
}

func (Contact) TableName() string {
	return "contacts"
}
