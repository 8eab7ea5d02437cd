// mybuddy/sources/database/models/note_contact.go
package models

type NoteContact struct {
	NoteID    uint     `json:"note_id" gorm:"primaryKey;autoIncrement:false"`
	ContactID uint     `json:"contact_id" gorm:"primaryKey;autoIncrement:false;index"`
	Note      *Note    `json:"-" gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
	Contact   *Contact `json:"-" gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:CASCADE"`
}

func (NoteContact) TableName() string {
	return "note_contacts"
}
