// mybuddy/sources/database/dao/dao.note_contact.go
package dao

import (
	"context"

	"mybuddy/mybuddy/sources/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteContactDAO struct {
	DB *gorm.DB
}

func NewNoteContactDAO(db *gorm.DB) *NoteContactDAO {
	return &NoteContactDAO{DB: db}
}

// Link associates a note with a contact. Linking an existing pair is a no-op.
func (dao *NoteContactDAO) Link(ctx context.Context, noteID, contactID uint) error {
	return dao.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.NoteContact{NoteID: noteID, ContactID: contactID}).Error
}

func (dao *NoteContactDAO) ContactIDsForNote(ctx context.Context, noteID uint) ([]uint, error) {
	var ids []uint
	err := dao.DB.WithContext(ctx).
		Model(&models.NoteContact{}).
		Where("note_id = ?", noteID).
		Order("contact_id").
		Pluck("contact_id", &ids).Error
	return ids, err
}

// LinkedElsewhere reports whether any note other than noteID links to the contact.
func (dao *NoteContactDAO) LinkedElsewhere(ctx context.Context, contactID, noteID uint) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.NoteContact{}).
		Where("contact_id = ? AND note_id <> ?", contactID, noteID).
		Count(&count).Error
	return count > 0, err
}

// ExclusiveContactIDs lists contacts linked to noteID and to no other note.
func (dao *NoteContactDAO) ExclusiveContactIDs(ctx context.Context, noteID uint) ([]uint, error) {
	var ids []uint
	err := dao.DB.WithContext(ctx).Raw(
		`SELECT contact_id FROM note_contacts
		 WHERE note_id = ? AND contact_id NOT IN (
		     SELECT contact_id FROM note_contacts WHERE note_id <> ?
		 )
		 ORDER BY contact_id`,
		noteID, noteID,
	).Scan(&ids).Error
	return ids, err
}

func (dao *NoteContactDAO) UnlinkNote(ctx context.Context, noteID uint) error {
	return dao.DB.WithContext(ctx).Where("note_id = ?", noteID).Delete(&models.NoteContact{}).Error
}

func (dao *NoteContactDAO) ListContactsForNote(ctx context.Context, noteID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	err := dao.DB.WithContext(ctx).
		Joins("JOIN note_contacts nc ON contacts.id = nc.contact_id").
		Where("nc.note_id = ?", noteID).
		Order("contacts.name").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
