// mybuddy/sources/database/dao/dao.contact.go
package dao

import (
	"context"
	"errors"

	"mybuddy/mybuddy/sources/database/models"

	"gorm.io/gorm"
)

type ContactDAO struct {
	DB *gorm.DB
}

func NewContactDAO(db *gorm.DB) *ContactDAO {
	return &ContactDAO{DB: db}
}

func (dao *ContactDAO) CreateContact(ctx context.Context, contact *models.Contact) error {
	return dao.DB.WithContext(ctx).Create(contact).Error
}

func (dao *ContactDAO) GetContactByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	err := dao.DB.WithContext(ctx).First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetContactByName matches the name exactly, case included.
func (dao *ContactDAO) GetContactByName(ctx context.Context, name string) (*models.Contact, error) {
	var contact models.Contact
	err := dao.DB.WithContext(ctx).Where("name = ?", name).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (dao *ContactDAO) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := dao.DB.WithContext(ctx).Order("name").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// FillEmptyFields sets phone and email only where the stored value is empty.
// A populated field is never overwritten.
func (dao *ContactDAO) FillEmptyFields(ctx context.Context, id uint, phone, email string) error {
	db := dao.DB.WithContext(ctx)
	if phone != "" {
		err := db.Model(&models.Contact{}).
			Where("id = ? AND phone = ''", id).
			Update("phone", phone).Error
		if err != nil {
			return err
		}
	}
	if email != "" {
		err := db.Model(&models.Contact{}).
			Where("id = ? AND email = ''", id).
			Update("email", email).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteContact removes the contact; its reminders and note links go with it
// through ON DELETE CASCADE.
func (dao *ContactDAO) DeleteContact(ctx context.Context, id uint) (bool, error) {
	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Contact{})
	return res.RowsAffected > 0, res.Error
}
