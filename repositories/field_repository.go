package repositories

import (
	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/models"
)

type FieldRepo interface {
	Create(field *models.Field) error
	FindByID(id uint) (*models.Field, error)
	FindByTemplateID(templateID uint) ([]models.Field, error)
	FindByTemplateAndFieldID(templateID uint, fieldID string) (*models.Field, error)
	CountByTemplateID(templateID uint) (int64, error)
	Delete(id uint) error
}

type DBFieldRepo struct{}

func (r *DBFieldRepo) Create(field *models.Field) error {
	return db.DB.Create(field).Error
}

func (r *DBFieldRepo) FindByID(id uint) (*models.Field, error) {
	var field models.Field
	err := db.DB.First(&field, id).Error
	return &field, err
}

func (r *DBFieldRepo) FindByTemplateID(templateID uint) ([]models.Field, error) {
	var fields []models.Field
	err := db.DB.Where("template_id = ?", templateID).Order("id").Find(&fields).Error
	return fields, err
}

func (r *DBFieldRepo) FindByTemplateAndFieldID(templateID uint, fieldID string) (*models.Field, error) {
	var field models.Field
	err := db.DB.Where("template_id = ? AND field_id = ?", templateID, fieldID).First(&field).Error
	return &field, err
}

func (r *DBFieldRepo) CountByTemplateID(templateID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Field{}).Where("template_id = ?", templateID).Count(&count).Error
	return count, err
}

func (r *DBFieldRepo) Delete(id uint) error {
	return db.DB.Unscoped().Delete(&models.Field{}, id).Error
}
