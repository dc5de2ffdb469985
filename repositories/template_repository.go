package repositories

import (
	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/models"
)

type TemplateRepo interface {
	Create(template *models.Template) error
	FindByID(id uint) (*models.Template, error)
	FindByOwner(ownerID uint) ([]models.Template, error)
	Update(template *models.Template) error
	Delete(id uint) error
}

type DBTemplateRepo struct{}

func (r *DBTemplateRepo) Create(template *models.Template) error {
	return db.DB.Create(template).Error
}

func (r *DBTemplateRepo) FindByID(id uint) (*models.Template, error) {
	var template models.Template
	err := db.DB.Preload("Fields").First(&template, id).Error
	return &template, err
}

func (r *DBTemplateRepo) FindByOwner(ownerID uint) ([]models.Template, error) {
	var templates []models.Template
	err := db.DB.Where("created_by = ?", ownerID).Preload("Fields").Order("created_at desc").Find(&templates).Error
	return templates, err
}

func (r *DBTemplateRepo) Update(template *models.Template) error {
	return db.DB.Save(template).Error
}

// Delete removes the row for good so the database cascades to fields,
// assignments, field values and versions.
func (r *DBTemplateRepo) Delete(id uint) error {
	return db.DB.Unscoped().Delete(&models.Template{}, id).Error
}
