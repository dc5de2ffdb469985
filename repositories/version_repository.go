package repositories

import (
	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/models"
)

type VersionRepo interface {
	Create(version *models.Version) error
	// FindLatestByAssignmentID returns the most recent version that carries a
	// generated artifact.
	FindLatestByAssignmentID(assignmentID uint) (*models.Version, error)
	FindByAssignmentID(assignmentID uint) ([]models.Version, error)
	FindByTemplateID(templateID uint) ([]models.Version, error)
}

type DBVersionRepo struct{}

func (r *DBVersionRepo) Create(version *models.Version) error {
	return db.DB.Create(version).Error
}

func (r *DBVersionRepo) FindLatestByAssignmentID(assignmentID uint) (*models.Version, error) {
	var version models.Version
	err := db.DB.
		Where("assignment_id = ? AND object_key <> ''", assignmentID).
		Order("created_at desc").
		First(&version).Error
	return &version, err
}

func (r *DBVersionRepo) FindByAssignmentID(assignmentID uint) ([]models.Version, error) {
	var versions []models.Version
	err := db.DB.Where("assignment_id = ?", assignmentID).Order("created_at desc").Find(&versions).Error
	return versions, err
}

func (r *DBVersionRepo) FindByTemplateID(templateID uint) ([]models.Version, error) {
	var versions []models.Version
	err := db.DB.
		Joins("JOIN assignments ON assignments.id = versions.assignment_id").
		Where("assignments.template_id = ?", templateID).
		Find(&versions).Error
	return versions, err
}
