package repositories

import (
	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/models"
	"gorm.io/gorm/clause"
)

type FieldValueRepo interface {
	// Upsert creates the value for (assignment, field) or updates the
	// existing one, preserving the pair's uniqueness.
	Upsert(value *models.FieldValue) error
	FindByAssignmentID(assignmentID uint) ([]models.FieldValue, error)
	CountByAssignmentID(assignmentID uint) (int64, error)
}

type DBFieldValueRepo struct{}

func (r *DBFieldValueRepo) Upsert(value *models.FieldValue) error {
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "field_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(value).Error
}

func (r *DBFieldValueRepo) FindByAssignmentID(assignmentID uint) ([]models.FieldValue, error) {
	var values []models.FieldValue
	err := db.DB.Where("assignment_id = ?", assignmentID).Preload("Field").Find(&values).Error
	return values, err
}

func (r *DBFieldValueRepo) CountByAssignmentID(assignmentID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.FieldValue{}).Where("assignment_id = ?", assignmentID).Count(&count).Error
	return count, err
}
