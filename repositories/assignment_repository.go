package repositories

import (
	"errors"

	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/models"
	"gorm.io/gorm"
)

type AssignmentRepo interface {
	// FindOrCreate returns the assignment for (templateID, userID), creating
	// it in pending state when absent. The bool reports whether a new row was
	// created.
	FindOrCreate(templateID, userID uint) (*models.Assignment, bool, error)
	FindByID(id uint) (*models.Assignment, error)
	FindByUserID(userID uint) ([]models.Assignment, error)
	FindCompletedByOwner(ownerID, templateID uint) ([]models.Assignment, error)
	Update(assignment *models.Assignment) error
	Delete(id uint) error
}

type DBAssignmentRepo struct{}

func (r *DBAssignmentRepo) FindOrCreate(templateID, userID uint) (*models.Assignment, bool, error) {
	var assignment models.Assignment
	err := db.DB.Where("template_id = ? AND user_id = ?", templateID, userID).First(&assignment).Error
	if err == nil {
		return &assignment, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	assignment = models.Assignment{
		TemplateID: templateID,
		UserID:     userID,
		Status:     models.AssignmentStatusPending,
	}
	if err := db.DB.Create(&assignment).Error; err != nil {
		return nil, false, err
	}
	return &assignment, true, nil
}

func (r *DBAssignmentRepo) FindByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := db.DB.
		Preload("Template.Fields").
		Preload("Template.Owner").
		Preload("User").
		Preload("FieldValues.Field").
		First(&assignment, id).Error
	return &assignment, err
}

func (r *DBAssignmentRepo) FindByUserID(userID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := db.DB.
		Where("user_id = ?", userID).
		Preload("Template.Fields").
		Preload("FieldValues.Field").
		Order("created_at desc").
		Find(&assignments).Error
	return assignments, err
}

func (r *DBAssignmentRepo) FindCompletedByOwner(ownerID, templateID uint) ([]models.Assignment, error) {
	q := db.DB.
		Joins("JOIN templates ON templates.id = assignments.template_id").
		Where("templates.created_by = ? AND assignments.status = ?", ownerID, models.AssignmentStatusCompleted)
	if templateID != 0 {
		q = q.Where("assignments.template_id = ?", templateID)
	}

	var assignments []models.Assignment
	err := q.
		Preload("Template.Fields").
		Preload("User").
		Preload("FieldValues.Field").
		Order("assignments.completed_at desc").
		Find(&assignments).Error
	return assignments, err
}

func (r *DBAssignmentRepo) Update(assignment *models.Assignment) error {
	return db.DB.Save(assignment).Error
}

func (r *DBAssignmentRepo) Delete(id uint) error {
	return db.DB.Unscoped().Delete(&models.Assignment{}, id).Error
}
