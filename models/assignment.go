package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

// Assignment hands one template to one user for completion. At most one
// assignment exists per (template, user) pair.
type Assignment struct {
	gorm.Model
	TemplateID  uint             `gorm:"not null;uniqueIndex:idx_template_user" json:"template_id"`
	UserID      uint             `gorm:"not null;uniqueIndex:idx_template_user" json:"user_id"`
	Status      AssignmentStatus `gorm:"size:15;default:'pending'" json:"status"`
	StartedAt   *time.Time       `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at"`
	Template    Template         `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template"`
	User        User             `gorm:"foreignKey:UserID" json:"user"`
	FieldValues []FieldValue     `gorm:"constraint:OnDelete:CASCADE" json:"field_values"`
	Versions    []Version        `gorm:"constraint:OnDelete:CASCADE" json:"versions,omitempty"`
}

// FieldValue is one user-supplied replacement value for one field of one
// assignment; (assignment, field) pairs are unique.
type FieldValue struct {
	gorm.Model
	AssignmentID uint   `gorm:"not null;uniqueIndex:idx_assignment_field" json:"assignment_id"`
	FieldID      uint   `gorm:"not null;uniqueIndex:idx_assignment_field" json:"field_id"`
	Field        Field  `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"field"`
	Value        string `gorm:"type:text" json:"value"`
}

// Version is one immutable materialization of an assignment. ObjectKey is
// empty when artifact generation failed; Bindings snapshots the field values
// used for the run.
type Version struct {
	gorm.Model
	AssignmentID uint           `gorm:"not null;index" json:"assignment_id"`
	ObjectKey    string         `gorm:"size:512" json:"-"`
	FileName     string         `gorm:"size:255" json:"file_name"`
	Bindings     datatypes.JSON `json:"bindings"`
}
