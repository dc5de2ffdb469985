package models

import "gorm.io/gorm"

type TemplateStatus string

const (
	TemplateStatusDraft     TemplateStatus = "draft"
	TemplateStatusSent      TemplateStatus = "sent"
	TemplateStatusCompleted TemplateStatus = "completed"
)

// Template is an uploaded Word document whose declared fields are later
// substituted per assignment.
type Template struct {
	gorm.Model
	Name        string         `gorm:"size:255;not null" json:"name"`
	FileName    string         `gorm:"size:255" json:"file_name"`
	ObjectKey   string         `gorm:"size:512" json:"-"`
	ContentType string         `gorm:"size:100" json:"content_type"`
	PreviewHTML string         `gorm:"type:text" json:"preview_html"`
	Status      TemplateStatus `gorm:"size:10;default:'draft'" json:"status"`
	CreatedBy   uint           `json:"created_by"`
	Owner       User           `gorm:"foreignKey:CreatedBy" json:"owner"`
	Fields      []Field        `gorm:"constraint:OnDelete:CASCADE" json:"fields"`
}

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeEmail  FieldType = "email"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
)

// Field is a named placeholder in a template. OriginalValue is the literal
// substring substitution looks for in the document.
type Field struct {
	gorm.Model
	TemplateID    uint      `gorm:"not null;uniqueIndex:idx_template_field" json:"template_id"`
	FieldID       string    `gorm:"size:100;not null;uniqueIndex:idx_template_field" json:"field_id"`
	Label         string    `gorm:"size:255" json:"label"`
	FieldType     FieldType `gorm:"size:20;default:'text'" json:"field_type"`
	OriginalValue string    `gorm:"type:text" json:"original_value"`
}
