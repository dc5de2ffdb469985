package dto

type CreateFieldInput struct {
	FieldID       string `json:"field_id" binding:"required,max=100"`
	Label         string `json:"label" binding:"required"`
	FieldType     string `json:"field_type" binding:"omitempty,oneof=text email number date"`
	OriginalValue string `json:"original_value"`
}

type AssignTemplateInput struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1"`
}
