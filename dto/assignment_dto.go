package dto

type SubmitValuesInput struct {
	AssignmentID uint              `json:"assignment_id" binding:"required"`
	FieldValues  map[string]string `json:"field_values" binding:"required"`
}
