package services

import "errors"

var (
	ErrTemplateNotFound     = errors.New("template not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrFieldNotFound        = errors.New("field not found")
	ErrFieldExists          = errors.New("field id already declared for this template")
	ErrForbidden            = errors.New("permission denied")
	ErrMissingArtifact      = errors.New("template artifact unavailable")
	ErrIncompleteSubmission = errors.New("not all fields have submitted values")
	ErrEmptyResultSet       = errors.New("no documents available for export")
	ErrBindFailure          = errors.New("field binding failed")
	ErrNoFields             = errors.New("template has no editable fields")
)
