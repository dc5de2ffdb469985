package handlers

import (
	"errors"
	"net/http"

	"github.com/docfill/docfill-go/pkg/docx"
	"github.com/docfill/docfill-go/response"
	"github.com/docfill/docfill-go/services"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrFieldNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMissingArtifact),
		errors.Is(err, services.ErrEmptyResultSet):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrFieldExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrIncompleteSubmission),
		errors.Is(err, services.ErrNoFields),
		errors.Is(err, services.ErrBadExtension),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, docx.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
