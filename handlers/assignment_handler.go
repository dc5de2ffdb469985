package handlers

import (
	"fmt"
	"net/http"

	"github.com/docfill/docfill-go/dto"
	"github.com/docfill/docfill-go/response"
	"github.com/docfill/docfill-go/services"
	"github.com/docfill/docfill-go/utils"
	"github.com/gin-gonic/gin"
)

const zipContentType = "application/zip"
const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type AssignmentHandler struct {
	service *services.AssignmentService
	docs    *services.DocumentService
}

func NewAssignmentHandler(service *services.AssignmentService, docs *services.DocumentService) *AssignmentHandler {
	return &AssignmentHandler{service: service, docs: docs}
}

func (h *AssignmentHandler) Assign(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	templateID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.AssignTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Assign(userID, templateID, input.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{
		Message: fmt.Sprintf("template assigned to %d users", created),
	})
}

func (h *AssignmentHandler) MyAssignments(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	assignments, err := h.service.GetUserAssignments(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: assignments})
}

func (h *AssignmentHandler) Completed(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	templateID, _ := utils.ParseQueryUintParam(c, "template_id")

	assignments, err := h.service.GetCompletedByOwner(userID, templateID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: assignments})
}

func (h *AssignmentHandler) SubmitValues(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.SubmitValuesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	assignment, err := h.service.SubmitValues(input.AssignmentID, userID, input.FieldValues)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: assignment})
}

func (h *AssignmentHandler) Complete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	assignment, err := h.service.Complete(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: assignment})
}

func (h *AssignmentHandler) Download(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	data, fileName, err := h.docs.DownloadLatest(c.Request.Context(), id, claims.UserID, claims.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, docxContentType, data)
}

func (h *AssignmentHandler) ExportCompleted(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	templateID, _ := utils.ParseQueryUintParam(c, "template_id")

	archive, name, err := h.docs.ExportArchive(c.Request.Context(), userID, templateID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, zipContentType, archive)
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, claims.UserID, claims.IsAdmin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "assignment deleted"})
}
