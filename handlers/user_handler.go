package handlers

import (
	"net/http"

	"github.com/docfill/docfill-go/dto"
	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/response"
	"github.com/docfill/docfill-go/services"
	"github.com/docfill/docfill-go/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: user})
}

func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.service.Login(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      user.ID,
		Username: user.Username,
		IsAdmin:  user.Role == models.UserRoleAdmin,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: user})
}

func (h *UserHandler) ListRecipients(c *gin.Context) {
	users, err := h.service.ListRecipients()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: users})
}

func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: users})
}

func (h *UserHandler) SetRole(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.SetRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.SetRole(id, models.UserRole(input.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: user})
}
