package handlers

import (
	"github.com/docfill/docfill-go/services"
)

type Handlers struct {
	User       *UserHandler
	Template   *TemplateHandler
	Assignment *AssignmentHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Template:   NewTemplateHandler(svc.Template),
		Assignment: NewAssignmentHandler(svc.Assignment, svc.Document),
	}
}
