package services

import "github.com/docfill/docfill-go/repositories"

type Services struct {
	User       *UserService
	Template   *TemplateService
	Assignment *AssignmentService
	Document   *DocumentService
}

func New(repos *repositories.Repos) *Services {
	locks := newAssignmentLocks()
	docs := NewDocumentService(repos, locks)
	return &Services{
		User:       NewUserService(repos),
		Template:   NewTemplateService(repos),
		Assignment: NewAssignmentService(repos, docs, locks),
		Document:   docs,
	}
}
