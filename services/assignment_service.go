package services

import (
	"context"
	"log"
	"time"

	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/repositories"
	"github.com/docfill/docfill-go/utils"
)

// AssignmentService drives the assignment lifecycle:
// pending -> in_progress -> completed.
type AssignmentService struct {
	Repos *repositories.Repos
	Docs  *DocumentService
	locks *assignmentLocks
}

func NewAssignmentService(repos *repositories.Repos, docs *DocumentService, locks *assignmentLocks) *AssignmentService {
	return &AssignmentService{Repos: repos, Docs: docs, locks: locks}
}

// Assign hands the template to each listed user, reusing an existing
// assignment for a (template, user) pair. It returns the number of newly
// created assignments and flips the template status to sent.
func (s *AssignmentService) Assign(ownerID, templateID uint, userIDs []uint) (int, error) {
	template, err := s.Repos.Template.FindByID(templateID)
	if err != nil {
		return 0, ErrTemplateNotFound
	}
	if template.CreatedBy != ownerID {
		return 0, ErrForbidden
	}
	if len(template.Fields) == 0 {
		return 0, ErrNoFields
	}

	created := 0
	for _, userID := range userIDs {
		if _, err := s.Repos.User.FindByID(userID); err != nil {
			continue
		}
		_, isNew, err := s.Repos.Assignment.FindOrCreate(templateID, userID)
		if err != nil {
			return created, err
		}
		if isNew {
			created++
		}
	}

	template.Status = models.TemplateStatusSent
	if err := s.Repos.Template.Update(template); err != nil {
		return created, err
	}
	return created, nil
}

func (s *AssignmentService) GetUserAssignments(userID uint) ([]models.Assignment, error) {
	return s.Repos.Assignment.FindByUserID(userID)
}

func (s *AssignmentService) GetCompletedByOwner(ownerID, templateID uint) ([]models.Assignment, error) {
	return s.Repos.Assignment.FindCompletedByOwner(ownerID, templateID)
}

// SubmitValues records the user's values for the assignment's fields. Field
// ids that are not declared on the template are ignored. The first submission
// moves a pending assignment to in_progress and stamps StartedAt exactly once.
func (s *AssignmentService) SubmitValues(assignmentID, userID uint, values map[string]string) (*models.Assignment, error) {
	mu := s.locks.Get(assignmentID)
	mu.Lock()
	defer mu.Unlock()

	assignment, err := s.Repos.Assignment.FindByID(assignmentID)
	if err != nil {
		return nil, ErrAssignmentNotFound
	}
	if assignment.UserID != userID {
		return nil, ErrForbidden
	}

	for fieldID, value := range values {
		field, err := s.Repos.Field.FindByTemplateAndFieldID(assignment.TemplateID, fieldID)
		if err != nil {
			continue
		}
		fv := &models.FieldValue{
			AssignmentID: assignment.ID,
			FieldID:      field.ID,
			Value:        value,
		}
		if err := s.Repos.FieldValue.Upsert(fv); err != nil {
			return nil, err
		}
	}

	if assignment.Status == models.AssignmentStatusPending {
		now := time.Now()
		assignment.Status = models.AssignmentStatusInProgress
		assignment.StartedAt = &now
		if err := s.Repos.Assignment.Update(assignment); err != nil {
			return nil, err
		}
	}

	return s.Repos.Assignment.FindByID(assignmentID)
}

// Complete finalizes the assignment. It succeeds only when the template still
// declares fields and every one has a submitted value; otherwise it fails with
// ErrNoFields or ErrIncompleteSubmission. On success it stamps CompletedAt and
// triggers a best-effort materialization whose failure is logged, never
// propagated.
func (s *AssignmentService) Complete(ctx context.Context, assignmentID, userID uint) (*models.Assignment, error) {
	mu := s.locks.Get(assignmentID)
	mu.Lock()
	defer mu.Unlock()

	assignment, err := s.Repos.Assignment.FindByID(assignmentID)
	if err != nil {
		return nil, ErrAssignmentNotFound
	}
	if assignment.UserID != userID {
		return nil, ErrForbidden
	}
	if assignment.Status == models.AssignmentStatusCompleted {
		return assignment, nil
	}

	declared, err := s.Repos.Field.CountByTemplateID(assignment.TemplateID)
	if err != nil {
		return nil, err
	}
	if declared == 0 {
		return nil, ErrNoFields
	}
	submitted, err := s.Repos.FieldValue.CountByAssignmentID(assignment.ID)
	if err != nil {
		return nil, err
	}
	if submitted != declared {
		return nil, ErrIncompleteSubmission
	}

	now := time.Now()
	assignment.Status = models.AssignmentStatusCompleted
	assignment.CompletedAt = &now
	if err := s.Repos.Assignment.Update(assignment); err != nil {
		return nil, err
	}

	if _, err := s.Docs.materialize(ctx, assignment); err != nil {
		log.Printf("complete: materialization for assignment %d failed: %v", assignment.ID, err)
	}

	return assignment, nil
}

// Delete removes the assignment and its field values and versions, then
// releases the version artifacts. Records go first so a storage failure
// leaves orphaned bytes rather than dangling records.
func (s *AssignmentService) Delete(ctx context.Context, assignmentID, requesterID uint, requesterAdmin bool) error {
	mu := s.locks.Get(assignmentID)
	mu.Lock()
	defer mu.Unlock()

	assignment, err := s.Repos.Assignment.FindByID(assignmentID)
	if err != nil {
		return ErrAssignmentNotFound
	}
	if !requesterAdmin && assignment.UserID != requesterID {
		return ErrForbidden
	}

	versions, err := s.Repos.Version.FindByAssignmentID(assignment.ID)
	if err != nil {
		return err
	}

	if err := s.Repos.Assignment.Delete(assignment.ID); err != nil {
		return err
	}

	for _, v := range versions {
		if v.ObjectKey == "" {
			continue
		}
		if err := utils.DeleteObject(ctx, v.ObjectKey); err != nil {
			log.Printf("delete: leaving orphaned artifact %s: %v", v.ObjectKey, err)
		}
	}
	return nil
}
