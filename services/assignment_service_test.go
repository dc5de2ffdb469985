package services

import (
	"context"
	"testing"

	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/repositories"
	"github.com/docfill/docfill-go/repositories/mock_repositories"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------

type assignmentServiceMocks struct {
	svc        *AssignmentService
	assignment *mock_repositories.MockAssignmentRepo
	template   *mock_repositories.MockTemplateRepo
	field      *mock_repositories.MockFieldRepo
	fieldValue *mock_repositories.MockFieldValueRepo
	version    *mock_repositories.MockVersionRepo
	user       *mock_repositories.MockUserRepo
}

func setupAssignmentServiceMocks(t *testing.T) *assignmentServiceMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &assignmentServiceMocks{
		assignment: mock_repositories.NewMockAssignmentRepo(ctrl),
		template:   mock_repositories.NewMockTemplateRepo(ctrl),
		field:      mock_repositories.NewMockFieldRepo(ctrl),
		fieldValue: mock_repositories.NewMockFieldValueRepo(ctrl),
		version:    mock_repositories.NewMockVersionRepo(ctrl),
		user:       mock_repositories.NewMockUserRepo(ctrl),
	}
	repos := &repositories.Repos{
		Assignment: m.assignment,
		Template:   m.template,
		Field:      m.field,
		FieldValue: m.fieldValue,
		Version:    m.version,
		User:       m.user,
	}
	locks := newAssignmentLocks()
	m.svc = NewAssignmentService(repos, NewDocumentService(repos, locks), locks)
	return m
}

func sentTemplate(ownerID uint) *models.Template {
	return &models.Template{
		Model:     gorm.Model{ID: 7},
		Name:      "Offer Letter",
		CreatedBy: ownerID,
		Fields:    []models.Field{{FieldID: "name", OriginalValue: "NAME"}},
	}
}

// --------------------- Assign ---------------------

func TestAssign_CreatesMissingAssignmentsOnly(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.template.EXPECT().FindByID(uint(7)).Return(sentTemplate(1), nil)
	m.user.EXPECT().FindByID(uint(2)).Return(&models.User{}, nil)
	m.user.EXPECT().FindByID(uint(3)).Return(&models.User{}, nil)
	m.assignment.EXPECT().FindOrCreate(uint(7), uint(2)).Return(&models.Assignment{}, true, nil)
	m.assignment.EXPECT().FindOrCreate(uint(7), uint(3)).Return(&models.Assignment{}, false, nil)
	m.template.EXPECT().Update(gomock.Any()).DoAndReturn(func(tpl *models.Template) error {
		assert.Equal(t, models.TemplateStatusSent, tpl.Status)
		return nil
	})

	created, err := m.svc.Assign(1, 7, []uint{2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestAssign_SkipsUnknownUsers(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.template.EXPECT().FindByID(uint(7)).Return(sentTemplate(1), nil)
	m.user.EXPECT().FindByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)
	m.template.EXPECT().Update(gomock.Any()).Return(nil)

	created, err := m.svc.Assign(1, 7, []uint{99})
	assert.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestAssign_ForbiddenForNonOwner(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.template.EXPECT().FindByID(uint(7)).Return(sentTemplate(1), nil)

	_, err := m.svc.Assign(5, 7, []uint{2})
	assert.Equal(t, ErrForbidden, err)
}

func TestAssign_RequiresDeclaredFields(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	tpl := sentTemplate(1)
	tpl.Fields = nil
	m.template.EXPECT().FindByID(uint(7)).Return(tpl, nil)

	_, err := m.svc.Assign(1, 7, []uint{2})
	assert.Equal(t, ErrNoFields, err)
}

func TestAssign_TemplateNotFound(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.template.EXPECT().FindByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := m.svc.Assign(1, 404, []uint{2})
	assert.Equal(t, ErrTemplateNotFound, err)
}

// --------------------- SubmitValues ---------------------

func TestSubmitValues_FirstSubmissionStartsProgress(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	assignment := &models.Assignment{
		Model:      gorm.Model{ID: 3},
		TemplateID: 7,
		UserID:     2,
		Status:     models.AssignmentStatusPending,
	}
	m.assignment.EXPECT().FindByID(uint(3)).Return(assignment, nil)
	m.field.EXPECT().FindByTemplateAndFieldID(uint(7), "name").
		Return(&models.Field{Model: gorm.Model{ID: 11}, FieldID: "name"}, nil)
	m.fieldValue.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(fv *models.FieldValue) error {
		assert.Equal(t, uint(3), fv.AssignmentID)
		assert.Equal(t, uint(11), fv.FieldID)
		assert.Equal(t, "Alice", fv.Value)
		return nil
	})
	m.assignment.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Assignment) error {
		assert.Equal(t, models.AssignmentStatusInProgress, a.Status)
		require.NotNil(t, a.StartedAt)
		return nil
	})
	m.assignment.EXPECT().FindByID(uint(3)).Return(assignment, nil)

	_, err := m.svc.SubmitValues(3, 2, map[string]string{"name": "Alice"})
	assert.NoError(t, err)
}

func TestSubmitValues_DoesNotRestartProgress(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	started := &models.Assignment{
		Model:      gorm.Model{ID: 3},
		TemplateID: 7,
		UserID:     2,
		Status:     models.AssignmentStatusInProgress,
	}
	m.assignment.EXPECT().FindByID(uint(3)).Return(started, nil).Times(2)
	m.field.EXPECT().FindByTemplateAndFieldID(uint(7), "name").
		Return(&models.Field{Model: gorm.Model{ID: 11}}, nil)
	m.fieldValue.EXPECT().Upsert(gomock.Any()).Return(nil)

	// no Update expectation: an in_progress assignment is left alone
	_, err := m.svc.SubmitValues(3, 2, map[string]string{"name": "Bob"})
	assert.NoError(t, err)
}

func TestSubmitValues_IgnoresUndeclaredFields(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	started := &models.Assignment{
		Model:      gorm.Model{ID: 3},
		TemplateID: 7,
		UserID:     2,
		Status:     models.AssignmentStatusInProgress,
	}
	m.assignment.EXPECT().FindByID(uint(3)).Return(started, nil).Times(2)
	m.field.EXPECT().FindByTemplateAndFieldID(uint(7), "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := m.svc.SubmitValues(3, 2, map[string]string{"ghost": "boo"})
	assert.NoError(t, err)
}

func TestSubmitValues_ForbiddenForOtherUsers(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(3)).Return(&models.Assignment{
		Model: gorm.Model{ID: 3}, UserID: 2,
	}, nil)

	_, err := m.svc.SubmitValues(3, 9, map[string]string{"name": "Eve"})
	assert.Equal(t, ErrForbidden, err)
}

// --------------------- Complete ---------------------

func TestComplete_RejectsIncompleteSubmission(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(3)).Return(&models.Assignment{
		Model: gorm.Model{ID: 3}, TemplateID: 7, UserID: 2,
		Status: models.AssignmentStatusInProgress,
	}, nil)
	m.field.EXPECT().CountByTemplateID(uint(7)).Return(int64(3), nil)
	m.fieldValue.EXPECT().CountByAssignmentID(uint(3)).Return(int64(2), nil)

	_, err := m.svc.Complete(context.Background(), 3, 2)
	assert.Equal(t, ErrIncompleteSubmission, err)
}

func TestComplete_RejectsWhenNoFieldsDeclared(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	// all fields deleted after assigning: a pending assignment must not jump
	// straight to completed just because zero values match zero fields
	m.assignment.EXPECT().FindByID(uint(3)).Return(&models.Assignment{
		Model: gorm.Model{ID: 3}, TemplateID: 7, UserID: 2,
		Status: models.AssignmentStatusPending,
	}, nil)
	m.field.EXPECT().CountByTemplateID(uint(7)).Return(int64(0), nil)

	_, err := m.svc.Complete(context.Background(), 3, 2)
	assert.Equal(t, ErrNoFields, err)
}

func TestComplete_StampsCompletionDespiteMaterializationFailure(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	// empty template object key makes the materialization step fail,
	// which must be logged but never propagated
	assignment := &models.Assignment{
		Model: gorm.Model{ID: 3}, TemplateID: 7, UserID: 2,
		Status:   models.AssignmentStatusInProgress,
		Template: models.Template{FileName: "offer.docx"},
	}
	m.assignment.EXPECT().FindByID(uint(3)).Return(assignment, nil)
	m.field.EXPECT().CountByTemplateID(uint(7)).Return(int64(1), nil)
	m.fieldValue.EXPECT().CountByAssignmentID(uint(3)).Return(int64(1), nil)
	m.assignment.EXPECT().Update(gomock.Any()).Return(nil)

	completed, err := m.svc.Complete(context.Background(), 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
}

func TestComplete_AlreadyCompletedIsIdempotent(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(3)).Return(&models.Assignment{
		Model: gorm.Model{ID: 3}, UserID: 2,
		Status: models.AssignmentStatusCompleted,
	}, nil)

	completed, err := m.svc.Complete(context.Background(), 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusCompleted, completed.Status)
}

// --------------------- Delete ---------------------

func TestDelete_RemovesRecordsBeforeObjects(t *testing.T) {
	m := setupAssignmentServiceMocks(t)
	fs := useFakeStorage(t)
	fs.objects["generated/3/a"] = []byte("x")
	fs.objects["generated/3/b"] = []byte("y")

	m.assignment.EXPECT().FindByID(uint(3)).Return(&models.Assignment{
		Model: gorm.Model{ID: 3}, UserID: 2,
	}, nil)
	m.version.EXPECT().FindByAssignmentID(uint(3)).Return([]models.Version{
		{ObjectKey: "generated/3/a"},
		{ObjectKey: ""},
		{ObjectKey: "generated/3/b"},
	}, nil)
	m.assignment.EXPECT().Delete(uint(3)).Return(nil)

	err := m.svc.Delete(context.Background(), 3, 2, false)
	assert.NoError(t, err)
	assert.Empty(t, fs.objects)
}

func TestDelete_AdminMayDeleteAnyAssignment(t *testing.T) {
	m := setupAssignmentServiceMocks(t)
	useFakeStorage(t)

	m.assignment.EXPECT().FindByID(uint(3)).Return(&models.Assignment{
		Model: gorm.Model{ID: 3}, UserID: 2,
	}, nil)
	m.version.EXPECT().FindByAssignmentID(uint(3)).Return(nil, nil)
	m.assignment.EXPECT().Delete(uint(3)).Return(nil)

	assert.NoError(t, m.svc.Delete(context.Background(), 3, 99, true))
}

func TestDelete_ForbiddenForOtherUsers(t *testing.T) {
	m := setupAssignmentServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(3)).Return(&models.Assignment{
		Model: gorm.Model{ID: 3}, UserID: 2,
	}, nil)

	err := m.svc.Delete(context.Background(), 3, 9, false)
	assert.Equal(t, ErrForbidden, err)
}
