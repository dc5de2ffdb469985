package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/pkg/docx"
	"github.com/docfill/docfill-go/repositories"
	"github.com/docfill/docfill-go/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocumentService materializes assignment versions from templates and bundles
// them for export.
type DocumentService struct {
	Repos *repositories.Repos
	locks *assignmentLocks
}

func NewDocumentService(repos *repositories.Repos, locks *assignmentLocks) *DocumentService {
	return &DocumentService{Repos: repos, locks: locks}
}

// BindFields replaces each field's original value with its bound value in the
// document bytes. Fields with an empty original value or no binding are
// skipped. It returns the mutated bytes and the number of paragraphs changed.
func (s *DocumentService) BindFields(docBytes []byte, fields []models.Field, values map[string]string) ([]byte, int, error) {
	doc, err := docx.Load(docBytes)
	if err != nil {
		return nil, 0, err
	}

	replaced := 0
	for _, f := range fields {
		if f.OriginalValue == "" {
			continue
		}
		v, ok := values[f.FieldID]
		if !ok {
			continue
		}
		replaced += doc.Replace(f.OriginalValue, v)
	}

	out, err := doc.Save()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBindFailure, err)
	}
	return out, replaced, nil
}

// Materialize generates a new version for the assignment and persists its
// artifact. Every successful call appends exactly one version; prior versions
// are never touched.
func (s *DocumentService) Materialize(ctx context.Context, assignmentID uint) (*models.Version, error) {
	mu := s.locks.Get(assignmentID)
	mu.Lock()
	defer mu.Unlock()

	assignment, err := s.Repos.Assignment.FindByID(assignmentID)
	if err != nil {
		return nil, ErrAssignmentNotFound
	}
	return s.materialize(ctx, assignment)
}

// materialize must be called with the assignment's lock held.
func (s *DocumentService) materialize(ctx context.Context, assignment *models.Assignment) (*models.Version, error) {
	template := &assignment.Template
	if strings.EqualFold(path.Ext(template.FileName), ".doc") {
		return nil, docx.ErrUnsupportedFormat
	}
	if template.ObjectKey == "" {
		return nil, ErrMissingArtifact
	}

	src, err := utils.DownloadObject(ctx, template.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingArtifact, err)
	}

	values := make(map[string]string, len(assignment.FieldValues))
	for _, fv := range assignment.FieldValues {
		values[fv.Field.FieldID] = fv.Value
	}

	out, _, err := s.BindFields(src, template.Fields, values)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("%s__%s.docx",
		utils.SafeFileName(assignment.User.DisplayName()),
		utils.SafeFileName(template.Name))
	objectKey := fmt.Sprintf("generated/%d/%s_%s", assignment.ID, uuid.NewString(), fileName)

	if err := utils.UploadBytes(ctx, objectKey, docxContentType, out); err != nil {
		return nil, fmt.Errorf("upload generated document: %w", err)
	}

	bindings, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}

	version := &models.Version{
		AssignmentID: assignment.ID,
		ObjectKey:    objectKey,
		FileName:     fileName,
		Bindings:     bindings,
	}
	if err := s.Repos.Version.Create(version); err != nil {
		return nil, err
	}
	return version, nil
}

// DownloadLatest returns the bytes and file name of the assignment's most
// recent generated version, materializing one on demand when none exists.
// Only the assigned user, the template owner or an admin may download.
func (s *DocumentService) DownloadLatest(ctx context.Context, assignmentID, requesterID uint, requesterAdmin bool) ([]byte, string, error) {
	mu := s.locks.Get(assignmentID)
	mu.Lock()
	defer mu.Unlock()

	assignment, err := s.Repos.Assignment.FindByID(assignmentID)
	if err != nil {
		return nil, "", ErrAssignmentNotFound
	}
	if !requesterAdmin && assignment.UserID != requesterID && assignment.Template.CreatedBy != requesterID {
		return nil, "", ErrForbidden
	}
	return s.latestArtifact(ctx, assignment)
}

// latestArtifact must be called with the assignment's lock held.
func (s *DocumentService) latestArtifact(ctx context.Context, assignment *models.Assignment) ([]byte, string, error) {
	version, err := s.Repos.Version.FindLatestByAssignmentID(assignment.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
		version, err = s.materialize(ctx, assignment)
		if err != nil {
			return nil, "", err
		}
	}

	data, err := utils.DownloadObject(ctx, version.ObjectKey)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMissingArtifact, err)
	}
	return data, version.FileName, nil
}

// ExportArchive bundles the latest artifact of every completed assignment
// owned by ownerID (optionally scoped to one template) into a zip archive.
// Assignments whose artifact cannot be produced are skipped; a batch with
// zero artifacts fails with ErrEmptyResultSet. It returns the archive bytes
// and a suggested file name.
func (s *DocumentService) ExportArchive(ctx context.Context, ownerID, templateID uint) ([]byte, string, error) {
	assignments, err := s.Repos.Assignment.FindCompletedByOwner(ownerID, templateID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	included := 0
	seen := make(map[string]bool)

	for i := range assignments {
		assignment := &assignments[i]
		data, fileName, err := s.exportArtifact(ctx, assignment)
		if err != nil {
			log.Printf("export: skipping assignment %d: %v", assignment.ID, err)
			continue
		}

		recipient := utils.SafeFileName(assignment.User.DisplayName())
		entry := fmt.Sprintf("%s/%s", recipient, fileName)
		for n := 2; seen[entry]; n++ {
			entry = fmt.Sprintf("%s/%d_%s", recipient, n, fileName)
		}
		seen[entry] = true

		w, err := zw.Create(entry)
		if err != nil {
			return nil, "", err
		}
		if _, err := w.Write(data); err != nil {
			return nil, "", err
		}
		included++
	}

	if err := zw.Close(); err != nil {
		return nil, "", err
	}
	if included == 0 {
		return nil, "", ErrEmptyResultSet
	}

	scope := ""
	if templateID != 0 {
		if template, err := s.Repos.Template.FindByID(templateID); err == nil {
			scope = "_" + utils.SafeFileName(template.Name)
		}
	}
	archiveName := fmt.Sprintf("completed_documents%s_%s.zip", scope, time.Now().Format("20060102_150405"))
	return buf.Bytes(), archiveName, nil
}

func (s *DocumentService) exportArtifact(ctx context.Context, assignment *models.Assignment) ([]byte, string, error) {
	mu := s.locks.Get(assignment.ID)
	mu.Lock()
	defer mu.Unlock()
	return s.latestArtifact(ctx, assignment)
}
