package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/docfill/docfill-go/dto"
	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/repositories"
	"github.com/docfill/docfill-go/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBadExtension = errors.New("only .docx and .doc files are accepted")

// previewPlaceholder stands in for the external HTML converter output.
const previewPlaceholder = "Document content pending processing..."

type TemplateService struct {
	Repos *repositories.Repos
}

func NewTemplateService(repos *repositories.Repos) *TemplateService {
	return &TemplateService{Repos: repos}
}

// Upload stores the document bytes and creates the template in draft state.
// Legacy .doc uploads are accepted for storage but declined later at
// materialization time.
func (s *TemplateService) Upload(ctx context.Context, ownerID uint, name, fileName, contentType string, data []byte) (*models.Template, error) {
	ext := strings.ToLower(path.Ext(fileName))
	if ext != ".docx" && ext != ".doc" {
		return nil, ErrBadExtension
	}
	if name == "" {
		name = fileName
	}

	base := strings.TrimSuffix(fileName, path.Ext(fileName))
	objectKey := fmt.Sprintf("templates/%s_%s%s", uuid.NewString(), utils.SafeFileName(base), ext)
	if err := utils.UploadBytes(ctx, objectKey, contentType, data); err != nil {
		return nil, fmt.Errorf("upload template: %w", err)
	}

	template := &models.Template{
		Name:        name,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		PreviewHTML: previewPlaceholder,
		Status:      models.TemplateStatusDraft,
		CreatedBy:   ownerID,
	}
	if err := s.Repos.Template.Create(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) ListByOwner(ownerID uint) ([]models.Template, error) {
	return s.Repos.Template.FindByOwner(ownerID)
}

func (s *TemplateService) Get(ownerID, templateID uint) (*models.Template, error) {
	template, err := s.Repos.Template.FindByID(templateID)
	if err != nil {
		return nil, ErrTemplateNotFound
	}
	if template.CreatedBy != ownerID {
		return nil, ErrForbidden
	}
	return template, nil
}

// Reprocess re-runs the preview conversion for the template. The conversion
// itself is delegated to an external converter; its output is stored opaquely.
func (s *TemplateService) Reprocess(ownerID, templateID uint) (*models.Template, error) {
	template, err := s.Get(ownerID, templateID)
	if err != nil {
		return nil, err
	}
	template.PreviewHTML = previewPlaceholder
	if err := s.Repos.Template.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

// Delete removes the template with everything it owns, then releases stored
// artifacts. Records go first so a storage failure leaves orphaned bytes
// rather than dangling records.
func (s *TemplateService) Delete(ctx context.Context, ownerID, templateID uint) error {
	template, err := s.Get(ownerID, templateID)
	if err != nil {
		return err
	}

	versions, err := s.Repos.Version.FindByTemplateID(template.ID)
	if err != nil {
		return err
	}

	if err := s.Repos.Template.Delete(template.ID); err != nil {
		return err
	}

	if template.ObjectKey != "" {
		if err := utils.DeleteObject(ctx, template.ObjectKey); err != nil {
			log.Printf("delete: leaving orphaned artifact %s: %v", template.ObjectKey, err)
		}
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

// CreateField declares a placeholder field on the template. (template,
// field_id) pairs are unique.
func (s *TemplateService) CreateField(ownerID, templateID uint, input dto.CreateFieldInput) (*models.Field, error) {
	template, err := s.Get(ownerID, templateID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Repos.Field.FindByTemplateAndFieldID(template.ID, input.FieldID); err == nil {
		return nil, ErrFieldExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fieldType := models.FieldType(input.FieldType)
	if fieldType == "" {
		fieldType = models.FieldTypeText
	}

	field := &models.Field{
		TemplateID:    template.ID,
		FieldID:       input.FieldID,
		Label:         input.Label,
		FieldType:     fieldType,
		OriginalValue: input.OriginalValue,
	}
	if err := s.Repos.Field.Create(field); err != nil {
		return nil, err
	}
	return field, nil
}

func (s *TemplateService) DeleteField(ownerID, fieldID uint) error {
	field, err := s.Repos.Field.FindByID(fieldID)
	if err != nil {
		return ErrFieldNotFound
	}
	if _, err := s.Get(ownerID, field.TemplateID); err != nil {
		return err
	}
	return s.Repos.Field.Delete(field.ID)
}
