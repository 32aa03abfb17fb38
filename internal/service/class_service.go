package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/escola-hub/escola-api/internal/models"
	appErrors "github.com/escola-hub/escola-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
}

// CreateClassRequest captures creation payload.
type CreateClassRequest struct {
	Name  string `json:"name" validate:"required,max=130"`
	Stage string `json:"stage" validate:"required"`
	Year  string `json:"year" validate:"required"`
}

// UpdateClassRequest modifies class fields. Absent fields are preserved.
type UpdateClassRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=130"`
	Stage *string `json:"stage" validate:"omitempty,min=1"`
	Year  *string `json:"year" validate:"omitempty,min=1"`
}

// ClassService coordinates class operations.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validate, logger: logger}
}

// List returns all classes.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list classes failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Get returns a class by id.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		s.logger.Error("load class failed", zap.Int64("class_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return class, nil
}

// Create adds a new class.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class := &models.Class{
		Name:  strings.TrimSpace(req.Name),
		Stage: strings.TrimSpace(req.Stage),
		Year:  strings.TrimSpace(req.Year),
	}
	if err := s.repo.Create(ctx, class); err != nil {
		s.logger.Error("create class failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return class, nil
}

// Update overwrites the supplied class fields, leaving omitted ones untouched.
func (s *ClassService) Update(ctx context.Context, id int64, req UpdateClassRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		s.logger.Error("load class failed", zap.Int64("class_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	if req.Name != nil {
		class.Name = strings.TrimSpace(*req.Name)
	}
	if req.Stage != nil {
		class.Stage = strings.TrimSpace(*req.Stage)
	}
	if req.Year != nil {
		class.Year = strings.TrimSpace(*req.Year)
	}

	if err := s.repo.Update(ctx, class); err != nil {
		s.logger.Error("update class failed", zap.Int64("class_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	return nil
}

// Delete removes a class. The store cascades the delete to the students and
// the teacher that reference it.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		s.logger.Error("load class failed", zap.Int64("class_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete class failed", zap.Int64("class_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	return nil
}
