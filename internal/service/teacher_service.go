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

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	ExistsByClassID(ctx context.Context, classID int64, excludeID int64) (bool, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// CreateTeacherRequest represents payload for creating teachers.
type CreateTeacherRequest struct {
	Name    string `json:"name" validate:"required,max=130"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	ClassID int64  `json:"classId" validate:"required"`
}

// UpdateTeacherRequest represents payload for updating teachers. Absent
// fields are preserved.
type UpdateTeacherRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=130"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,min=1"`
	ClassID *int64  `json:"classId" validate:"omitempty,gt=0"`
}

// TeacherService orchestrates teacher operations.
type TeacherService struct {
	repo      teacherRepository
	classes   classLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, classes classLookup, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, classes: classes, validator: validate, logger: logger}
}

// List returns all teachers.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		s.logger.Error("load teacher failed", zap.Int64("teacher_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}

// Create registers a teacher after confirming the referenced class exists and
// has no teacher assigned yet.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	if err := s.ensureClassAssignable(ctx, req.ClassID, 0); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		ClassID: req.ClassID,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		s.logger.Error("create teacher failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return teacher, nil
}

// Update overwrites the supplied teacher fields. A class change is validated
// for existence and for the one-teacher-per-class rule.
func (s *TeacherService) Update(ctx context.Context, id int64, req UpdateTeacherRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		s.logger.Error("load teacher failed", zap.Int64("teacher_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	if req.ClassID != nil && *req.ClassID != teacher.ClassID {
		if err := s.ensureClassAssignable(ctx, *req.ClassID, id); err != nil {
			return err
		}
		teacher.ClassID = *req.ClassID
	}
	if req.Name != nil {
		teacher.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		teacher.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		teacher.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := s.repo.Update(ctx, teacher); err != nil {
		s.logger.Error("update teacher failed", zap.Int64("teacher_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return nil
}

// Delete removes a teacher.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		s.logger.Error("load teacher failed", zap.Int64("teacher_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete teacher failed", zap.Int64("teacher_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	return nil
}

func (s *TeacherService) ensureClassAssignable(ctx context.Context, classID int64, excludeTeacherID int64) error {
	if _, err := s.classes.FindByID(ctx, classID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		s.logger.Error("validate class failed", zap.Int64("class_id", classID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate class")
	}

	taken, err := s.repo.ExistsByClassID(ctx, classID, excludeTeacherID)
	if err != nil {
		s.logger.Error("check class teacher failed", zap.Int64("class_id", classID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check class teacher")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrConflict, "class already has an assigned teacher")
	}
	return nil
}
