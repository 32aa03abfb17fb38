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

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type classLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Class, error)
}

// CreateStudentRequest represents payload for enrolling students.
type CreateStudentRequest struct {
	Name          string `json:"name" validate:"required,max=130"`
	GuardianEmail string `json:"guardianEmail" validate:"required,email"`
	GuardianPhone string `json:"guardianPhone" validate:"required"`
	ClassID       int64  `json:"classId" validate:"required"`
}

// UpdateStudentRequest represents payload for updating students. Absent
// fields are preserved.
type UpdateStudentRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=130"`
	GuardianEmail *string `json:"guardianEmail" validate:"omitempty,email"`
	GuardianPhone *string `json:"guardianPhone" validate:"omitempty,min=1"`
	ClassID       *int64  `json:"classId" validate:"omitempty,gt=0"`
}

// StudentService orchestrates student operations.
type StudentService struct {
	repo      studentRepository
	classes   classLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, classes classLookup, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, classes: classes, validator: validate, logger: logger}
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		s.logger.Error("load student failed", zap.Int64("student_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create enrolls a student after confirming the referenced class exists.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	if err := s.ensureClassExists(ctx, req.ClassID); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:          strings.TrimSpace(req.Name),
		GuardianEmail: strings.TrimSpace(req.GuardianEmail),
		GuardianPhone: strings.TrimSpace(req.GuardianPhone),
		ClassID:       req.ClassID,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return student, nil
}

// Update overwrites the supplied student fields. A class change is validated
// against the class table the same way creation is.
func (s *StudentService) Update(ctx context.Context, id int64, req UpdateStudentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		s.logger.Error("load student failed", zap.Int64("student_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	if req.ClassID != nil && *req.ClassID != student.ClassID {
		if err := s.ensureClassExists(ctx, *req.ClassID); err != nil {
			return err
		}
		student.ClassID = *req.ClassID
	}
	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.GuardianEmail != nil {
		student.GuardianEmail = strings.TrimSpace(*req.GuardianEmail)
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = strings.TrimSpace(*req.GuardianPhone)
	}

	if err := s.repo.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.Int64("student_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return nil
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		s.logger.Error("load student failed", zap.Int64("student_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete student failed", zap.Int64("student_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}

func (s *StudentService) ensureClassExists(ctx context.Context, classID int64) error {
	if _, err := s.classes.FindByID(ctx, classID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		s.logger.Error("validate class failed", zap.Int64("class_id", classID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate class")
	}
	return nil
}
