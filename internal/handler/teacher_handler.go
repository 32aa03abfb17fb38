package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escola-hub/escola-api/internal/models"
	"github.com/escola-hub/escola-api/internal/service"
	appErrors "github.com/escola-hub/escola-api/pkg/errors"
	"github.com/escola-hub/escola-api/pkg/response"
)

type teacherService interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Get(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, req service.CreateTeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, id int64, req service.UpdateTeacherRequest) error
	Delete(ctx context.Context, id int64) error
}

// TeacherHandler exposes teacher CRUD endpoints.
type TeacherHandler struct {
	service teacherService
}

// NewTeacherHandler constructs a teacher handler.
func NewTeacherHandler(svc teacherService) *TeacherHandler {
	return &TeacherHandler{service: svc}
}

// List godoc
// @Summary List teachers
// @Tags Professores
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /professores [get]
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// Get godoc
// @Summary Get teacher
// @Tags Professores
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /professores/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	teacher, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Create godoc
// @Summary Create teacher
// @Tags Professores
// @Accept json
// @Produce json
// @Param payload body service.CreateTeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Router /professores [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req service.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher)
}

// Update godoc
// @Summary Update teacher
// @Tags Professores
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param payload body service.UpdateTeacherRequest true "Teacher payload"
// @Success 200 {object} response.Envelope
// @Router /professores/{id} [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "teacher updated")
}

// Delete godoc
// @Summary Delete teacher
// @Tags Professores
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /professores/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "teacher deleted")
}
