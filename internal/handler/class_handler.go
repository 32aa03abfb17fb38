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

type classService interface {
	List(ctx context.Context) ([]models.Class, error)
	Get(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, req service.CreateClassRequest) (*models.Class, error)
	Update(ctx context.Context, id int64, req service.UpdateClassRequest) error
	Delete(ctx context.Context, id int64) error
}

// ClassHandler exposes class CRUD endpoints.
type ClassHandler struct {
	service classService
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc classService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List classes
// @Tags Turmas
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /turmas [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// Get godoc
// @Summary Get class
// @Tags Turmas
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /turmas/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	class, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// Create godoc
// @Summary Create class
// @Tags Turmas
// @Accept json
// @Produce json
// @Param payload body service.CreateClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Router /turmas [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}

// Update godoc
// @Summary Update class
// @Tags Turmas
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param payload body service.UpdateClassRequest true "Class payload"
// @Success 200 {object} response.Envelope
// @Router /turmas/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "class updated")
}

// Delete godoc
// @Summary Delete class
// @Tags Turmas
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /turmas/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "class deleted")
}
