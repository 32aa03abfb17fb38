package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escola-hub/escola-api/internal/models"
	"github.com/escola-hub/escola-api/internal/service"
	appErrors "github.com/escola-hub/escola-api/pkg/errors"
)

type teacherServiceMock struct {
	listResp   []models.Teacher
	listErr    error
	getResp    *models.Teacher
	getErr     error
	createResp *models.Teacher
	createErr  error
	updateErr  error
	deleteErr  error
}

func (m *teacherServiceMock) List(ctx context.Context) ([]models.Teacher, error) {
	return m.listResp, m.listErr
}

func (m *teacherServiceMock) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	return m.getResp, m.getErr
}

func (m *teacherServiceMock) Create(ctx context.Context, req service.CreateTeacherRequest) (*models.Teacher, error) {
	return m.createResp, m.createErr
}

func (m *teacherServiceMock) Update(ctx context.Context, id int64, req service.UpdateTeacherRequest) error {
	return m.updateErr
}

func (m *teacherServiceMock) Delete(ctx context.Context, id int64) error {
	return m.deleteErr
}

func TestTeacherHandlerCreate(t *testing.T) {
	mockSvc := &teacherServiceMock{
		createResp: &models.Teacher{ID: 1, Name: "Ana", Email: "ana@x.com", Phone: "118888", ClassID: 1},
	}
	h := NewTeacherHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateTeacherRequest{
		Name: "Ana", Email: "ana@x.com", Phone: "118888", ClassID: 1,
	})
	c, w := newTestContext(t, http.MethodPost, "/professores", payload)
	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var envelope struct {
		Data models.Teacher `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, int64(1), envelope.Data.ClassID)
}

func TestTeacherHandlerCreateClassTaken(t *testing.T) {
	mockSvc := &teacherServiceMock{
		createErr: appErrors.Clone(appErrors.ErrConflict, "class already has an assigned teacher"),
	}
	h := NewTeacherHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateTeacherRequest{
		Name: "Bia", Email: "bia@x.com", Phone: "117777", ClassID: 1,
	})
	c, w := newTestContext(t, http.MethodPost, "/professores", payload)
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
