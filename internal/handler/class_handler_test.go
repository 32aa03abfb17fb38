package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escola-hub/escola-api/internal/models"
	"github.com/escola-hub/escola-api/internal/service"
	appErrors "github.com/escola-hub/escola-api/pkg/errors"
)

type classServiceMock struct {
	listResp   []models.Class
	listErr    error
	getResp    *models.Class
	getErr     error
	createResp *models.Class
	createErr  error
	updateErr  error
	deleteErr  error
	lastID     int64
}

func (m *classServiceMock) List(ctx context.Context) ([]models.Class, error) {
	return m.listResp, m.listErr
}

func (m *classServiceMock) Get(ctx context.Context, id int64) (*models.Class, error) {
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *classServiceMock) Create(ctx context.Context, req service.CreateClassRequest) (*models.Class, error) {
	return m.createResp, m.createErr
}

func (m *classServiceMock) Update(ctx context.Context, id int64, req service.UpdateClassRequest) error {
	m.lastID = id
	return m.updateErr
}

func (m *classServiceMock) Delete(ctx context.Context, id int64) error {
	m.lastID = id
	return m.deleteErr
}

func newTestContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	return c, w
}

func TestClassHandlerList(t *testing.T) {
	mockSvc := &classServiceMock{listResp: []models.Class{{ID: 1, Name: "Turma A"}}}
	h := NewClassHandler(mockSvc)

	c, w := newTestContext(t, http.MethodGet, "/turmas", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []models.Class `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Turma A", envelope.Data[0].Name)
}

func TestClassHandlerGetInvalidID(t *testing.T) {
	h := NewClassHandler(&classServiceMock{})

	c, w := newTestContext(t, http.MethodGet, "/turmas/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassHandlerGetNotFound(t *testing.T) {
	mockSvc := &classServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "class not found")}
	h := NewClassHandler(mockSvc)

	c, w := newTestContext(t, http.MethodGet, "/turmas/9", nil)
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	h.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(9), mockSvc.lastID)
}

func TestClassHandlerCreate(t *testing.T) {
	mockSvc := &classServiceMock{createResp: &models.Class{ID: 1, Name: "Turma A", Stage: "fundamental", Year: "5"}}
	h := NewClassHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateClassRequest{Name: "Turma A", Stage: "fundamental", Year: "5"})
	c, w := newTestContext(t, http.MethodPost, "/turmas", payload)
	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var envelope struct {
		Data models.Class `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, int64(1), envelope.Data.ID)
}

func TestClassHandlerCreateMalformedBody(t *testing.T) {
	h := NewClassHandler(&classServiceMock{})

	c, w := newTestContext(t, http.MethodPost, "/turmas", []byte(`{"name":"Turma A"`))
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassHandlerUpdateAck(t *testing.T) {
	mockSvc := &classServiceMock{}
	h := NewClassHandler(mockSvc)

	payload := []byte(`{"name":"Turma A2"}`)
	c, w := newTestContext(t, http.MethodPut, "/turmas/3", payload)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "class updated", envelope.Message)
	assert.Equal(t, int64(3), mockSvc.lastID)
}

func TestClassHandlerDeleteAck(t *testing.T) {
	mockSvc := &classServiceMock{}
	h := NewClassHandler(mockSvc)

	c, w := newTestContext(t, http.MethodDelete, "/turmas/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	h.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), mockSvc.lastID)
}
