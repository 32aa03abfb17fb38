package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/escola-hub/escola-api/internal/models"
	appErrors "github.com/escola-hub/escola-api/pkg/errors"
)

type mockClassRepo struct {
	items   map[int64]*models.Class
	nextID  int64
	listErr error
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{items: make(map[int64]*models.Class)}
}

func (m *mockClassRepo) List(ctx context.Context) ([]models.Class, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Class, 0, len(m.items))
	for _, class := range m.items {
		out = append(out, *class)
	}
	return out, nil
}

func (m *mockClassRepo) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	if class, ok := m.items[id]; ok {
		cp := *class
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassRepo) Create(ctx context.Context, class *models.Class) error {
	m.nextID++
	class.ID = m.nextID
	class.CreatedAt = time.Now()
	cp := *class
	m.items[class.ID] = &cp
	return nil
}

func (m *mockClassRepo) Update(ctx context.Context, class *models.Class) error {
	cp := *class
	m.items[class.ID] = &cp
	return nil
}

func (m *mockClassRepo) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func errStatus(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return appErrors.FromError(err).Status
}

func TestClassServiceCreate(t *testing.T) {
	repo := newMockClassRepo()
	svc := NewClassService(repo, validator.New(), zap.NewNop())

	class, err := svc.Create(context.Background(), CreateClassRequest{Name: "Turma A", Stage: "fundamental", Year: "5"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), class.ID)
	assert.False(t, class.CreatedAt.IsZero())

	second, err := svc.Create(context.Background(), CreateClassRequest{Name: "Turma B", Stage: "fundamental", Year: "3"})
	require.NoError(t, err)
	assert.NotEqual(t, class.ID, second.ID)
}

func TestClassServiceCreateMissingFields(t *testing.T) {
	svc := NewClassService(newMockClassRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateClassRequest{Name: "Turma A"})
	assert.Equal(t, http.StatusBadRequest, errStatus(t, err))
}

func TestClassServiceGetNotFound(t *testing.T) {
	svc := NewClassService(newMockClassRepo(), validator.New(), zap.NewNop())

	_, err := svc.Get(context.Background(), 99)
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}

func TestClassServiceUpdatePreservesOmittedFields(t *testing.T) {
	repo := newMockClassRepo()
	repo.items[1] = &models.Class{ID: 1, Name: "Turma A", Stage: "fundamental", Year: "5"}
	repo.nextID = 1
	svc := NewClassService(repo, validator.New(), zap.NewNop())

	name := "Turma A2"
	require.NoError(t, svc.Update(context.Background(), 1, UpdateClassRequest{Name: &name}))

	assert.Equal(t, "Turma A2", repo.items[1].Name)
	assert.Equal(t, "fundamental", repo.items[1].Stage)
	assert.Equal(t, "5", repo.items[1].Year)
}

func TestClassServiceUpdateNotFound(t *testing.T) {
	svc := NewClassService(newMockClassRepo(), validator.New(), zap.NewNop())

	name := "Turma Z"
	err := svc.Update(context.Background(), 42, UpdateClassRequest{Name: &name})
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}

func TestClassServiceDelete(t *testing.T) {
	repo := newMockClassRepo()
	repo.items[1] = &models.Class{ID: 1, Name: "Turma A", Stage: "fundamental", Year: "5"}
	svc := NewClassService(repo, validator.New(), zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.items)

	err := svc.Delete(context.Background(), 1)
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}
