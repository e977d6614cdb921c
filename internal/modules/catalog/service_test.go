package catalog

import (
	"context"
	"testing"

	"cottagesheets/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 10
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListAll(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) UpdateName(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func TestService_Create_TrimsName(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.Name == "Баня" && s.IsActive
	})).Return(nil)

	service := NewService(repo)

	svc, err := service.Create(context.Background(), "  Баня  ")

	assert.NoError(t, err)
	assert.Equal(t, "Баня", svc.Name)
	assert.Equal(t, int64(10), svc.ID)
}

func TestService_Create_EmptyName(t *testing.T) {
	service := NewService(new(MockServiceRepository))

	_, err := service.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestService_Rename_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("GetByID", mock.Anything, int64(4)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.Rename(context.Background(), 4, "Сауна")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_ToggleActive_Flips(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ID: 3, Name: "Баня", IsActive: true}, nil)
	repo.On("UpdateActive", mock.Anything, int64(3), false).Return(nil)

	service := NewService(repo)

	svc, err := service.ToggleActive(context.Background(), 3)

	assert.NoError(t, err)
	assert.False(t, svc.IsActive)
	repo.AssertExpectations(t)
}

func TestService_ActiveServices_Options(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("ListActive", mock.Anything).Return([]domain.Service{
		{ID: 1, Name: "Баня", IsActive: true},
		{ID: 2, Name: "Веники", IsActive: true},
	}, nil)

	service := NewService(repo)

	options, err := service.ActiveServices(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []ServiceOption{{ID: 1, Name: "Баня"}, {ID: 2, Name: "Веники"}}, options)
}
