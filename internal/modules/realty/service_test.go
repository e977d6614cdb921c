package realty

import (
	"context"
	"testing"
	"time"

	"cottagesheets/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRealtyRepository struct {
	mock.Mock
}

func (m *MockRealtyRepository) GetByID(ctx context.Context, id int64) (*domain.Realty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Realty), args.Error(1)
}

func (m *MockRealtyRepository) ListAll(ctx context.Context) ([]domain.Realty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Realty), args.Error(1)
}

func (m *MockRealtyRepository) SyncNames(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

func (m *MockRealtyRepository) UpdateName(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockRealtyRepository) UpdateActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type MockBookingRenamer struct {
	mock.Mock
}

func (m *MockBookingRenamer) RenameApartment(ctx context.Context, oldTitle, newTitle string) (int64, error) {
	args := m.Called(ctx, oldTitle, newTitle)
	return args.Get(0).(int64), args.Error(1)
}

type MockTitleSource struct {
	mock.Mock
}

func (m *MockTitleSource) UniqueApartmentTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newTestService() (*Service, *MockRealtyRepository, *MockBookingRenamer, *MockTitleSource) {
	realty := new(MockRealtyRepository)
	bookings := new(MockBookingRenamer)
	titles := new(MockTitleSource)
	return NewService(realty, bookings, titles), realty, bookings, titles
}

func TestList_SyncsBeforeListing(t *testing.T) {
	svc, realty, _, titles := newTestService()

	titles.On("UniqueApartmentTitles", mock.Anything).Return([]string{"Кедровая 9", "Сосновая 2"}, nil)
	realty.On("SyncNames", mock.Anything, []string{"Кедровая 9", "Сосновая 2"}).Return(nil)
	realty.On("ListAll", mock.Anything).Return([]domain.Realty{
		{ID: 1, Name: "Кедровая 9", IsActive: true, CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	rows, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Кедровая 9", rows[0].Name)
	assert.True(t, rows[0].IsActive)
	realty.AssertExpectations(t)
}

func TestRename_CascadesToBookings(t *testing.T) {
	svc, realty, bookings, _ := newTestService()

	realty.On("GetByID", mock.Anything, int64(1)).Return(&domain.Realty{ID: 1, Name: "Кедровая 9"}, nil)
	realty.On("UpdateName", mock.Anything, int64(1), "Кедровая 9А").Return(nil)
	bookings.On("RenameApartment", mock.Anything, "Кедровая 9", "Кедровая 9А").Return(int64(4), nil)

	err := svc.Rename(context.Background(), 1, "Кедровая 9А")

	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestRename_SameNameSkipsCascade(t *testing.T) {
	svc, realty, bookings, _ := newTestService()

	realty.On("GetByID", mock.Anything, int64(1)).Return(&domain.Realty{ID: 1, Name: "Кедровая 9"}, nil)

	err := svc.Rename(context.Background(), 1, "Кедровая 9")

	assert.NoError(t, err)
	realty.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "RenameApartment", mock.Anything, mock.Anything, mock.Anything)
}

func TestRename_EmptyName(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.Rename(context.Background(), 1, "   ")

	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRename_NotFound(t *testing.T) {
	svc, realty, _, _ := newTestService()

	realty.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Rename(context.Background(), 99, "Новое")

	assert.ErrorIs(t, err, ErrRealtyNotFound)
}

func TestToggleActive_Flips(t *testing.T) {
	svc, realty, _, _ := newTestService()

	realty.On("GetByID", mock.Anything, int64(1)).Return(&domain.Realty{ID: 1, Name: "Кедровая 9", IsActive: true}, nil)
	realty.On("UpdateActive", mock.Anything, int64(1), false).Return(nil)

	active, err := svc.ToggleActive(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, active)
	realty.AssertExpectations(t)
}
