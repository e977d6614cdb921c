package expense

import (
	"context"
	"testing"
	"time"

	"cottagesheets/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 13
	}
	return args.Error(0)
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) List(ctx context.Context, from, to *time.Time, apartmentTitle string) ([]domain.Expense, error) {
	args := m.Called(ctx, from, to, apartmentTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
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

func fptr(v float64) *float64 { return &v }

func sptr(v string) *string { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPage_SumsFilteredExpenses(t *testing.T) {
	expenses := new(MockExpenseRepository)
	titles := new(MockTitleSource)
	svc := NewService(expenses, titles)

	expenses.On("List", mock.Anything, (*time.Time)(nil), (*time.Time)(nil), "Кедровая 9").Return([]domain.Expense{
		{ID: 1, ApartmentTitle: "Кедровая 9", ExpenseDate: date(2025, 6, 10), Amount: 1200, Category: "Уборка"},
		{ID: 2, ApartmentTitle: "Кедровая 9", ExpenseDate: date(2025, 6, 12), Amount: 800, Category: "Ремонт"},
	}, nil)
	titles.On("UniqueApartmentTitles", mock.Anything).Return([]string{"Кедровая 9", "Сосновая 2"}, nil)

	data, err := svc.Page(context.Background(), Filters{ApartmentTitle: "Кедровая 9"})

	assert.NoError(t, err)
	assert.Len(t, data.Expenses, 2)
	assert.Equal(t, 2000.0, data.TotalExpenses)
	assert.Equal(t, "2025-06-10", data.Expenses[0].ExpenseDate)
	assert.Equal(t, []string{"Кедровая 9", "Сосновая 2"}, data.UniqueApartments)
}

func TestCreate_GeneralExpenseWithoutApartment(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := NewService(expenses, new(MockTitleSource))

	expenses.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.ApartmentTitle == "" && e.Amount == 500 && e.Category == "Канцелярия"
	})).Return(nil)

	e, err := svc.Create(context.Background(), CreateExpenseRequest{
		ApartmentTitle: "   ",
		ExpenseDate:    "2025-06-10",
		Amount:         fptr(500),
		Category:       " Канцелярия ",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(13), e.ID)
	expenses.AssertExpectations(t)
}

func TestCreate_BadDate(t *testing.T) {
	svc := NewService(new(MockExpenseRepository), new(MockTitleSource))

	_, err := svc.Create(context.Background(), CreateExpenseRequest{
		ExpenseDate: "10.06.2025",
		Amount:      fptr(500),
	})

	assert.ErrorIs(t, err, ErrBadDate)
}

func TestUpdate_PartialFields(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := NewService(expenses, new(MockTitleSource))

	expenses.On("UpdateFields", mock.Anything, int64(3), mock.MatchedBy(func(fields map[string]any) bool {
		return len(fields) == 2 && fields["amount"] == 950.0 && fields["comment"] == "пересчет"
	})).Return(nil)

	err := svc.Update(context.Background(), 3, UpdateExpenseRequest{
		Amount:  fptr(950),
		Comment: sptr(" пересчет "),
	})

	assert.NoError(t, err)
	expenses.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := NewService(expenses, new(MockTitleSource))

	expenses.On("UpdateFields", mock.Anything, int64(99), mock.Anything).Return(gorm.ErrRecordNotFound)

	err := svc.Update(context.Background(), 99, UpdateExpenseRequest{Amount: fptr(100)})

	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := NewService(expenses, new(MockTitleSource))

	expenses.On("Delete", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrExpenseNotFound)
}
