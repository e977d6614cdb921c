package dashboard

import (
	"context"
	"time"

	"cottagesheets/internal/domain"
)

// BookingSourceInterface - бронирования с заездом в периоде.
type BookingSourceInterface interface {
	ListByBeginDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// PaymentSourceInterface - поступления за период.
type PaymentSourceInterface interface {
	ListByReceiptDateRange(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
}

// ExpenseSourceInterface - расходы за период.
type ExpenseSourceInterface interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error)
}
