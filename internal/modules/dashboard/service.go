package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cottagesheets/internal/domain"

	"github.com/rs/zerolog/log"
)

// Service строит годовой финансовый отчет: доходы, расходы и прибыль
// по месяцам и группам домов.
type Service struct {
	bookings BookingSourceInterface
	payments PaymentSourceInterface
	expenses ExpenseSourceInterface
	now      func() time.Time
}

func NewService(bookings BookingSourceInterface, payments PaymentSourceInterface, expenses ExpenseSourceInterface) *Service {
	return &Service{
		bookings: bookings,
		payments: payments,
		expenses: expenses,
		now:      time.Now,
	}
}

// ClampYear приводит год к допустимому окну вокруг текущего.
// Нулевой год означает текущий.
func (s *Service) ClampYear(year int) int {
	current := s.now().Year()
	switch {
	case year == 0:
		return current
	case year < current-5:
		return current - 5
	case year > current+5:
		return current + 5
	}
	return year
}

// промежуточные суммы одного дома за месяц
type apartmentTotals struct {
	income  float64
	expense float64
}

// Annual собирает отчет за год: 12 месяцев, группы по базовому адресу,
// годовая сводка и итоги.
func (s *Service) Annual(ctx context.Context, year int) (*AnnualReport, error) {
	started := time.Now()

	report := &AnnualReport{
		Year:             year,
		FinancialData:    make(map[string]*MonthData, 12),
		ApartmentSummary: make(map[string]*ApartmentSummary),
	}

	for month := time.January; month <= time.December; month++ {
		monthData, err := s.monthly(ctx, year, month)
		if err != nil {
			return nil, err
		}

		key := fmt.Sprintf("%d-%02d", year, int(month))
		report.FinancialData[key] = monthData

		report.YearlyTotals.TotalIncome += monthData.TotalIncome
		report.YearlyTotals.TotalExpenses += monthData.TotalExpenses
		report.YearlyTotals.TotalProfit += monthData.TotalProfit
		report.YearlyTotals.TotalGeneralExpenses += monthData.GeneralExpenses

		for base, obj := range monthData.Objects {
			summary, ok := report.ApartmentSummary[base]
			if !ok {
				summary = &ApartmentSummary{}
				report.ApartmentSummary[base] = summary
			}
			for _, title := range obj.Apartments {
				if !contains(summary.Apartments, title) {
					summary.Apartments = append(summary.Apartments, title)
				}
			}
			summary.TotalIncome += obj.Income
			summary.TotalExpenses += obj.Expenses
			summary.TotalProfit += obj.Profit
		}
	}

	log.Info().Int("year", year).Dur("took", time.Since(started)).Msg("annual report built")
	return report, nil
}

func (s *Service) monthly(ctx context.Context, year int, month time.Month) (*MonthData, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	bookings, err := s.bookings.ListByBeginDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByReceiptDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	data := &MonthData{
		Month:   int(month),
		Objects: make(map[string]*ObjectData),
	}

	byTitle := make(map[string]*apartmentTotals)
	totalsFor := func(title string) *apartmentTotals {
		t, ok := byTitle[title]
		if !ok {
			t = &apartmentTotals{}
			byTitle[title] = t
		}
		return t
	}

	for _, b := range bookings {
		title := strings.TrimSpace(b.ApartmentTitle)
		if title == "" || b.Amount == nil {
			continue
		}
		totalsFor(title).income += *b.Amount
	}
	for _, p := range payments {
		title := strings.TrimSpace(p.ApartmentTitle)
		if title == "" {
			continue
		}
		totalsFor(title).income += p.Amount
	}
	for _, e := range expenses {
		title := strings.TrimSpace(e.ApartmentTitle)
		if title == "" {
			// Расходы без объекта - общехозяйственные.
			data.GeneralExpenses += e.Amount
			continue
		}
		totalsFor(title).expense += e.Amount
	}

	titles := make([]string, 0, len(byTitle))
	for title := range byTitle {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	for _, title := range titles {
		t := byTitle[title]
		if t.income == 0 && t.expense == 0 {
			continue
		}
		profit := t.income - t.expense

		base := domain.BaseAddress(title)
		obj, ok := data.Objects[base]
		if !ok {
			obj = &ObjectData{}
			data.Objects[base] = obj
		}
		if !contains(obj.Apartments, title) {
			obj.Apartments = append(obj.Apartments, title)
		}
		obj.Income += t.income
		obj.Expenses += t.expense
		obj.Profit += profit

		data.TotalIncome += t.income
		data.TotalExpenses += t.expense
		data.TotalProfit += profit
	}

	return data, nil
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
