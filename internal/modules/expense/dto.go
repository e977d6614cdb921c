package expense

// CreateExpenseRequest - форма нового расхода.
// Пустой объект означает общехозяйственный расход без привязки к дому.
type CreateExpenseRequest struct {
	ApartmentTitle string   `json:"apartment_title"`
	ExpenseDate    string   `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Amount         *float64 `json:"amount" validate:"required"`
	Category       string   `json:"category"`
	Comment        string   `json:"comment"`
}

// UpdateExpenseRequest - частичное обновление: меняются только переданные поля.
type UpdateExpenseRequest struct {
	ApartmentTitle *string  `json:"apartment_title"`
	ExpenseDate    *string  `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
	Amount         *float64 `json:"amount"`
	Category       *string  `json:"category"`
	Comment        *string  `json:"comment"`
}

// ExpenseRow - строка списка расходов.
type ExpenseRow struct {
	ID             int64   `json:"id"`
	ApartmentTitle string  `json:"apartment_title"`
	ExpenseDate    string  `json:"expense_date"`
	Amount         float64 `json:"amount"`
	Category       string  `json:"category"`
	Comment        string  `json:"comment"`
}

// PageData - контекст страницы расходов.
type PageData struct {
	Expenses         []ExpenseRow
	UniqueApartments []string
	TotalExpenses    float64
}
