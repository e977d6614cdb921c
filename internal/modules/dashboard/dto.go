package dashboard

// ObjectData - показатели группы домов за месяц. Дубли дома
// складываются в одну группу по базовому адресу.
type ObjectData struct {
	Apartments []string `json:"apartments"`
	Income     float64  `json:"income"`
	Expenses   float64  `json:"expenses"`
	Profit     float64  `json:"profit"`
}

// MonthData - финансовые показатели одного месяца.
type MonthData struct {
	Month           int                    `json:"month"`
	Objects         map[string]*ObjectData `json:"objects"`
	TotalIncome     float64                `json:"total_income"`
	TotalExpenses   float64                `json:"total_expenses"`
	TotalProfit     float64                `json:"total_profit"`
	GeneralExpenses float64                `json:"general_expenses"`
}

// ApartmentSummary - годовая сводка по группе домов.
type ApartmentSummary struct {
	Apartments    []string `json:"apartments"`
	TotalIncome   float64  `json:"total_income"`
	TotalExpenses float64  `json:"total_expenses"`
	TotalProfit   float64  `json:"total_profit"`
}

// YearlyTotals - итоги за год.
type YearlyTotals struct {
	TotalIncome          float64 `json:"total_income"`
	TotalExpenses        float64 `json:"total_expenses"`
	TotalProfit          float64 `json:"total_profit"`
	TotalGeneralExpenses float64 `json:"total_general_expenses"`
}

// AnnualReport - полный годовой отчет для дашборда.
type AnnualReport struct {
	Year             int                          `json:"year"`
	FinancialData    map[string]*MonthData        `json:"financial_data"`
	ApartmentSummary map[string]*ApartmentSummary `json:"apartment_summary"`
	YearlyTotals     YearlyTotals                 `json:"yearly_totals"`
}
