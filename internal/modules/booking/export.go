package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Бронирования"

const (
	borderThin  = 1
	borderThick = 5
)

const (
	fillGray  = "F5F5F5"
	fillRed   = "FFCCCC"
	fillGreen = "CCFFCC"
)

var exportHeaders = []string{
	"Адрес", "Статус дома",
	"ФИО", "Телефон", "Комментарий",
	"ФИО", "Телефон", "Дата выселения", "Кол-во дней", "Общая сумма",
	"Предоплата", "Доплата", "Доп. услуги", "Комментарий",
	"Комментарии по оплате и проживанию в день заселения",
}

var exportWidths = []float64{25, 15, 20, 18, 25, 15, 15, 15, 12, 15, 15, 15, 15, 35, 35}

// dataStyleKey описывает оформление ячейки данных: жирные границы вокруг
// группы дублей, жирная левая граница перед блоками и жирный шрифт сумм.
type dataStyleKey struct {
	topThick    bool
	bottomThick bool
	leftThick   bool
	bold        bool
}

type exportStyles struct {
	f    *excelize.File
	data map[dataStyleKey]int
}

func newExportStyles(f *excelize.File) *exportStyles {
	return &exportStyles{f: f, data: make(map[dataStyleKey]int)}
}

func borderWeight(thick bool) int {
	if thick {
		return borderThick
	}
	return borderThin
}

func (st *exportStyles) header(fill string, thickLeft, thickBottom bool) (int, error) {
	return st.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: borderWeight(thickLeft)},
			{Type: "right", Color: "000000", Style: borderThin},
			{Type: "top", Color: "000000", Style: borderThin},
			{Type: "bottom", Color: "000000", Style: borderWeight(thickBottom)},
		},
	})
}

func (st *exportStyles) cell(key dataStyleKey) (int, error) {
	if id, ok := st.data[key]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: borderWeight(key.leftThick)},
			{Type: "right", Color: "000000", Style: borderThin},
			{Type: "top", Color: "000000", Style: borderWeight(key.topThick)},
			{Type: "bottom", Color: "000000", Style: borderWeight(key.bottomThick)},
		},
	}
	if key.bold {
		style.Font = &excelize.Font{Bold: true}
	}

	id, err := st.f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	st.data[key] = id
	return id, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// BuildExport собирает книгу Excel с шахматкой. filterLabel - исходная строка
// фильтра из запроса, она попадает в шапку и в имя файла.
func (s *Service) BuildExport(ctx context.Context, filterDate *time.Time, filterLabel string) (*excelize.File, string, error) {
	items, err := s.bookings.ListForGrouping(ctx, filterDate)
	if err != nil {
		return nil, "", err
	}
	rows := groupBookings(items)

	totals, err := s.bookingServices.SumByBookingIDs(ctx, collectBookingIDs(rows))
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", err
	}
	st := newExportStyles(f)

	if err := writeExportHeader(f, st, filterLabel); err != nil {
		return nil, "", err
	}
	if err := writeExportRows(f, st, rows, totals); err != nil {
		return nil, "", err
	}

	for i, width := range exportWidths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetColWidth(exportSheet, name, name, width); err != nil {
			return nil, "", err
		}
	}

	label := "all"
	if filterDate != nil {
		label = filterDate.Format("2006-01-02")
	}
	filename := fmt.Sprintf("bookings_%s_%s.xlsx", label, time.Now().Format("20060102_150405"))

	log.Info().Int("rows", len(rows)).Str("file", filename).Msg("bookings exported to excel")
	return f, filename, nil
}

// writeExportHeader рисует две строки шапки: группы колонок и названия полей.
func writeExportHeader(f *excelize.File, st *exportStyles, filterLabel string) error {
	grayPlain, err := st.header(fillGray, false, false)
	if err != nil {
		return err
	}
	grayLeft, err := st.header(fillGray, true, false)
	if err != nil {
		return err
	}

	dateHeader := filterLabel
	if dateHeader == "" {
		dateHeader = "Все даты"
	}

	merges := []struct {
		from, to string
		value    string
		style    int
	}{
		{"A1", "B1", dateHeader, grayPlain},
		{"C1", "E1", "Выселение", grayLeft},
		{"F1", "O1", "Заселение", grayLeft},
	}
	for _, m := range merges {
		if err := f.MergeCell(exportSheet, m.from, m.to); err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, m.from, m.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(exportSheet, m.from, m.to, m.style); err != nil {
			return err
		}
	}

	for i, header := range exportHeaders {
		col := i + 1

		var fill string
		switch {
		case col <= 2:
			fill = fillGray
		case col <= 5:
			fill = fillRed
		default:
			fill = fillGreen
		}
		thickLeft := col == 3 || col == 6

		styleID, err := st.header(fill, thickLeft, true)
		if err != nil {
			return err
		}

		cell := cellName(col, 2)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, styleID); err != nil {
			return err
		}
	}
	return nil
}

// writeExportRows выводит строки шахматки начиная с третьей строки листа.
// Суммы здесь валовые, как присылает календарь, без вычета комиссии.
func writeExportRows(f *excelize.File, st *exportStyles, rows []*groupedRow, servicesTotals map[int64]float64) error {
	for i, row := range rows {
		rowNum := i + 3

		var statusText string
		switch {
		case row.checkout != nil && row.checkin != nil:
			statusText = "Выс/Зас"
		case row.checkout != nil:
			statusText = "Выселение"
		case row.checkin != nil:
			statusText = "Заселение"
		}

		var checkoutFIO, checkoutPhone, checkoutNotes string
		if row.checkout != nil {
			checkoutFIO = row.checkout.ClientFIO
			checkoutPhone = row.checkout.ClientPhone
			checkoutNotes = row.checkout.Notes
		}

		var checkinFIO, checkinPhone, checkinEndDate, checkinNotes, checkinDayComments string
		var checkinNights interface{} = ""
		var amount, prepayment, servicesTotal float64
		if c := row.checkin; c != nil {
			checkinFIO = c.ClientFIO
			checkinPhone = c.ClientPhone
			checkinEndDate = c.EndDate.Format("02.01.2006")
			checkinNotes = c.Notes
			checkinDayComments = c.CheckinDayComments
			if c.NumberOfNights != nil {
				checkinNights = *c.NumberOfNights
			}
			if c.Amount != nil {
				amount = *c.Amount
			}
			if c.Prepayment != nil {
				prepayment = *c.Prepayment
			}
			servicesTotal = servicesTotals[c.ID]
		}

		values := []interface{}{
			strings.ToUpper(row.address),
			statusText,
			checkoutFIO,
			checkoutPhone,
			checkoutNotes,
			checkinFIO,
			checkinPhone,
			checkinEndDate,
			checkinNights,
			amount,
			prepayment,
			amount - prepayment,
			servicesTotal,
			checkinNotes,
			checkinDayComments,
		}

		for j, value := range values {
			col := j + 1
			key := dataStyleKey{
				topThick:    row.hasDuplicate && row.isFirstInGroup,
				bottomThick: row.hasDuplicate && row.isLastInGroup,
				leftThick:   col == 3 || col == 6,
				bold:        col == 1 || col == 10 || col == 12,
			}
			styleID, err := st.cell(key)
			if err != nil {
				return err
			}

			cell := cellName(col, rowNum)
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return err
			}
			if err := f.SetCellStyle(exportSheet, cell, cell, styleID); err != nil {
				return err
			}
		}
	}
	return nil
}
