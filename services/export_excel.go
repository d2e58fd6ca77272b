package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type sheetStyles struct {
	title, subtitle, header, cell, label, value int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}
	if s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	}); err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}
	// Column header: bold white text on the brand blue.
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#005187"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}
	if s.cell, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create cell style: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}
	if s.value, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	}); err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}
	return s, nil
}

// GenerateQuoteExcel renders the priced materials of a quote as a workbook.
func GenerateQuoteExcel(data QuoteExport) ([]byte, error) {
	if len(data.Lines) == 0 {
		return nil, ErrNoPricedMaterials
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quote"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	widths := map[string]float64{"A": 6, "B": 32, "C": 14, "D": 10, "E": 16, "F": 18}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	title := "Materials quote"
	if data.CompanyName != "" {
		title = data.CompanyName + " - " + title
	}
	if err := f.MergeCell(sheet, "A1", "F1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheet, "A1", "F1", styles.title)

	f.SetCellValue(sheet, "A2", "Ref: "+data.Reference)
	f.SetCellValue(sheet, "A3", "Date: "+data.GeneratedAt.Format("02 Jan 2006 15:04"))
	f.SetCellValue(sheet, "A4", fmt.Sprintf("Building area: %s m²", FormatQuantity(data.BuildingArea)))
	f.SetCellStyle(sheet, "A2", "A4", styles.subtitle)

	headers := []string{"#", "Material", "Quantity", "Unit", "Unit price", "Subtotal"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 6)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A6", "F6", styles.header)

	row := 7
	for i, l := range data.Lines {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+r, i+1)
		f.SetCellValue(sheet, "B"+r, sanitizeExcelCell(l.Name))
		f.SetCellValue(sheet, "C"+r, roundCents(l.Quantity))
		f.SetCellValue(sheet, "D"+r, sanitizeExcelCell(l.Unit))
		f.SetCellValue(sheet, "E"+r, roundCents(l.UnitPrice))
		f.SetCellValue(sheet, "F"+r, roundCents(l.Subtotal))
		f.SetCellStyle(sheet, "A"+r, "F"+r, styles.cell)
		row++
	}

	row++
	r := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "E"+r, "Total:")
	f.SetCellStyle(sheet, "E"+r, "E"+r, styles.label)
	f.SetCellValue(sheet, "F"+r, data.Total)
	f.SetCellStyle(sheet, "F"+r, "F"+r, styles.value)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateProjectExcel writes a Summary sheet plus one sheet per expense
// category.
func GenerateProjectExcel(data ProjectExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summary); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	// ── Summary ─────────────────────────────────────────────────────────
	f.SetColWidth(summary, "A", "A", 24)
	f.SetColWidth(summary, "B", "B", 40)
	f.SetCellValue(summary, "A1", sanitizeExcelCell(data.Name))
	f.SetCellStyle(summary, "A1", "A1", styles.title)

	facts := [][2]any{
		{"Address", sanitizeExcelCell(data.Address)},
		{"Start date", data.StartDate},
		{"Status", ProjectStatusLabel(data.Status)},
		{"General expenses", data.Totals.Expenses},
		{"Payroll", data.Totals.Payroll},
		{"Materials", data.Totals.Materials},
		{"Total spent", data.Totals.Spent},
		{"Estimated budget", data.Totals.Budget},
		{"Remaining budget", data.Totals.Remaining},
	}
	for i, fact := range facts {
		r := fmt.Sprintf("%d", i+3)
		f.SetCellValue(summary, "A"+r, fact[0])
		f.SetCellStyle(summary, "A"+r, "A"+r, styles.label)
		f.SetCellValue(summary, "B"+r, fact[1])
	}

	// ── Category sheets ─────────────────────────────────────────────────
	expenseRows := make([][]any, len(data.Expenses))
	for i, e := range data.Expenses {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02")
		}
		expenseRows[i] = []any{sanitizeExcelCell(e.Description), e.Amount, date}
	}
	if err := writeTableSheet(f, styles, "Expenses",
		[]string{"Description", "Amount", "Date"}, []float64{40, 16, 14},
		expenseRows, 1, data.Totals.Expenses); err != nil {
		return nil, err
	}

	payrollRows := make([][]any, len(data.Payroll))
	for i, p := range data.Payroll {
		payrollRows[i] = []any{sanitizeExcelCell(p.Week), sanitizeExcelCell(p.Worker), p.Salary, p.Payment, sanitizeExcelCell(p.Notes)}
	}
	if err := writeTableSheet(f, styles, "Payroll",
		[]string{"Week", "Worker", "Salary", "Payment", "Notes"}, []float64{12, 28, 14, 14, 36},
		payrollRows, 3, data.Totals.Payroll); err != nil {
		return nil, err
	}

	materialRows := make([][]any, len(data.Materials))
	for i, m := range data.Materials {
		materialRows[i] = []any{sanitizeExcelCell(m.Material), m.Quantity, m.Price, sanitizeExcelCell(m.Unit), sanitizeExcelCell(m.Details)}
	}
	if err := writeTableSheet(f, styles, "Materials",
		[]string{"Material", "Quantity", "Price", "Unit", "Details"}, []float64{28, 12, 14, 10, 36},
		materialRows, 2, data.Totals.Materials); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTableSheet adds a sheet with a header row, the data rows and a total
// row whose value sits under the column at totalCol (0-based, must be > 0 so
// the label fits on its left).
func writeTableSheet(f *excelize.File, styles sheetStyles, sheet string, headers []string, widths []float64, rows [][]any, totalCol int, total float64) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
		f.SetCellValue(sheet, col+"1", h)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, "A1", lastCol+"1", styles.header)

	for i, values := range rows {
		r := i + 2
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, r)
			f.SetCellValue(sheet, cell, v)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", r), fmt.Sprintf("%s%d", lastCol, r), styles.cell)
	}

	totalRow := len(rows) + 3
	labelCell, _ := excelize.CoordinatesToCellName(totalCol, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(totalCol+1, totalRow)
	f.SetCellValue(sheet, labelCell, "Total:")
	f.SetCellStyle(sheet, labelCell, labelCell, styles.label)
	f.SetCellValue(sheet, valueCell, total)
	f.SetCellStyle(sheet, valueCell, valueCell, styles.value)
	return nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
