package export

import (
	"fmt"
	"io"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	entriesSheet = "Entries"
	summarySheet = "Summary"
)

// WriteXLSX 生成两个工作表：逐日记录和周期汇总
func WriteXLSX(w io.Writer, entries []domain.DtrEntry, summary domain.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", entriesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := writeEntriesSheet(f, entries, headerStyle); err != nil {
		return err
	}
	if err := writeSummarySheet(f, summary, headerStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("导出 Excel 失败: %w", err)
	}
	return nil
}

func writeEntriesSheet(f *excelize.File, entries []domain.DtrEntry, headerStyle int) error {
	header := []any{"Date", "Location", "Time In", "Time Out", "Break (min)"}
	for _, c := range domain.Categories {
		header = append(header, c.Label())
	}
	header = append(header, "Total Hours")

	if err := f.SetSheetRow(entriesSheet, "A1", &header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(entriesSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	f.SetColWidth(entriesSheet, "A", "E", 12)
	f.SetColWidth(entriesSheet, "F", lastCol, 16)

	for i, e := range entries {
		row := []any{e.Date, e.Location, e.TimeIn, e.TimeOut, e.BreakMinutes}
		for _, c := range domain.Categories {
			row = append(row, e.Hours.Get(c))
		}
		row = append(row, e.Hours.Round(2).Total())

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(entriesSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary domain.Summary, headerStyle int) error {
	rows := [][]any{
		{"Pay Period", summary.Period.Label},
		{"Entries", summary.EntryCount},
		{"Hourly Rate", summary.HourlyRate},
		{},
		{"Category", "Hours", "Pay"},
	}
	for _, c := range domain.Categories {
		rows = append(rows, []any{c.Label(), summary.Hours.Get(c), summary.Pay.Get(c)})
	}
	rows = append(rows,
		[]any{"Admin Allowance", "", summary.AllowancePay},
		[]any{},
		[]any{"Total Regular Hours", summary.TotalRegularHours},
		[]any{"Total Overtime Hours", summary.TotalOvertimeHours},
		[]any{"Gross Pay", "", summary.GrossPay},
	)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	f.SetColWidth(summarySheet, "A", "A", 26)
	f.SetColWidth(summarySheet, "B", "C", 16)
	return f.SetCellStyle(summarySheet, "A5", "C5", headerStyle)
}

// FileName 例如 dtr_2025-04-01.xlsx，全部记录为 dtr_all.xlsx
func FileName(period domain.PeriodOption, ext string) string {
	return fmt.Sprintf("dtr_%s.%s", period.Key, ext)
}
