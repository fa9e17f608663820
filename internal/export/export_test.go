package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

func sample() ([]domain.DtrEntry, domain.Summary) {
	entries := []domain.DtrEntry{
		{Date: "2025-04-08", Location: "Office", TimeIn: "08:00", TimeOut: "19:00", BreakMinutes: 60, Hours: domain.Buckets{Regular: 8, WeekdayOvertime: 2}},
		{Date: "2025-04-12", TimeIn: "08:00", TimeOut: "12:00", Hours: domain.Buckets{Saturday: 4}},
	}
	summary := domain.Summary{
		Period:     domain.PeriodOption{Key: "2025-04-01", Label: "Apr 1 - 15, 2025"},
		EntryCount: 2,
		Hours:      domain.Buckets{Regular: 8, WeekdayOvertime: 2, Saturday: 4},
		Pay:        domain.Buckets{Regular: 2400, WeekdayOvertime: 750, Saturday: 1560},
		HourlyRate: 300,
		GrossPay:   4710,
	}
	return entries, summary
}

func TestWriteCSV(t *testing.T) {
	entries, summary := sample()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries, summary); err != nil {
		t.Fatalf("意外错误: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("解析 CSV 失败: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("期望表头 + 2 条记录 + 合计，实际 %d 行", len(records))
	}
	if records[0][0] != "date" || records[0][len(records[0])-1] != "total_hours" {
		t.Errorf("表头错误: %v", records[0])
	}
	if records[1][len(records[1])-1] != "10" {
		t.Errorf("第一条记录合计应为 10，实际 %s", records[1][len(records[1])-1])
	}
	total := records[3]
	if total[0] != totalRowLabel || total[len(total)-1] != "14" {
		t.Errorf("合计行错误: %v", total)
	}
}

func TestWriteXLSX(t *testing.T) {
	entries, summary := sample()

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, entries, summary); err != nil {
		t.Fatalf("意外错误: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("打开 Excel 失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(entriesSheet)
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 3 || rows[1][0] != "2025-04-08" {
		t.Errorf("逐日记录错误: %v", rows)
	}

	label, _ := f.GetCellValue(summarySheet, "B1")
	if label != "Apr 1 - 15, 2025" {
		t.Errorf("汇总表周期错误: %s", label)
	}
	last, _ := f.GetRows(summarySheet)
	gross := last[len(last)-1]
	if gross[0] != "Gross Pay" || gross[2] != "4710" {
		t.Errorf("总薪资行错误: %v", gross)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(domain.AllPeriodsOption, "csv"); got != "dtr_all.csv" {
		t.Errorf("期望 dtr_all.csv，实际 %s", got)
	}
}
