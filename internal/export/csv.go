package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

const totalRowLabel = "TOTAL"

type entryRow struct {
	Date                    string  `csv:"date"`
	Location                string  `csv:"location"`
	TimeIn                  string  `csv:"time_in"`
	TimeOut                 string  `csv:"time_out"`
	BreakMinutes            string  `csv:"break_minutes"`
	Regular                 float64 `csv:"regular"`
	WeekdayOvertime         float64 `csv:"weekday_overtime"`
	Saturday                float64 `csv:"saturday"`
	Sunday                  float64 `csv:"sunday"`
	RegularHoliday          float64 `csv:"regular_holiday"`
	SpecialHoliday          float64 `csv:"special_holiday"`
	RegularHolidayOnRestDay float64 `csv:"regular_holiday_rest_day"`
	SpecialHolidayOnRestDay float64 `csv:"special_holiday_rest_day"`
	TotalHours              float64 `csv:"total_hours"`
}

func newEntryRow(b domain.Buckets) entryRow {
	return entryRow{
		Regular:                 b.Regular,
		WeekdayOvertime:         b.WeekdayOvertime,
		Saturday:                b.Saturday,
		Sunday:                  b.Sunday,
		RegularHoliday:          b.RegularHoliday,
		SpecialHoliday:          b.SpecialHoliday,
		RegularHolidayOnRestDay: b.RegularHolidayRestDay,
		SpecialHolidayOnRestDay: b.SpecialHolidayRestDay,
		TotalHours:              b.Round(2).Total(),
	}
}

// WriteCSV 每条记录一行，最后一行是周期内各类别工时合计
func WriteCSV(w io.Writer, entries []domain.DtrEntry, summary domain.Summary) error {
	rows := make([]entryRow, 0, len(entries)+1)
	for _, e := range entries {
		row := newEntryRow(e.Hours)
		row.Date = e.Date
		row.Location = e.Location
		row.TimeIn = e.TimeIn
		row.TimeOut = e.TimeOut
		row.BreakMinutes = fmt.Sprint(e.BreakMinutes)
		rows = append(rows, row)
	}

	total := newEntryRow(summary.Hours)
	total.Date = totalRowLabel
	rows = append(rows, total)

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("导出 CSV 失败: %w", err)
	}
	return nil
}
