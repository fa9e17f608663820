package payroll

import (
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

func entry(t *testing.T, date, location, in, out string, brk int, kind domain.HolidayKind) domain.DtrEntry {
	t.Helper()
	b, err := Classify(span(date, in, out, brk), location, kind)
	if err != nil {
		t.Fatalf("分类失败: %v", err)
	}
	return domain.DtrEntry{Date: date, Location: location, TimeIn: in, TimeOut: out, BreakMinutes: brk, Hours: b}
}

func TestSummarize_EndToEnd(t *testing.T) {
	e := entry(t, tuesday, "Office", "09:00", "18:00", 60, domain.HolidayNone)
	if e.Hours.Regular != 8 || e.Hours.Total() != 8 {
		t.Fatalf("期望 8 小时正常工时，实际 %+v", e.Hours)
	}

	s := Summarize([]domain.DtrEntry{e}, domain.PaySettings{MonthlySalary: 26000, AdminAllowance: 1000})

	checks := []struct {
		name      string
		got, want float64
	}{
		{"hourlyRate", s.HourlyRate, 149.43},
		{"regularPay", s.Pay.Regular, 1195.40},
		{"allowancePay", s.AllowancePay, 38.46},
		{"grossPay", s.GrossPay, 1233.86},
		{"totalRegularHours", s.TotalRegularHours, 8},
		{"totalOvertimeHours", s.TotalOvertimeHours, 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: 期望 %v，实际 %v", c.name, c.want, c.got)
		}
	}
	if s.EntryCount != 1 {
		t.Errorf("期望 1 条记录，实际 %d", s.EntryCount)
	}
}

func TestSummarize_Premiums(t *testing.T) {
	// 时薪 = 52200 * 12 / 261 / 8 = 300
	settings := domain.PaySettings{MonthlySalary: 52200}
	entries := []domain.DtrEntry{
		// 8 + 2 OT
		entry(t, tuesday, "Office", "08:00", "19:00", 60, domain.HolidayNone),
		// 4 周六
		entry(t, saturday, "", "08:00", "12:00", 0, domain.HolidayNone),
		// 4 周日
		entry(t, sunday, "", "08:00", "12:00", 0, domain.HolidayNone),
		// 2 法定
		entry(t, "2025-04-09", "", "08:00", "10:00", 0, domain.HolidayRegular),
		// 2 特别
		entry(t, "2025-04-10", "", "08:00", "10:00", 0, domain.HolidaySpecial),
		// 1 法定+休息日
		entry(t, "2025-04-05", "", "08:00", "09:00", 0, domain.HolidayRegular),
		// 1 特别+休息日
		entry(t, "2025-04-06", "", "08:00", "09:00", 0, domain.HolidaySpecial),
	}

	s := Summarize(entries, settings)
	if s.HourlyRate != 300 {
		t.Fatalf("期望时薪 300，实际 %v", s.HourlyRate)
	}

	want := domain.Buckets{
		Regular:               2400,
		WeekdayOvertime:       750,
		Saturday:              1560,
		Sunday:                1800,
		RegularHoliday:        1200,
		SpecialHoliday:        780,
		RegularHolidayRestDay: 780,
		SpecialHolidayRestDay: 507,
	}
	if s.Pay != want {
		t.Errorf("各类别金额\n期望 %+v\n实际 %+v", want, s.Pay)
	}
	if s.TotalOvertimeHours != 16 {
		t.Errorf("期望加班等效工时 16，实际 %v", s.TotalOvertimeHours)
	}
	if s.GrossPay != 9777 {
		t.Errorf("期望总薪资 9777，实际 %v", s.GrossPay)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, domain.PaySettings{MonthlySalary: 26000, AdminAllowance: 1000})
	if s.GrossPay != 0 || s.AllowancePay != 0 || s.EntryCount != 0 {
		t.Errorf("空记录期望全零，实际 %+v", s)
	}
}
