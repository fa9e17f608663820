package payroll

import (
	"errors"
	"math"
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

// 2025-04-08 周二, 2025-04-12 周六, 2025-04-13 周日
const (
	tuesday  = "2025-04-08"
	saturday = "2025-04-12"
	sunday   = "2025-04-13"
)

func span(date, in, out string, brk int) domain.TimeSpan {
	return domain.TimeSpan{Date: date, TimeIn: in, TimeOut: out, BreakMinutes: brk}
}

func nonZero(b domain.Buckets) []domain.Category {
	var cats []domain.Category
	for _, c := range domain.Categories {
		if b.Get(c) > 0 {
			cats = append(cats, c)
		}
	}
	return cats
}

func TestClassify_Priority(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		holiday domain.HolidayKind
		want    domain.Category
	}{
		{"周六的法定假日", saturday, domain.HolidayRegular, domain.CategoryRegularHolidayRestDay},
		{"周日的法定假日", sunday, domain.HolidayRegular, domain.CategoryRegularHolidayRestDay},
		{"工作日的法定假日", tuesday, domain.HolidayRegular, domain.CategoryRegularHoliday},
		{"周六的特别假日", saturday, domain.HolidaySpecial, domain.CategorySpecialHolidayRestDay},
		{"工作日的特别假日", tuesday, domain.HolidaySpecial, domain.CategorySpecialHoliday},
		{"普通周六", saturday, domain.HolidayNone, domain.CategorySaturday},
		{"普通周日", sunday, domain.HolidayNone, domain.CategorySunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Classify(span(tt.date, "08:00", "20:00", 60), "Office", tt.holiday)
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			cats := nonZero(b)
			if len(cats) != 1 || cats[0] != tt.want {
				t.Fatalf("期望只有 %s 非零，实际 %v", tt.want, cats)
			}
			if b.Get(tt.want) != 11 {
				t.Errorf("期望 11 小时，实际 %v", b.Get(tt.want))
			}
		})
	}
}

func TestClassify_Exclusivity(t *testing.T) {
	dates := []string{"2025-04-07", tuesday, "2025-04-09", "2025-04-10", "2025-04-11", saturday, sunday}
	kinds := []domain.HolidayKind{domain.HolidayNone, domain.HolidayRegular, domain.HolidaySpecial}
	spans := [][2]string{{"09:00", "18:00"}, {"07:00", "21:15"}, {"22:00", "06:00"}, {"13:00", "14:10"}}

	for _, date := range dates {
		for _, kind := range kinds {
			for _, s := range spans {
				sp := span(date, s[0], s[1], 0)
				b, err := Classify(sp, "", kind)
				if err != nil {
					t.Fatalf("%s %q %v: 意外错误: %v", date, kind, s, err)
				}

				cats := nonZero(b)
				weekdayPath := len(cats) == 2 && cats[0] == domain.CategoryRegular && cats[1] == domain.CategoryWeekdayOvertime
				if len(cats) != 1 && !weekdayPath {
					t.Errorf("%s %q %v: 类别不互斥: %v", date, kind, s, cats)
				}

				net, _ := NetDurationMinutes(s[0], s[1], 0)
				if math.Abs(b.Total()-float64(net)/60) > 0.01 {
					t.Errorf("%s %q %v: 各类别之和 %v 不等于净工时 %v", date, kind, s, b.Total(), float64(net)/60)
				}
			}
		}
	}
}

func TestClassify_LocationRule(t *testing.T) {
	sp := span(tuesday, "08:00", "19:00", 60) // 10 小时

	site, err := Classify(sp, "Office", domain.HolidayNone)
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if site.Regular != 8 || site.WeekdayOvertime != 2 {
		t.Errorf("有地点时期望 8/2，实际 %v/%v", site.Regular, site.WeekdayOvertime)
	}

	field, err := Classify(sp, "   ", domain.HolidayNone)
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if field.Regular != 9.5 || field.WeekdayOvertime != 0.5 {
		t.Errorf("无地点时期望 9.5/0.5，实际 %v/%v", field.Regular, field.WeekdayOvertime)
	}
}

func TestClassify_Rounding(t *testing.T) {
	b, err := Classify(span(tuesday, "09:00", "17:20", 0), "Office", domain.HolidayNone)
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if b.Regular != 8 || b.WeekdayOvertime != 0.33 {
		t.Errorf("期望 8/0.33，实际 %v/%v", b.Regular, b.WeekdayOvertime)
	}
}

func TestClassify_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		sp      domain.TimeSpan
		kind    domain.HolidayKind
		wantErr error
	}{
		{"净工时为零", span(tuesday, "09:00", "10:00", 60), domain.HolidayNone, domain.ErrNonPositiveDuration},
		{"净工时为负", span(tuesday, "09:00", "10:00", 120), domain.HolidayNone, domain.ErrNonPositiveDuration},
		{"时间格式错误", span(tuesday, "9am", "10:00", 0), domain.HolidayNone, domain.ErrInvalidFormat},
		{"日期格式错误", span("08/04/2025", "09:00", "10:00", 0), domain.HolidayNone, domain.ErrInvalidFormat},
		{"负的休息时长", span(tuesday, "09:00", "10:00", -5), domain.HolidayNone, domain.ErrInvalidFormat},
		{"未知节假日类型", span(tuesday, "09:00", "10:00", 0), domain.HolidayKind("LOCAL"), domain.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Classify(tt.sp, "", tt.kind)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("期望 %v，实际 %v", tt.wantErr, err)
			}
			if b != (domain.Buckets{}) {
				t.Errorf("出错时期望全零，实际 %+v", b)
			}
		})
	}
}
