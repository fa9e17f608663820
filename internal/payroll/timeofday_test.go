package payroll

import (
	"errors"
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

func TestToMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"9:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"12:00:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ToMinutesOfDay(tt.in)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrInvalidFormat) {
				t.Errorf("ToMinutesOfDay(%q) 期望 ErrInvalidFormat，实际: %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToMinutesOfDay(%q) 意外错误: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToMinutesOfDay(%q) = %d，期望 %d", tt.in, got, tt.want)
		}
	}
}

func TestNetDurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		in, out  string
		break_   int
		expected int
	}{
		{"普通白班", "09:00", "18:00", 60, 480},
		{"跨越午夜", "22:00", "06:00", 0, 480},
		{"跨越午夜含休息", "20:00", "05:30", 30, 540},
		{"上下班时间相同", "08:00", "08:00", 0, 0},
		{"休息超过工时", "09:00", "10:00", 90, -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NetDurationMinutes(tt.in, tt.out, tt.break_)
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			if got != tt.expected {
				t.Errorf("期望 %d，实际 %d", tt.expected, got)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	got, err := NormalizeTime("7:5")
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if got != "07:05" {
		t.Errorf("期望 07:05，实际 %s", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-02-30"); !errors.Is(err, domain.ErrInvalidFormat) {
		t.Errorf("期望 ErrInvalidFormat，实际: %v", err)
	}
	d, err := ParseDate("2025-04-08")
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if d.Day() != 8 {
		t.Errorf("期望 8 日，实际 %d", d.Day())
	}
}
