package payroll

import (
	"errors"
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		date  string
		key   string
		label string
		end   string
	}{
		{"2025-04-15", "2025-04-01", "Apr 1 - 15, 2025", "2025-04-15"},
		{"2025-04-16", "2025-04-16", "Apr 16 - End, 2025", "2025-04-30"},
		{"2024-02-29", "2024-02-16", "Feb 16 - End, 2024", "2024-02-29"},
		{"2025-12-31", "2025-12-16", "Dec 16 - End, 2025", "2025-12-31"},
	}

	for _, tt := range tests {
		d, _ := ParseDate(tt.date)
		p := PeriodOf(d)
		if p.Key() != tt.key || p.Label() != tt.label || p.Option().End != tt.end {
			t.Errorf("%s: 实际 %s / %s / %s", tt.date, p.Key(), p.Label(), p.Option().End)
		}
	}
}

func TestParsePeriodKey(t *testing.T) {
	if _, err := ParsePeriodKey("2025-04-16"); err != nil {
		t.Errorf("意外错误: %v", err)
	}
	for _, key := range []string{"2025-04-15", "2025-4-15", "latest", ""} {
		if _, err := ParsePeriodKey(key); !errors.Is(err, domain.ErrInvalidSelection) {
			t.Errorf("%q: 期望 ErrInvalidSelection，实际 %v", key, err)
		}
	}
}

func TestListPeriods(t *testing.T) {
	entries := []domain.DtrEntry{
		{Date: "2025-03-20"},
		{Date: "2025-04-02"},
		{Date: "2025-04-03"},
		{Date: "2025-04-20"},
	}

	options := ListPeriods(entries)
	keys := make([]string, 0, len(options))
	for _, o := range options {
		keys = append(keys, o.Key)
	}

	want := []string{"all", "2025-04-16", "2025-04-01", "2025-03-16"}
	if len(keys) != len(want) {
		t.Fatalf("期望 %v，实际 %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("期望 %v，实际 %v", want, keys)
		}
	}

	if got := LatestPeriodKey(entries); got != "2025-04-16" {
		t.Errorf("期望最近周期 2025-04-16，实际 %s", got)
	}
	if got := LatestPeriodKey(nil); got != domain.AllPeriodsKey {
		t.Errorf("没有记录时期望 all，实际 %s", got)
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []domain.DtrEntry{{Date: "2025-04-15"}, {Date: "2025-04-16"}, {Date: "2025-05-01"}}

	first, err := FilterEntries(entries, "2025-04-01")
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if len(first) != 1 || first[0].Date != "2025-04-15" {
		t.Errorf("上半月期望只有 04-15，实际 %v", first)
	}

	all, err := FilterEntries(entries, domain.AllPeriodsKey)
	if err != nil || len(all) != 3 {
		t.Errorf("全部期望 3 条，实际 %d (%v)", len(all), err)
	}

	if _, err := FilterEntries(entries, "bogus"); !errors.Is(err, domain.ErrInvalidSelection) {
		t.Errorf("期望 ErrInvalidSelection，实际 %v", err)
	}
}
