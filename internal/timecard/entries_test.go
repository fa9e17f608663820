package timecard

import (
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

func dates(entries []domain.DtrEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Date)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUpsert(t *testing.T) {
	var entries []domain.DtrEntry
	entries = Upsert(entries, domain.DtrEntry{Date: "2025-04-10"})
	entries = Upsert(entries, domain.DtrEntry{Date: "2025-04-02"})
	entries = Upsert(entries, domain.DtrEntry{Date: "2025-04-20"})
	entries = Upsert(entries, domain.DtrEntry{Date: "2025-04-10", Location: "Office"})

	if got := dates(entries); !equal(got, []string{"2025-04-02", "2025-04-10", "2025-04-20"}) {
		t.Fatalf("期望按日期排序且不重复，实际 %v", got)
	}
	if entries[1].Location != "Office" {
		t.Errorf("同一日期应被替换，实际 %+v", entries[1])
	}
}

func TestDeleteHelpers(t *testing.T) {
	base := func() []domain.DtrEntry {
		return []domain.DtrEntry{
			{Date: "2025-03-31"}, {Date: "2025-04-01"}, {Date: "2025-04-15"}, {Date: "2025-04-16"},
		}
	}

	remaining, ok := DeleteByDate(base(), "2025-04-15")
	if !ok || len(remaining) != 3 {
		t.Errorf("按日期删除失败: %v %v", dates(remaining), ok)
	}
	if _, ok := DeleteByDate(base(), "2025-05-01"); ok {
		t.Error("不存在的日期应返回 false")
	}

	remaining, n := DeleteByPeriod(base(), "2025-04-01")
	if n != 2 || !equal(dates(remaining), []string{"2025-03-31", "2025-04-16"}) {
		t.Errorf("按周期删除失败: %v (%d)", dates(remaining), n)
	}

	remaining, n = DeleteBefore(base(), "2025-04-15")
	if n != 2 || !equal(dates(remaining), []string{"2025-04-15", "2025-04-16"}) {
		t.Errorf("截止日期当天应保留: %v (%d)", dates(remaining), n)
	}
}
