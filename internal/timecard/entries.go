package timecard

import (
	"sort"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/payroll"
)

// Upsert 同一日期已有记录时整体替换，否则插入，结果保持日期升序
func Upsert(entries []domain.DtrEntry, entry domain.DtrEntry) []domain.DtrEntry {
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Date >= entry.Date })
	if i < len(entries) && entries[i].Date == entry.Date {
		entries[i] = entry
		return entries
	}

	entries = append(entries, domain.DtrEntry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = entry
	return entries
}

// DeleteByDate 返回删除后的列表以及是否找到该日期
func DeleteByDate(entries []domain.DtrEntry, date string) ([]domain.DtrEntry, bool) {
	return remove(entries, func(e domain.DtrEntry) bool { return e.Date == date })
}

func DeleteByPeriod(entries []domain.DtrEntry, key string) ([]domain.DtrEntry, int) {
	return removeCount(entries, func(e domain.DtrEntry) bool { return payroll.InPeriod(e, key) })
}

// DeleteBefore 删除日期严格早于 cutoff 的记录，cutoff 当天保留
func DeleteBefore(entries []domain.DtrEntry, cutoff string) ([]domain.DtrEntry, int) {
	return removeCount(entries, func(e domain.DtrEntry) bool { return e.Date < cutoff })
}

func remove(entries []domain.DtrEntry, match func(domain.DtrEntry) bool) ([]domain.DtrEntry, bool) {
	remaining, n := removeCount(entries, match)
	return remaining, n > 0
}

func removeCount(entries []domain.DtrEntry, match func(domain.DtrEntry) bool) ([]domain.DtrEntry, int) {
	remaining := make([]domain.DtrEntry, 0, len(entries))
	for _, e := range entries {
		if !match(e) {
			remaining = append(remaining, e)
		}
	}
	return remaining, len(entries) - len(remaining)
}
