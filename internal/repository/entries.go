package repository

import (
	"fmt"
	"sort"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

// LoadEntries 按日期升序返回所有记录。数据损坏时记录日志并返回空列表
func (r *Repository) LoadEntries() ([]domain.DtrEntry, error) {
	var entries []domain.DtrEntry
	if _, err := r.load(KeyEntries, &entries); err != nil {
		return r.entriesFallback(err)
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if err := r.validate.Struct(e); err != nil {
			return r.entriesFallback(corrupt(KeyEntries, err))
		}
		if _, ok := seen[e.Date]; ok {
			return r.entriesFallback(corrupt(KeyEntries, fmt.Errorf("日期 %s 重复", e.Date)))
		}
		seen[e.Date] = struct{}{}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	if entries == nil {
		entries = []domain.DtrEntry{}
	}
	return entries, nil
}

func (r *Repository) entriesFallback(err error) ([]domain.DtrEntry, error) {
	if !isCorrupt(err) {
		return nil, err
	}
	r.logCorrupt(KeyEntries, err)
	return []domain.DtrEntry{}, nil
}

func (r *Repository) SaveEntries(entries []domain.DtrEntry) error {
	if entries == nil {
		entries = []domain.DtrEntry{}
	}
	return r.save(KeyEntries, entries)
}
