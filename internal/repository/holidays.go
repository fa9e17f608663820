package repository

import (
	"fmt"
	"sort"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

// LoadStatutoryHolidays 的 found 为 false 表示还没有保存过法定节假日（或数据已损坏），
// 调用方需要用内置表初始化
func (r *Repository) LoadStatutoryHolidays() (map[string]domain.HolidayInfo, bool, error) {
	var holidays map[string]domain.HolidayInfo
	found, err := r.load(KeyStatutoryHolidays, &holidays)
	if err == nil && found {
		err = r.validateStatutory(holidays)
	}
	if err != nil {
		if !isCorrupt(err) {
			return nil, false, err
		}
		r.logCorrupt(KeyStatutoryHolidays, err)
		return nil, false, nil
	}
	if !found || holidays == nil {
		return nil, false, nil
	}
	return holidays, true, nil
}

func (r *Repository) validateStatutory(holidays map[string]domain.HolidayInfo) error {
	for date, info := range holidays {
		if err := r.validate.Var(date, "datetime=2006-01-02"); err != nil {
			return corrupt(KeyStatutoryHolidays, fmt.Errorf("日期 %q 无效", date))
		}
		if err := r.validate.Struct(info); err != nil {
			return corrupt(KeyStatutoryHolidays, err)
		}
	}
	return nil
}

func (r *Repository) SaveStatutoryHolidays(holidays map[string]domain.HolidayInfo) error {
	return r.save(KeyStatutoryHolidays, holidays)
}

// LoadCustomHolidays 按日期升序返回自定义节假日，数据损坏时返回空列表
func (r *Repository) LoadCustomHolidays() ([]domain.Holiday, error) {
	var holidays []domain.Holiday
	if _, err := r.load(KeyCustomHolidays, &holidays); err != nil {
		if !isCorrupt(err) {
			return nil, err
		}
		r.logCorrupt(KeyCustomHolidays, err)
		return []domain.Holiday{}, nil
	}

	for _, h := range holidays {
		if err := r.validate.Struct(h); err != nil {
			r.logCorrupt(KeyCustomHolidays, corrupt(KeyCustomHolidays, err))
			return []domain.Holiday{}, nil
		}
	}

	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date < holidays[j].Date })
	if holidays == nil {
		holidays = []domain.Holiday{}
	}
	return holidays, nil
}

func (r *Repository) SaveCustomHolidays(holidays []domain.Holiday) error {
	if holidays == nil {
		holidays = []domain.Holiday{}
	}
	return r.save(KeyCustomHolidays, holidays)
}
