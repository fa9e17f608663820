package payroll

import (
	"fmt"
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

// PeriodOf 1-15 日属于上半月，其余属于下半月
func PeriodOf(date time.Time) domain.PayPeriod {
	half := domain.FirstHalf
	if date.Day() > 15 {
		half = domain.SecondHalf
	}
	return domain.PayPeriod{Year: date.Year(), Month: date.Month(), Half: half}
}

func PeriodOfEntry(e domain.DtrEntry) (domain.PayPeriod, error) {
	date, err := ParseDate(e.Date)
	if err != nil {
		return domain.PayPeriod{}, err
	}
	return PeriodOf(date), nil
}

// ParsePeriodKey 只接受某月 1 日或 16 日的日期
func ParsePeriodKey(key string) (domain.PayPeriod, error) {
	date, err := time.Parse(domain.DateLayout, key)
	if err != nil || (date.Day() != 1 && date.Day() != 16) {
		return domain.PayPeriod{}, fmt.Errorf("%w: 计薪周期 %q 不存在", domain.ErrInvalidSelection, key)
	}
	return PeriodOf(date), nil
}

// ListPeriods 第一项固定为全部记录，其余按时间倒序排列
func ListPeriods(entries []domain.DtrEntry) []domain.PeriodOption {
	seen := make(map[string]domain.PayPeriod)
	for _, e := range entries {
		p, err := PeriodOfEntry(e)
		if err != nil {
			continue
		}
		seen[p.Key()] = p
	}

	periods := make([]domain.PayPeriod, 0, len(seen))
	for _, p := range seen {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Key() > periods[j].Key()
	})

	options := make([]domain.PeriodOption, 0, len(periods)+1)
	options = append(options, domain.AllPeriodsOption)
	for _, p := range periods {
		options = append(options, p.Option())
	}
	return options
}

// LatestPeriodKey 返回最近一个周期，没有记录时返回全部
func LatestPeriodKey(entries []domain.DtrEntry) string {
	options := ListPeriods(entries)
	if len(options) > 1 {
		return options[1].Key
	}
	return domain.AllPeriodsKey
}

// ResolvePeriod 把周期 key 转换为展示用的选项
func ResolvePeriod(key string) (domain.PeriodOption, error) {
	if key == domain.AllPeriodsKey {
		return domain.AllPeriodsOption, nil
	}
	p, err := ParsePeriodKey(key)
	if err != nil {
		return domain.PeriodOption{}, err
	}
	return p.Option(), nil
}

func InPeriod(e domain.DtrEntry, key string) bool {
	if key == domain.AllPeriodsKey {
		return true
	}
	p, err := PeriodOfEntry(e)
	if err != nil {
		return false
	}
	return p.Key() == key
}

func FilterEntries(entries []domain.DtrEntry, key string) ([]domain.DtrEntry, error) {
	if _, err := ResolvePeriod(key); err != nil {
		return nil, err
	}

	filtered := make([]domain.DtrEntry, 0, len(entries))
	for _, e := range entries {
		if InPeriod(e, key) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
