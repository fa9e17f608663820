package holiday

import (
	"sort"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

// Registry 合并法定节假日与自定义节假日，同一日期法定节假日优先。
// Registry 不是并发安全的，由调用方加锁。
type Registry struct {
	statutory map[string]domain.HolidayInfo
	custom    []domain.Holiday
}

func NewRegistry(statutory map[string]domain.HolidayInfo, custom []domain.Holiday) *Registry {
	r := &Registry{
		statutory: make(map[string]domain.HolidayInfo, len(statutory)),
		custom:    make([]domain.Holiday, 0, len(custom)),
	}
	for date, info := range statutory {
		r.statutory[date] = info
	}
	for _, h := range custom {
		r.UpsertCustom(h)
	}
	return r
}

// Resolve 返回某天的节假日类型，不是节假日时返回 HolidayNone 和 false
func (r *Registry) Resolve(date string) (domain.HolidayKind, bool) {
	h, _, ok := r.Lookup(date)
	if !ok {
		return domain.HolidayNone, false
	}
	return h.Kind, true
}

func (r *Registry) Lookup(date string) (domain.Holiday, domain.HolidaySource, bool) {
	if info, ok := r.statutory[date]; ok {
		return domain.Holiday{Date: date, Name: info.Name, Kind: info.Kind}, domain.HolidaySourceStatutory, true
	}
	if i, ok := r.customIndex(date); ok {
		return r.custom[i], domain.HolidaySourceCustom, true
	}
	return domain.Holiday{}, "", false
}

func (r *Registry) UpsertStatutory(h domain.Holiday) {
	r.statutory[h.Date] = domain.HolidayInfo{Name: h.Name, Kind: h.Kind}
}

// UpsertCustom 同一日期已存在时覆盖，否则按日期顺序插入
func (r *Registry) UpsertCustom(h domain.Holiday) {
	if i, ok := r.customIndex(h.Date); ok {
		r.custom[i] = h
		return
	}

	i := sort.Search(len(r.custom), func(i int) bool { return r.custom[i].Date >= h.Date })
	r.custom = append(r.custom, domain.Holiday{})
	copy(r.custom[i+1:], r.custom[i:])
	r.custom[i] = h
}

func (r *Registry) DeleteCustom(date string) bool {
	i, ok := r.customIndex(date)
	if !ok {
		return false
	}
	r.custom = append(r.custom[:i], r.custom[i+1:]...)
	return true
}

// Statutory 按日期排序返回法定节假日
func (r *Registry) Statutory() []domain.Holiday {
	list := make([]domain.Holiday, 0, len(r.statutory))
	for date, info := range r.statutory {
		list = append(list, domain.Holiday{Date: date, Name: info.Name, Kind: info.Kind})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list
}

func (r *Registry) StatutoryMap() map[string]domain.HolidayInfo {
	m := make(map[string]domain.HolidayInfo, len(r.statutory))
	for date, info := range r.statutory {
		m[date] = info
	}
	return m
}

func (r *Registry) Custom() []domain.Holiday {
	list := make([]domain.Holiday, len(r.custom))
	copy(list, r.custom)
	return list
}

func (r *Registry) customIndex(date string) (int, bool) {
	i := sort.Search(len(r.custom), func(i int) bool { return r.custom[i].Date >= date })
	if i < len(r.custom) && r.custom[i].Date == date {
		return i, true
	}
	return 0, false
}
