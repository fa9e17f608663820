package domain

import "github.com/shopspring/decimal"

// Buckets 按类别存放工时（汇总时也用来存放各类别的金额）
type Buckets struct {
	Regular               float64 `json:"regular" validate:"gte=0"`
	WeekdayOvertime       float64 `json:"weekdayOvertime" validate:"gte=0"`
	Saturday              float64 `json:"saturday" validate:"gte=0"`
	Sunday                float64 `json:"sunday" validate:"gte=0"`
	RegularHoliday        float64 `json:"regularHoliday" validate:"gte=0"`
	SpecialHoliday        float64 `json:"specialHoliday" validate:"gte=0"`
	RegularHolidayRestDay float64 `json:"regularHolidayOnRestDay" validate:"gte=0"`
	SpecialHolidayRestDay float64 `json:"specialHolidayOnRestDay" validate:"gte=0"`
}

type BucketHours struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Hours    float64 `json:"hours"`
}

func (b *Buckets) field(c Category) *float64 {
	switch c {
	case CategoryRegular:
		return &b.Regular
	case CategoryWeekdayOvertime:
		return &b.WeekdayOvertime
	case CategorySaturday:
		return &b.Saturday
	case CategorySunday:
		return &b.Sunday
	case CategoryRegularHoliday:
		return &b.RegularHoliday
	case CategorySpecialHoliday:
		return &b.SpecialHoliday
	case CategoryRegularHolidayRestDay:
		return &b.RegularHolidayRestDay
	case CategorySpecialHolidayRestDay:
		return &b.SpecialHolidayRestDay
	}
	return nil
}

func (b Buckets) Get(c Category) float64 {
	if p := b.field(c); p != nil {
		return *p
	}
	return 0
}

func (b *Buckets) Set(c Category, v float64) {
	if p := b.field(c); p != nil {
		*p = v
	}
}

// Total 返回所有类别之和
func (b Buckets) Total() float64 {
	total := decimal.Zero
	for _, c := range Categories {
		total = total.Add(decimal.NewFromFloat(b.Get(c)))
	}
	return total.InexactFloat64()
}

// Premium 返回除正常工时外所有类别之和
func (b Buckets) Premium() float64 {
	return decimal.NewFromFloat(b.Total()).Sub(decimal.NewFromFloat(b.Regular)).InexactFloat64()
}

// Round 将每个类别四舍五入到 places 位小数
func (b Buckets) Round(places int32) Buckets {
	var out Buckets
	for _, c := range Categories {
		out.Set(c, decimal.NewFromFloat(b.Get(c)).Round(places).InexactFloat64())
	}
	return out
}

// Breakdown 只列出大于零的类别
func (b Buckets) Breakdown() []BucketHours {
	items := make([]BucketHours, 0, 1)
	for _, c := range Categories {
		if v := b.Get(c); v > 0 {
			items = append(items, BucketHours{Category: c.String(), Label: c.Label(), Hours: v})
		}
	}
	return items
}
