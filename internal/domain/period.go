package domain

import (
	"fmt"
	"time"
)

const AllPeriodsKey = "all"

type Half int

const (
	FirstHalf  Half = 1 // 1 - 15 日
	SecondHalf Half = 2 // 16 日 - 月末
)

// PayPeriod 是半月计薪周期，由记录日期推导，不单独保存
type PayPeriod struct {
	Year  int
	Month time.Month
	Half  Half
}

func (p PayPeriod) StartDay() int {
	if p.Half == SecondHalf {
		return 16
	}
	return 1
}

func (p PayPeriod) Start() time.Time {
	return time.Date(p.Year, p.Month, p.StartDay(), 0, 0, 0, 0, time.UTC)
}

func (p PayPeriod) End() time.Time {
	if p.Half == FirstHalf {
		return time.Date(p.Year, p.Month, 15, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Key 是周期首日的日期字符串，可直接按字典序比较先后
func (p PayPeriod) Key() string {
	return p.Start().Format(DateLayout)
}

func (p PayPeriod) Label() string {
	month := p.Month.String()[:3]
	if p.Half == FirstHalf {
		return fmt.Sprintf("%s 1 - 15, %d", month, p.Year)
	}
	return fmt.Sprintf("%s 16 - End, %d", month, p.Year)
}

type PeriodOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

func (p PayPeriod) Option() PeriodOption {
	return PeriodOption{
		Key:   p.Key(),
		Label: p.Label(),
		Start: p.Start().Format(DateLayout),
		End:   p.End().Format(DateLayout),
	}
}

var AllPeriodsOption = PeriodOption{Key: AllPeriodsKey, Label: "All Entries"}
