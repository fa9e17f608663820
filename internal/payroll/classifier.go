package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

const (
	siteRegularHours  = 8.0
	fieldRegularHours = 9.5
)

// RegularLimit 有固定地点时每天 8 小时正常工时，否则 9.5 小时
func RegularLimit(location string) float64 {
	if strings.TrimSpace(location) != "" {
		return siteRegularHours
	}
	return fieldRegularHours
}

// Classify 把一天的净工时分配到互斥的计薪类别。
// 优先级：节假日 > 休息日（周六、周日） > 工作日正常/加班。
func Classify(span domain.TimeSpan, location string, holiday domain.HolidayKind) (domain.Buckets, error) {
	if holiday != domain.HolidayNone && !holiday.Valid() {
		return domain.Buckets{}, fmt.Errorf("%w: 未知的节假日类型 %q", domain.ErrInvalidFormat, holiday)
	}
	if span.BreakMinutes < 0 {
		return domain.Buckets{}, fmt.Errorf("%w: 休息时长不能为负数", domain.ErrInvalidFormat)
	}

	date, err := ParseDate(span.Date)
	if err != nil {
		return domain.Buckets{}, err
	}

	netMinutes, err := NetDurationMinutes(span.TimeIn, span.TimeOut, span.BreakMinutes)
	if err != nil {
		return domain.Buckets{}, err
	}
	if netMinutes <= 0 {
		return domain.Buckets{}, fmt.Errorf("%w: 净工时为 %d 分钟", domain.ErrNonPositiveDuration, netMinutes)
	}

	hours := decimal.NewFromInt(int64(netMinutes)).Div(decimal.NewFromInt(60))
	dayType := domain.DayTypeOf(date.Weekday())

	var b domain.Buckets
	switch {
	case holiday == domain.HolidayRegular && dayType.IsRestDay():
		b.RegularHolidayRestDay = hours.InexactFloat64()
	case holiday == domain.HolidayRegular:
		b.RegularHoliday = hours.InexactFloat64()
	case holiday == domain.HolidaySpecial && dayType.IsRestDay():
		b.SpecialHolidayRestDay = hours.InexactFloat64()
	case holiday == domain.HolidaySpecial:
		b.SpecialHoliday = hours.InexactFloat64()
	case dayType == domain.Saturday:
		b.Saturday = hours.InexactFloat64()
	case dayType == domain.Sunday:
		b.Sunday = hours.InexactFloat64()
	default:
		limit := decimal.NewFromFloat(RegularLimit(location))
		b.Regular = decimal.Min(hours, limit).InexactFloat64()
		b.WeekdayOvertime = decimal.Max(decimal.Zero, hours.Sub(limit)).InexactFloat64()
	}

	return b.Round(2), nil
}
