package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

var (
	monthsPerYear         = decimal.NewFromInt(12)
	workingDaysPerYear    = decimal.NewFromInt(261)
	standardDailyHours    = decimal.NewFromInt(8)
	allowanceDaysPerMonth = decimal.NewFromInt(26)
)

// 各类别相对于时薪的倍数
var multipliers = map[domain.Category]decimal.Decimal{
	domain.CategoryRegular:               decimal.NewFromInt(1),
	domain.CategoryWeekdayOvertime:       decimal.RequireFromString("1.25"),
	domain.CategorySaturday:              decimal.RequireFromString("1.30"),
	domain.CategorySunday:                decimal.RequireFromString("1.50"),
	domain.CategoryRegularHoliday:        decimal.RequireFromString("2.00"),
	domain.CategorySpecialHoliday:        decimal.RequireFromString("1.30"),
	domain.CategoryRegularHolidayRestDay: decimal.RequireFromString("2.60"),
	domain.CategorySpecialHolidayRestDay: decimal.RequireFromString("1.69"),
}

func Multiplier(c domain.Category) decimal.Decimal {
	if m, ok := multipliers[c]; ok {
		return m
	}
	return decimal.Zero
}

// HourlyRate = 月薪 * 12 / 261 / 8
func HourlyRate(monthlySalary float64) decimal.Decimal {
	return decimal.NewFromFloat(monthlySalary).
		Mul(monthsPerYear).
		Div(workingDaysPerYear).
		Div(standardDailyHours)
}

// DailyAllowance 按每月 26 天折算津贴
func DailyAllowance(adminAllowance float64) decimal.Decimal {
	return decimal.NewFromFloat(adminAllowance).Div(allowanceDaysPerMonth)
}
