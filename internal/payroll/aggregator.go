package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

// Summarize 汇总各类别工时并换算成总薪资。
// 中间结果保持精确的十进制运算，只在返回时保留两位小数。
func Summarize(entries []domain.DtrEntry, settings domain.PaySettings) domain.Summary {
	hours := make(map[domain.Category]decimal.Decimal, len(domain.Categories))
	for _, c := range domain.Categories {
		hours[c] = decimal.Zero
	}
	for _, e := range entries {
		for _, c := range domain.Categories {
			hours[c] = hours[c].Add(decimal.NewFromFloat(e.Hours.Get(c)))
		}
	}

	rate := HourlyRate(settings.MonthlySalary)
	allowance := DailyAllowance(settings.AdminAllowance).Mul(decimal.NewFromInt(int64(len(entries))))

	gross := allowance
	overtime := decimal.Zero
	summary := domain.Summary{EntryCount: len(entries)}

	for _, c := range domain.Categories {
		pay := hours[c].Mul(rate).Mul(Multiplier(c))
		gross = gross.Add(pay)
		if c != domain.CategoryRegular {
			overtime = overtime.Add(hours[c])
		}

		summary.Hours.Set(c, round2(hours[c]))
		summary.Pay.Set(c, round2(pay))
	}

	summary.HourlyRate = round2(rate)
	summary.AllowancePay = round2(allowance)
	summary.TotalRegularHours = round2(hours[domain.CategoryRegular])
	summary.TotalOvertimeHours = round2(overtime)
	summary.GrossPay = round2(gross)

	return summary
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
