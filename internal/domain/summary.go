package domain

// Summary 是某个计薪周期的汇总，所有数值保留两位小数
type Summary struct {
	Period             PeriodOption `json:"period"`
	EntryCount         int          `json:"entryCount"`
	Hours              Buckets      `json:"hours"`
	Pay                Buckets      `json:"pay"`
	HourlyRate         float64      `json:"hourlyRate"`
	AllowancePay       float64      `json:"allowancePay"`
	TotalRegularHours  float64      `json:"totalRegularHours"`
	TotalOvertimeHours float64      `json:"totalOvertimeHours"`
	GrossPay           float64      `json:"grossPay"`
}
