package domain

type PaySettings struct {
	MonthlySalary  float64 `json:"monthlySalary" validate:"gte=0"`
	AdminAllowance float64 `json:"adminAllowance" validate:"gte=0"`
}
