package domain

import "time"

const MailTypePayslip = "payslip"

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type PayslipMailData struct {
	Summary     Summary    `json:"summary"`
	Entries     []DtrEntry `json:"entries"`
	GeneratedAt time.Time  `json:"generatedAt"`
}
