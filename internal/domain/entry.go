package domain

const DateLayout = "2006-01-02"

// TimeSpan 是一天的原始打卡数据
type TimeSpan struct {
	Date         string
	TimeIn       string
	TimeOut      string
	BreakMinutes int
}

// DtrEntry 是某一天已分类的工时记录，日期唯一
type DtrEntry struct {
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Location     string  `json:"location"`
	TimeIn       string  `json:"timeIn" validate:"required,datetime=15:04"`
	TimeOut      string  `json:"timeOut" validate:"required,datetime=15:04"`
	BreakMinutes int     `json:"breakMinutes" validate:"gte=0"`
	Hours        Buckets `json:"hours"`
}

func (e DtrEntry) Span() TimeSpan {
	return TimeSpan{
		Date:         e.Date,
		TimeIn:       e.TimeIn,
		TimeOut:      e.TimeOut,
		BreakMinutes: e.BreakMinutes,
	}
}
