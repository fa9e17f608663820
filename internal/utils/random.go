package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
)

// 空字符串表示外勤，每天正常工时按 9.5 小时计算
var locations = []string{"", "Head Office", "Warehouse", "Client Site"}

var breakOptions = []int{0, 30, 60, 60, 90}

func GenerateRandomLocation() string {
	return locations[rand.Intn(len(locations))]
}

// GenerateRandomEntryInput 大部分是白班，约十分之一是跨午夜的夜班
func GenerateRandomEntryInput(date time.Time) timecard.EntryInput {
	startHour := rand.Intn(4) + 6 // 6~9 点
	if rand.Intn(10) == 0 {
		startHour = rand.Intn(3) + 20 // 20~22 点
	}
	startMinute := rand.Intn(4) * 15

	workMinutes := (rand.Intn(9)+4)*60 + rand.Intn(4)*15 // 4~12 小时多一点
	breakMinutes := breakOptions[rand.Intn(len(breakOptions))]
	end := startHour*60 + startMinute + workMinutes + breakMinutes

	return timecard.EntryInput{
		Date:         date.Format(domain.DateLayout),
		Location:     GenerateRandomLocation(),
		TimeIn:       fmt.Sprintf("%02d:%02d", startHour, startMinute),
		TimeOut:      fmt.Sprintf("%02d:%02d", (end/60)%24, end%60),
		BreakMinutes: breakMinutes,
	}
}

// GenerateRandomWorkdays 返回 end 之前（含 end）最近 n 个出勤日，周日有一半概率休息
func GenerateRandomWorkdays(end time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	for d := end; len(days) < n; d = d.AddDate(0, 0, -1) {
		if d.Weekday() == time.Sunday && rand.Intn(2) == 0 {
			continue
		}
		days = append(days, d)
	}

	// 按时间先后排列
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days
}
