package payroll

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

const minutesPerDay = 24 * 60

// ToMinutesOfDay 将 "HH:MM" 转换为从 00:00 开始的分钟数
func ToMinutesOfDay(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: 时间 %q 应为 HH:MM", domain.ErrInvalidFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: 时间 %q 的小时部分不是整数", domain.ErrInvalidFormat, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: 时间 %q 的分钟部分不是整数", domain.ErrInvalidFormat, s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: 时间 %q 超出范围", domain.ErrInvalidFormat, s)
	}

	return hours*60 + minutes, nil
}

// NormalizeTime 把合法的时间统一成两位数的 "HH:MM"
func NormalizeTime(s string) (string, error) {
	m, err := ToMinutesOfDay(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// NetDurationMinutes 计算扣除休息后的净工时（分钟）。
// 下班时间早于上班时间时视为次日下班。结果不做下限截断，由调用方检查正负。
func NetDurationMinutes(timeIn, timeOut string, breakMinutes int) (int, error) {
	in, err := ToMinutesOfDay(timeIn)
	if err != nil {
		return 0, err
	}
	out, err := ToMinutesOfDay(timeOut)
	if err != nil {
		return 0, err
	}

	total := out - in
	if total < 0 {
		total += minutesPerDay
	}

	return total - breakMinutes, nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: 日期 %q 应为 YYYY-MM-DD", domain.ErrInvalidFormat, s)
	}
	return t, nil
}
