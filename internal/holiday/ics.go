package holiday

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

const icsMaxFileSize = 5 * 1024 * 1024 // 5MB

// 节假日按菲律宾当地日期计算
var manila = time.FixedZone("PHT", 8*60*60)

// FetchICS 下载日历订阅，webcal:// 按 https:// 处理
func FetchICS(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: 日历地址 %q 无效", domain.ErrInvalidFormat, rawURL)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("获取 ICS 失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("获取 ICS 失败: HTTP %d", resp.StatusCode)
	}

	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// ParseICS 把日历中的 VEVENT 转为自定义节假日。
// CATEGORIES 中含 REGULAR 或 SPECIAL 时以其为准，否则使用 defaultKind。
// 同一日期出现多次时保留最后一个。
func ParseICS(r io.Reader, defaultKind domain.HolidayKind) ([]domain.Holiday, error) {
	if !defaultKind.Valid() {
		return nil, fmt.Errorf("%w: 节假日类型 %q 只能是 REGULAR 或 SPECIAL", domain.ErrInvalidFormat, defaultKind)
	}

	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: ICS 格式解析失败: %v", domain.ErrInvalidFormat, err)
	}

	byDate := make(map[string]domain.Holiday)
	for _, evt := range cal.Events() {
		h, ok := parseHolidayEvent(evt, defaultKind)
		if !ok {
			continue
		}
		byDate[h.Date] = h
	}

	holidays := make([]domain.Holiday, 0, len(byDate))
	for _, h := range byDate {
		holidays = append(holidays, h)
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date < holidays[j].Date })
	return holidays, nil
}

func parseHolidayEvent(evt *ics.VEvent, defaultKind domain.HolidayKind) (domain.Holiday, bool) {
	summary := evt.GetProperty(ics.ComponentPropertySummary)
	if summary == nil || strings.TrimSpace(summary.Value) == "" {
		return domain.Holiday{}, false
	}

	start, err := parseEventDate(evt)
	if err != nil {
		return domain.Holiday{}, false
	}

	kind := defaultKind
	if cat := evt.GetProperty(ics.ComponentPropertyCategories); cat != nil {
		upper := strings.ToUpper(cat.Value)
		switch {
		case strings.Contains(upper, string(domain.HolidayRegular)):
			kind = domain.HolidayRegular
		case strings.Contains(upper, string(domain.HolidaySpecial)):
			kind = domain.HolidaySpecial
		}
	}

	return domain.Holiday{
		Date: start.Format(domain.DateLayout),
		Name: strings.TrimSpace(summary.Value),
		Kind: kind,
	}, true
}

// parseEventDate 全天事件直接取日期，带时间的事件换算到当地日期
func parseEventDate(evt *ics.VEvent) (time.Time, error) {
	prop := evt.GetProperty(ics.ComponentPropertyDtStart)
	if prop == nil {
		return time.Time{}, fmt.Errorf("缺少 DTSTART")
	}
	val := strings.TrimSpace(prop.Value)

	if t, err := time.Parse("20060102T150405Z", val); err == nil {
		return t.In(manila), nil
	}
	if t, err := time.Parse("20060102T150405", val); err == nil {
		return t, nil
	}
	if t, err := time.Parse("20060102", val); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("无法解析日期: %s", val)
}
