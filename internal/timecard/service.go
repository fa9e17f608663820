package timecard

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/holiday"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/payroll"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/repository"
	"go.uber.org/zap"
)

// LatestPeriod 表示最近一个有记录的计薪周期
const LatestPeriod = "latest"

// Service 串行执行所有读改写操作，保证同一时刻只有一个写者
type Service struct {
	mu     sync.Mutex
	repo   *repository.Repository
	logger *zap.Logger
}

func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// EntryInput 是一次打卡提交，Settings 不为空时一并保存薪资设置
type EntryInput struct {
	Date         string
	Location     string
	TimeIn       string
	TimeOut      string
	BreakMinutes int
	Settings     *domain.PaySettings
}

// EntryDetail 在记录之外附带非零类别明细和当天的节假日
type EntryDetail struct {
	domain.DtrEntry
	NetHours  float64              `json:"netHours"`
	Breakdown []domain.BucketHours `json:"breakdown"`
	Holiday   *domain.Holiday      `json:"holiday,omitempty"`
}

type PeriodList struct {
	Periods  []domain.PeriodOption `json:"periods"`
	Selected string                `json:"selected"`
}

type HolidayList struct {
	Statutory []domain.Holiday `json:"statutory"`
	Custom    []domain.Holiday `json:"custom"`
}

// HolidayInput 的 Statutory 为 true 时修改法定节假日，否则保存为自定义节假日
type HolidayInput struct {
	Date      string
	Name      string
	Kind      domain.HolidayKind
	Statutory bool
}

func (s *Service) SaveEntry(input EntryInput) (domain.DtrEntry, error) {
	entry, err := s.buildEntry(input)
	if err != nil {
		return domain.DtrEntry{}, err
	}
	if input.Settings != nil {
		if err := validateSettings(*input.Settings); err != nil {
			return domain.DtrEntry{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.loadRegistry()
	if err != nil {
		return domain.DtrEntry{}, err
	}
	kind, _ := registry.Resolve(entry.Date)

	entry.Hours, err = payroll.Classify(entry.Span(), entry.Location, kind)
	if err != nil {
		return domain.DtrEntry{}, err
	}

	entries, err := s.repo.LoadEntries()
	if err != nil {
		return domain.DtrEntry{}, err
	}

	if input.Settings != nil {
		if err := s.repo.SaveSettings(*input.Settings); err != nil {
			return domain.DtrEntry{}, err
		}
	}
	if err := s.repo.SaveEntries(Upsert(entries, entry)); err != nil {
		return domain.DtrEntry{}, err
	}

	return entry, nil
}

// buildEntry 校验并规范化输入，工时分类在取得节假日后进行
func (s *Service) buildEntry(input EntryInput) (domain.DtrEntry, error) {
	date := strings.TrimSpace(input.Date)
	switch {
	case date == "":
		return domain.DtrEntry{}, fmt.Errorf("%w: 日期", domain.ErrMissingField)
	case strings.TrimSpace(input.TimeIn) == "":
		return domain.DtrEntry{}, fmt.Errorf("%w: 上班时间", domain.ErrMissingField)
	case strings.TrimSpace(input.TimeOut) == "":
		return domain.DtrEntry{}, fmt.Errorf("%w: 下班时间", domain.ErrMissingField)
	}

	if _, err := payroll.ParseDate(date); err != nil {
		return domain.DtrEntry{}, err
	}
	timeIn, err := payroll.NormalizeTime(input.TimeIn)
	if err != nil {
		return domain.DtrEntry{}, err
	}
	timeOut, err := payroll.NormalizeTime(input.TimeOut)
	if err != nil {
		return domain.DtrEntry{}, err
	}
	if input.BreakMinutes < 0 {
		return domain.DtrEntry{}, fmt.Errorf("%w: 休息时长不能为负数", domain.ErrInvalidFormat)
	}

	return domain.DtrEntry{
		Date:         date,
		Location:     strings.TrimSpace(input.Location),
		TimeIn:       timeIn,
		TimeOut:      timeOut,
		BreakMinutes: input.BreakMinutes,
	}, nil
}

func (s *Service) Entries() ([]domain.DtrEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.LoadEntries()
}

func (s *Service) Entry(date string) (EntryDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries()
	if err != nil {
		return EntryDetail{}, err
	}

	for _, e := range entries {
		if e.Date != date {
			continue
		}

		detail := EntryDetail{
			DtrEntry:  e,
			NetHours:  e.Hours.Total(),
			Breakdown: e.Hours.Breakdown(),
		}

		registry, err := s.loadRegistry()
		if err != nil {
			return EntryDetail{}, err
		}
		if h, _, ok := registry.Lookup(date); ok {
			detail.Holiday = &h
		}
		return detail, nil
	}

	return EntryDetail{}, domain.ErrEntryNotFound
}

func (s *Service) DeleteEntry(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries()
	if err != nil {
		return err
	}

	remaining, ok := DeleteByDate(entries, date)
	if !ok {
		return domain.ErrEntryNotFound
	}
	return s.repo.SaveEntries(remaining)
}

// DeleteByPeriod 只能删除当前存在记录的具体周期，不能选择全部
func (s *Service) DeleteByPeriod(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries()
	if err != nil {
		return 0, err
	}

	listed := false
	for _, option := range payroll.ListPeriods(entries) {
		if option.Key == key && key != domain.AllPeriodsKey {
			listed = true
			break
		}
	}
	if !listed {
		return 0, fmt.Errorf("%w: 计薪周期 %q 不存在", domain.ErrInvalidSelection, key)
	}

	remaining, n := DeleteByPeriod(entries, key)
	if err := s.repo.SaveEntries(remaining); err != nil {
		return 0, err
	}

	s.logger.Info("已按计薪周期删除记录", zap.String("period", key), zap.Int("count", n))
	return n, nil
}

func (s *Service) DeleteBefore(cutoff string) (int, error) {
	date, err := payroll.ParseDate(cutoff)
	if err != nil {
		return 0, err
	}
	cutoff = date.Format(domain.DateLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries()
	if err != nil {
		return 0, err
	}

	remaining, n := DeleteBefore(entries, cutoff)
	if n == 0 {
		return 0, nil
	}
	if err := s.repo.SaveEntries(remaining); err != nil {
		return 0, err
	}

	s.logger.Info("已删除截止日期之前的记录", zap.String("cutoff", cutoff), zap.Int("count", n))
	return n, nil
}

func (s *Service) Periods() (PeriodList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries()
	if err != nil {
		return PeriodList{}, err
	}

	return PeriodList{
		Periods:  payroll.ListPeriods(entries),
		Selected: payroll.LatestPeriodKey(entries),
	}, nil
}

// PeriodEntries 返回周期内的记录及其汇总，key 为空或 latest 时使用最近一个周期
func (s *Service) PeriodEntries(key string) ([]domain.DtrEntry, domain.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadEntries()
	if err != nil {
		return nil, domain.Summary{}, err
	}
	settings, err := s.repo.LoadSettings()
	if err != nil {
		return nil, domain.Summary{}, err
	}

	if key == "" || key == LatestPeriod {
		key = payroll.LatestPeriodKey(entries)
	}
	option, err := payroll.ResolvePeriod(key)
	if err != nil {
		return nil, domain.Summary{}, err
	}
	filtered, err := payroll.FilterEntries(entries, key)
	if err != nil {
		return nil, domain.Summary{}, err
	}

	summary := payroll.Summarize(filtered, settings)
	summary.Period = option
	return filtered, summary, nil
}

func (s *Service) Summary(key string) (domain.Summary, error) {
	_, summary, err := s.PeriodEntries(key)
	return summary, err
}

func (s *Service) Settings() (domain.PaySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.LoadSettings()
}

func (s *Service) ChangeSettings(settings domain.PaySettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.SaveSettings(settings)
}

func validateSettings(settings domain.PaySettings) error {
	if settings.MonthlySalary < 0 || settings.AdminAllowance < 0 {
		return fmt.Errorf("%w: 月薪和津贴不能为负数", domain.ErrInvalidFormat)
	}
	return nil
}

func (s *Service) Holidays() (HolidayList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.loadRegistry()
	if err != nil {
		return HolidayList{}, err
	}

	return HolidayList{
		Statutory: registry.Statutory(),
		Custom:    registry.Custom(),
	}, nil
}

// SaveHoliday 不会重新分类已保存的记录
func (s *Service) SaveHoliday(input HolidayInput) (domain.Holiday, error) {
	h, err := buildHoliday(input)
	if err != nil {
		return domain.Holiday{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.loadRegistry()
	if err != nil {
		return domain.Holiday{}, err
	}

	if input.Statutory {
		registry.UpsertStatutory(h)
		return h, s.repo.SaveStatutoryHolidays(registry.StatutoryMap())
	}

	registry.UpsertCustom(h)
	return h, s.repo.SaveCustomHolidays(registry.Custom())
}

func buildHoliday(input HolidayInput) (domain.Holiday, error) {
	h := domain.Holiday{
		Date: strings.TrimSpace(input.Date),
		Name: strings.TrimSpace(input.Name),
		Kind: input.Kind,
	}
	switch {
	case h.Date == "":
		return domain.Holiday{}, fmt.Errorf("%w: 节假日日期", domain.ErrMissingField)
	case h.Name == "":
		return domain.Holiday{}, fmt.Errorf("%w: 节假日名称", domain.ErrMissingField)
	}
	if _, err := payroll.ParseDate(h.Date); err != nil {
		return domain.Holiday{}, err
	}
	if _, err := domain.ParseHolidayKind(string(h.Kind)); err != nil {
		return domain.Holiday{}, err
	}
	return h, nil
}

func (s *Service) DeleteCustomHoliday(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.loadRegistry()
	if err != nil {
		return err
	}

	if !registry.DeleteCustom(date) {
		if _, src, ok := registry.Lookup(date); ok && src == domain.HolidaySourceStatutory {
			return domain.ErrStatutoryHoliday
		}
		return domain.ErrHolidayNotFound
	}
	return s.repo.SaveCustomHolidays(registry.Custom())
}

// ImportHolidays 把 ICS 日历中的事件合并到自定义节假日，返回导入的数量
func (s *Service) ImportHolidays(r io.Reader, defaultKind domain.HolidayKind) (int, error) {
	holidays, err := holiday.ParseICS(r, defaultKind)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.loadRegistry()
	if err != nil {
		return 0, err
	}
	for _, h := range holidays {
		registry.UpsertCustom(h)
	}
	if err := s.repo.SaveCustomHolidays(registry.Custom()); err != nil {
		return 0, err
	}

	s.logger.Info("已导入节假日", zap.Int("count", len(holidays)))
	return len(holidays), nil
}

// Reset 清空所有记录、薪资设置和节假日，法定节假日会在下次使用时重新初始化
func (s *Service) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		return err
	}

	s.logger.Warn("已清空所有数据")
	return nil
}

// loadRegistry 调用方必须持有锁。首次使用时把内置法定节假日写入存储
func (s *Service) loadRegistry() (*holiday.Registry, error) {
	statutory, found, err := s.repo.LoadStatutoryHolidays()
	if err != nil {
		return nil, err
	}
	if !found {
		statutory = holiday.BuiltinStatutory()
		if err := s.repo.SaveStatutoryHolidays(statutory); err != nil {
			return nil, err
		}
		s.logger.Info("已初始化法定节假日", zap.Int("count", len(statutory)))
	}

	custom, err := s.repo.LoadCustomHolidays()
	if err != nil {
		return nil, err
	}

	return holiday.NewRegistry(statutory, custom), nil
}
