package seed

import (
	"strings"
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/repository"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
	"go.uber.org/zap"
)

func TestImportTimesheet(t *testing.T) {
	cfg := &config.Config{}
	repo := repository.NewRepository(cfg, repository.NewMemoryStore(), zap.NewNop())
	svc := timecard.NewService(repo, zap.NewNop())

	csv := strings.Join([]string{
		"date,location,time_in,time_out,break_minutes,regular,total_hours",
		"2025-04-08,Office,09:00,18:00,60,8,8",
		"2025-04-09,,22:00,06:00,0,0,0",
		"2025-04-10,Office,09:00,09:00,0,0,0",
		"TOTAL,,,,,8,8",
	}, "\n")

	res, err := ImportTimesheet(svc, strings.NewReader(csv), zap.NewNop())
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 1 {
		t.Errorf("期望导入 2 条跳过 1 条，实际 %+v", res)
	}

	entries, _ := svc.Entries()
	if len(entries) != 2 || entries[1].Hours.Total() != 8 {
		t.Errorf("导入结果错误: %+v", entries)
	}
}
