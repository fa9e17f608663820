package seed

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
	"go.uber.org/zap"
)

// TimesheetRow 是导入用 CSV 的一行，列名与导出的 CSV 一致，工时列会被忽略并重新计算
type TimesheetRow struct {
	Date         string `csv:"date"`
	Location     string `csv:"location"`
	TimeIn       string `csv:"time_in"`
	TimeOut      string `csv:"time_out"`
	BreakMinutes int    `csv:"break_minutes"`
}

type Result struct {
	Imported int
	Skipped  int
}

// ImportTimesheet 逐行保存记录，单行失败只记录日志并跳过。导出文件中的 TOTAL 行同样跳过
func ImportTimesheet(svc *timecard.Service, r io.Reader, logger *zap.Logger) (Result, error) {
	var rows []TimesheetRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return Result{}, fmt.Errorf("无法解析 CSV: %w", err)
	}

	var res Result
	for i, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Date), "TOTAL") {
			continue
		}

		_, err := svc.SaveEntry(timecard.EntryInput{
			Date:         row.Date,
			Location:     row.Location,
			TimeIn:       row.TimeIn,
			TimeOut:      row.TimeOut,
			BreakMinutes: row.BreakMinutes,
		})
		if err != nil {
			// 表头占第 1 行
			logger.Warn("跳过无法导入的行", zap.Int("line", i+2), zap.String("date", row.Date), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Imported++
	}

	logger.Info("导入工时记录完成", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))
	return res, nil
}
