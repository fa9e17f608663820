package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/database"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/holiday"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/logger"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/repository"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/seed"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/utils"
	"go.uber.org/zap"
)

func main() {
	var op int
	var n int
	var end string
	var file string
	var url string
	var kind string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机工时记录, 2: 导入 ICS 节假日, 3: 清空所有数据, 4: 导入 CSV 工时表)")
	flag.IntVar(&n, "n", 10, "要插入的随机记录数量")
	flag.StringVar(&end, "end", "", "随机记录的最后一天 (YYYY-MM-DD)，默认为今天")
	flag.StringVar(&file, "file", "", "要导入的 ICS 或 CSV 文件路径")
	flag.StringVar(&url, "url", "", "要导入的 ICS 日历地址，支持 webcal://")
	flag.StringVar(&kind, "kind", string(domain.HolidaySpecial), "ICS 事件未标注类型时使用的节假日类型 (REGULAR 或 SPECIAL)")
	flag.Parse()

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Error("无法读取配置文件", zap.Error(err))
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Error("无法创建 logger", zap.Error(err))
		os.Exit(1)
	}
	defer log.Sync()

	// 连接 redis
	var rdb *redis.Client
	if cfg.Storage.Driver == config.StorageRedis {
		rdb, err = database.OpenRedis(cfg)
		if err != nil {
			log.Error("无法连接到 redis", zap.Error(err))
			return
		}
		defer rdb.Close()
	}

	// 打开存储
	store, closer, err := repository.OpenStore(cfg, rdb, log)
	if err != nil {
		log.Error("无法打开存储", zap.Error(err))
		return
	}
	defer closer.Close()

	// 创建 service
	repo := repository.NewRepository(cfg, store, log)
	service := timecard.NewService(repo, log)

	// 执行操作
	switch op {
	case 0:
		log.Error("未指定操作")
	case 1:
		if n <= 0 {
			log.Error("请输入合法的记录数量")
			return
		}

		endDate := time.Now()
		if end != "" {
			endDate, err = time.Parse(domain.DateLayout, end)
			if err != nil {
				log.Error("结束日期格式错误", zap.String("end", end))
				return
			}
		}

		cnt := 0
		for _, day := range utils.GenerateRandomWorkdays(endDate, n) {
			input := utils.GenerateRandomEntryInput(day)
			if _, err := service.SaveEntry(input); err != nil {
				log.Error("无法插入工时记录", zap.String("date", input.Date), zap.Error(err))
				continue
			}

			cnt++
		}

		log.Info("插入工时记录成功", zap.Int("count", cnt))
	case 2:
		defaultKind, err := domain.ParseHolidayKind(kind)
		if err != nil {
			log.Error("节假日类型非法", zap.Error(err))
			return
		}

		// 优先读取本地文件，否则下载 url
		var r io.ReadCloser
		switch {
		case file != "":
			r, err = os.Open(file)
		case url != "":
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Holiday.ICSFetchTimeout)*time.Second)
			defer cancel()
			r, err = holiday.FetchICS(ctx, url)
		default:
			log.Error("请通过 -file 或 -url 指定日历")
			return
		}
		if err != nil {
			log.Error("无法读取日历", zap.Error(err))
			return
		}
		defer r.Close()

		count, err := service.ImportHolidays(r, defaultKind)
		if err != nil {
			log.Error("无法导入节假日", zap.Error(err))
			return
		}

		log.Info("导入节假日成功", zap.Int("count", count))
	case 3:
		if err := service.Reset(); err != nil {
			log.Error("无法清空数据", zap.Error(err))
			return
		}

		log.Info("已清空所有数据")
	case 4:
		if file == "" {
			log.Error("请通过 -file 指定 CSV 文件")
			return
		}

		f, err := os.Open(file)
		if err != nil {
			log.Error("无法打开 CSV 文件", zap.Error(err))
			return
		}
		defer f.Close()

		if _, err := seed.ImportTimesheet(service, f, log); err != nil {
			log.Error("无法导入 CSV 工时表", zap.Error(err))
			return
		}
	default:
		log.Error("指定的操作非法")
	}
}
