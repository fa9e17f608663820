package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/database"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/handler"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/logger"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/repository"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
	"go.uber.org/zap"
)

func main() {
	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		// 此时还没有按配置创建的 logger
		bootstrap, _ := zap.NewProduction()
		bootstrap.Error("无法加载配置文件", zap.Error(err))
		os.Exit(1)
	}

	/**********************************************
	 * 创建 logger
	 **********************************************/
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Error("无法创建 logger", zap.Error(err))
		os.Exit(1)
	}
	defer log.Sync()

	/**********************************************
	 * 连接 redis
	 **********************************************/
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.OpenRedis(cfg)
		if err != nil {
			log.Error("无法连接到 redis", zap.Error(err))
			return
		}
		defer rdb.Close()
	}

	/**********************************************
	 * 打开存储
	 **********************************************/
	store, closer, err := repository.OpenStore(cfg, rdb, log)
	if err != nil {
		log.Error("无法打开存储", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return
	}
	defer closer.Close()

	/**********************************************
	 * 创建 repository 与 service
	 **********************************************/
	repo := repository.NewRepository(cfg, store, log)
	service := timecard.NewService(repo, log)

	/**********************************************
	 * 连接 rabbitmq
	 **********************************************/
	// 未配置 RABBITMQ_DSN 时不能发送工资单，其余功能不受影响
	var publisher handler.MailPublisher
	if cfg.RabbitMQ.DSN != "" {
		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			log.Error("无法连接到 rabbitmq", zap.Error(err))
			return
		}
		defer conn.Close()

		// 建立通道
		ch, err := conn.Channel()
		if err != nil {
			log.Error("无法建立通道", zap.Error(err))
			return
		}
		defer ch.Close()

		// 声明队列
		_, err = ch.QueueDeclare(
			cfg.RabbitMQ.Queue,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			log.Error("无法声明队列", zap.Error(err))
			return
		}
		publisher = ch
	} else {
		log.Warn("未配置 rabbitmq，工资单邮件功能不可用")
	}

	/**********************************************
	 * 创建 handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, service, log, publisher, rdb)
	if err != nil {
		log.Error("无法创建 handler", zap.Error(err))
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	errorLog, err := zap.NewStdLogAt(log, zap.ErrorLevel)
	if err != nil {
		log.Error("无法创建 HTTP 错误日志", zap.Error(err))
		return
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     errorLog,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("正在启动服务器...", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("无法启动服务器", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("关闭服务器失败", zap.Error(err))
	}
	log.Info("服务器已成功关闭")
}
