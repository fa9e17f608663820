package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Storage struct {
		Driver           string `env:"DRIVER" envDefault:"sqlite"`
		OperationTimeout int    `env:"OPERATION_TIMEOUT" envDefault:"10"`
	} `envPrefix:"STORAGE_"`
	Database struct {
		DSN            string `env:"DSN"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	Redis struct {
		Enabled         bool   `env:"ENABLED" envDefault:"false"`
		Host            string `env:"HOST" envDefault:"localhost"`
		Port            int    `env:"PORT" envDefault:"6379"`
		Password        string `env:"PASSWORD"`
		DB              int    `env:"DB" envDefault:"0"`
		KeyPrefix       string `env:"KEY_PREFIX" envDefault:"dtr:"`
		ConnectTimeout  int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		PayslipThrottle int    `env:"PAYSLIP_THROTTLE" envDefault:"60"` // 同一周期两次发送工资单的最小间隔（秒）
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN"`
		Queue          string `env:"QUEUE" envDefault:"payslip_queue"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Email struct {
		PayslipRecipient string `env:"PAYSLIP_RECIPIENT"`
		SMTP             struct {
			Username    string `env:"USERNAME"`
			Password    string `env:"PASSWORD"`
			Host        string `env:"HOST"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Format string `env:"FORMAT" envDefault:"json"`
	} `envPrefix:"LOG_"`
	Holiday struct {
		ICSFetchTimeout int `env:"ICS_FETCH_TIMEOUT" envDefault:"30"`
	} `envPrefix:"HOLIDAY_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Driver {
	case StorageMemory, StorageRedis:
	case StorageSQLite:
		if cfg.Database.DSN == "" {
			cfg.Database.DSN = "dtr.db"
		}
	case StoragePostgres:
		if cfg.Database.DSN == "" {
			return errors.New("使用 postgres 存储时必须设置 DATABASE_DSN")
		}
	default:
		return fmt.Errorf("不支持的存储驱动 %q", cfg.Storage.Driver)
	}

	// redis 存储本身就需要连接 redis
	if cfg.Storage.Driver == StorageRedis {
		cfg.Redis.Enabled = true
	}

	return nil
}

// ValidateMailer 发送邮件的进程需要完整的 SMTP 与队列配置
func (cfg *Config) ValidateMailer() error {
	switch {
	case cfg.RabbitMQ.DSN == "":
		return errors.New("必须设置 RABBITMQ_DSN")
	case cfg.Email.SMTP.Host == "":
		return errors.New("必须设置 EMAIL_SMTP_HOST")
	case cfg.Email.SMTP.Username == "":
		return errors.New("必须设置 EMAIL_SMTP_USERNAME")
	case cfg.Email.SMTP.Password == "":
		return errors.New("必须设置 EMAIL_SMTP_PASSWORD")
	}
	return nil
}
