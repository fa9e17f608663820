package repository

import (
	"errors"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/database"
	"go.uber.org/zap"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore 按 STORAGE_DRIVER 选择存储后端。返回的 Closer 只负责关闭本函数打开的连接，
// redis 客户端由调用方管理
func OpenStore(cfg *config.Config, rdb *redis.Client, logger *zap.Logger) (Store, io.Closer, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		logger.Warn("使用内存存储，进程退出后数据会丢失")
		return NewMemoryStore(), nopCloser{}, nil
	case config.StorageRedis:
		if rdb == nil {
			return nil, nil, errors.New("redis 存储需要 redis 客户端")
		}
		return NewRedisStore(rdb, cfg.Redis.KeyPrefix), nopCloser{}, nil
	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.Open(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLStore(db), db, nil
	default:
		return nil, nil, fmt.Errorf("不支持的存储驱动 %q", cfg.Storage.Driver)
	}
}
