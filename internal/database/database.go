package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DB 在 database/sql 连接池之外记录驱动类型，用于改写占位符
type DB struct {
	*sql.DB
	driver string
	logger *zap.Logger
}

// Open 根据存储驱动打开 postgres (pgx) 或 sqlite (modernc) 连接池，并执行建表
func Open(cfg *config.Config, logger *zap.Logger) (*DB, error) {
	driverName, dsn := driverAndDSN(cfg.Storage.Driver, cfg.Database.DSN)
	if driverName == "" {
		return nil, fmt.Errorf("存储驱动 %q 不使用数据库", cfg.Storage.Driver)
	}

	dbpool, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("无法创建数据库连接池: %w", err)
	}

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("无法连接到数据库: %w", err)
	}

	db := &DB{
		DB:     dbpool,
		driver: cfg.Storage.Driver,
		logger: logger,
	}

	if err := db.migrate(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	logger.Info("数据库连接已建立", zap.String("driver", cfg.Storage.Driver))
	return db, nil
}

func driverAndDSN(driver, dsn string) (string, string) {
	switch driver {
	case config.StoragePostgres:
		return "pgx", dsn
	case config.StorageSQLite:
		// 多个请求同时写入时等待锁而不是立即失败
		if !strings.Contains(dsn, "?") {
			dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		}
		return "sqlite", dsn
	default:
		return "", ""
	}
}

func (db *DB) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS dtr_documents (
			doc_key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return err
		}
	}

	db.logger.Debug("数据库迁移完成")
	return nil
}

// Rebind 把 ? 占位符改写为 postgres 使用的 $1, $2 ...
func (db *DB) Rebind(query string) string {
	if db.driver != config.StoragePostgres {
		return query
	}

	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("关闭数据库失败: %w", err)
	}
	db.logger.Info("数据库连接已关闭")
	return nil
}
