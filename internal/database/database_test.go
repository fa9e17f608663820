package database

import (
	"path/filepath"
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"go.uber.org/zap"
)

func newSQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageSQLite
	cfg.Database.DSN = filepath.Join(t.TempDir(), "dtr.db")
	cfg.Database.ConnectTimeout = 5
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 1
	cfg.Database.MaxIdleTime = 60
	return cfg
}

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(newSQLiteConfig(t), zap.NewNop())
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM dtr_documents`).Scan(&count); err != nil {
		t.Fatalf("迁移后应存在 dtr_documents 表: %v", err)
	}
	if count != 0 {
		t.Errorf("新数据库期望 0 行，实际 %d", count)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := newSQLiteConfig(t)
	cfg.Storage.Driver = config.StorageMemory
	if _, err := Open(cfg, zap.NewNop()); err == nil {
		t.Error("memory 驱动不应打开数据库")
	}
}

func TestRebind(t *testing.T) {
	query := `INSERT INTO t (a, b) VALUES (?, ?)`

	pg := &DB{driver: config.StoragePostgres}
	if got := pg.Rebind(query); got != `INSERT INTO t (a, b) VALUES ($1, $2)` {
		t.Errorf("postgres 占位符改写错误: %s", got)
	}

	lite := &DB{driver: config.StorageSQLite}
	if got := lite.Rebind(query); got != query {
		t.Errorf("sqlite 不应改写占位符: %s", got)
	}
}
