package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/database"
	"go.uber.org/zap"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("期望 ErrKeyNotFound，实际 %v", err)
	}

	if err := store.Put(ctx, KeySettings, `{"monthlySalary":1}`); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := store.Put(ctx, KeySettings, `{"monthlySalary":2}`); err != nil {
		t.Fatalf("覆盖写入失败: %v", err)
	}
	v, err := store.Get(ctx, KeySettings)
	if err != nil || v != `{"monthlySalary":2}` {
		t.Fatalf("期望读回覆盖后的值，实际 %q (%v)", v, err)
	}

	if err := store.Put(ctx, KeyEntries, `[]`); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := store.Delete(ctx, KeySettings, KeyEntries, "missing"); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	for _, key := range []string{KeySettings, KeyEntries} {
		if _, err := store.Get(ctx, key); !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("%s 应已被删除，实际 %v", key, err)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLStore_SQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageSQLite
	cfg.Database.DSN = filepath.Join(t.TempDir(), "dtr.db")
	cfg.Database.ConnectTimeout = 5
	cfg.Database.MaxOpenConns = 1

	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("打开数据库失败: %v", err)
	}
	defer db.Close()

	exerciseStore(t, NewSQLStore(db))
}

// 需要设置 REDIS_TEST_ADDR 指向一个可写的 redis 实例
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("未设置 REDIS_TEST_ADDR")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	exerciseStore(t, NewRedisStore(rdb, fmt.Sprintf("dtr-test-%d:", os.Getpid())))
}
