package repository

import (
	"path/filepath"
	"testing"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"go.uber.org/zap"
)

func TestOpenStore(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
	}{
		{name: "memory", driver: config.StorageMemory},
		{name: "sqlite", driver: config.StorageSQLite},
		{name: "redis without client", driver: config.StorageRedis, wantErr: true},
		{name: "unknown", driver: "mongo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Storage.Driver = tt.driver
			cfg.Database.DSN = filepath.Join(t.TempDir(), "dtr.db")
			cfg.Database.ConnectTimeout = 5
			cfg.Database.MaxOpenConns = 1
			cfg.Database.MaxIdleConns = 1

			store, closer, err := OpenStore(cfg, nil, zap.NewNop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望返回错误")
				}
				return
			}
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			defer closer.Close()

			exerciseStore(t, store)
		})
	}
}
