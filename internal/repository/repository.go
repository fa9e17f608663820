package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"go.uber.org/zap"
)

// 持久化的文档键
const (
	KeyEntries           = "entries"
	KeySettings          = "settings"
	KeyStatutoryHolidays = "statutoryHolidays"
	KeyCustomHolidays    = "customHolidays"
)

var allKeys = []string{KeyEntries, KeySettings, KeyStatutoryHolidays, KeyCustomHolidays}

var ErrKeyNotFound = errors.New("键不存在")

// Store 按键保存 JSON 文档，键不存在时 Get 返回 ErrKeyNotFound
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type Repository struct {
	cfg      *config.Config
	store    Store
	validate *validator.Validate
	logger   *zap.Logger
}

func NewRepository(cfg *config.Config, store Store, logger *zap.Logger) *Repository {
	return &Repository{
		cfg:      cfg,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (r *Repository) newContext() (context.Context, context.CancelFunc) {
	if r.cfg.Storage.OperationTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Storage.OperationTimeout)*time.Second)
}

// load 读取并解码文档。返回的 found 为 false 表示文档不存在
func (r *Repository) load(key string, dst any) (bool, error) {
	ctx, cancel := r.newContext()
	defer cancel()

	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("读取 %s 失败: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, corrupt(key, err)
	}
	return true, nil
}

func (r *Repository) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := r.newContext()
	defer cancel()

	if err := r.store.Put(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("保存 %s 失败: %w", key, err)
	}
	return nil
}

// Clear 删除所有已保存的数据
func (r *Repository) Clear() error {
	ctx, cancel := r.newContext()
	defer cancel()

	if err := r.store.Delete(ctx, allKeys...); err != nil {
		return fmt.Errorf("清空数据失败: %w", err)
	}
	return nil
}

// logCorrupt 记录损坏的数据，调用方随后使用默认值继续运行
func (r *Repository) logCorrupt(key string, err error) {
	r.logger.Warn("已保存的数据无法解析，使用默认值", zap.String("key", key), zap.Error(err))
}

func corrupt(key string, cause error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrCorruptPersistedState, key, cause)
}

func isCorrupt(err error) bool {
	return errors.Is(err, domain.ErrCorruptPersistedState)
}
