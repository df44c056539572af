package workfile

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/storage"
)

type storeFake struct {
	objects map[string][]byte
	getErr  error
}

func (f *storeFake) Get(_ context.Context, path string) (io.ReadCloser, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[path]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *storeFake) Put(_ context.Context, path string, data []byte, _ string) error {
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[path] = data
	return nil
}

func (f *storeFake) Delete(_ context.Context, path string) error {
	delete(f.objects, path)
	return nil
}

func (f *storeFake) Exists(_ context.Context, path string) (bool, error) {
	_, ok := f.objects[path]
	return ok, nil
}

func (f *storeFake) Stat(_ context.Context, path string) (storage.ObjectInfo, error) {
	data, ok := f.objects[path]
	if !ok {
		return storage.ObjectInfo{}, storage.ErrObjectNotFound
	}
	return storage.ObjectInfo{Size: int64(len(data))}, nil
}

func newTestManager(t *testing.T, store storage.ObjectStore) *Manager {
	t.Helper()
	return NewManager(store, t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEnsureLocalFileDownloads(t *testing.T) {
	store := &storeFake{objects: map[string][]byte{"originals/f1.pdf": []byte("pdf-bytes")}}
	m := newTestManager(t, store)

	local, err := m.EnsureLocalFile(context.Background(), "originals/f1.pdf", "f1", "pdf", "")
	if err != nil {
		t.Fatalf("EnsureLocalFile: %v", err)
	}
	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatalf("read local copy: %v", err)
	}
	if string(data) != "pdf-bytes" {
		t.Fatalf("local copy content = %q, want %q", data, "pdf-bytes")
	}
}

func TestEnsureLocalFileReusesExisting(t *testing.T) {
	store := &storeFake{getErr: errors.New("must not be called")}
	m := newTestManager(t, store)

	existing := filepath.Join(t.TempDir(), "existing.pdf")
	if err := os.WriteFile(existing, []byte("cached"), 0o644); err != nil {
		t.Fatal(err)
	}

	local, err := m.EnsureLocalFile(context.Background(), "originals/f1.pdf", "f1", "pdf", existing)
	if err != nil {
		t.Fatalf("EnsureLocalFile: %v", err)
	}
	if local != existing {
		t.Fatalf("local = %q, want existing path %q", local, existing)
	}
}

func TestEnsureLocalFileMissingRemoteIsTerminal(t *testing.T) {
	m := newTestManager(t, &storeFake{})

	_, err := m.EnsureLocalFile(context.Background(), "originals/gone.pdf", "f1", "pdf", "")
	if err == nil {
		t.Fatal("expected error for missing remote object")
	}
	if common.CodeOf(err) != common.CodeSourceNotFound {
		t.Fatalf("code = %s, want %s", common.CodeOf(err), common.CodeSourceNotFound)
	}
	if common.IsRetryable(err) {
		t.Fatal("missing source must not be retryable")
	}
}

func TestProcessWithCleanupRemovesOnSuccess(t *testing.T) {
	store := &storeFake{objects: map[string][]byte{"originals/f1.pdf": []byte("x")}}
	m := newTestManager(t, store)

	var seen string
	err := m.ProcessWithCleanup(context.Background(), "originals/f1.pdf", "f1", "pdf", func(localPath string) error {
		seen = localPath
		if _, err := os.Stat(localPath); err != nil {
			t.Fatalf("working copy missing inside callback: %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ProcessWithCleanup: %v", err)
	}
	if _, err := os.Stat(seen); !os.IsNotExist(err) {
		t.Fatalf("working copy %q still present after success", seen)
	}
}

func TestProcessWithCleanupRemovesOnFailure(t *testing.T) {
	store := &storeFake{objects: map[string][]byte{"originals/f1.pdf": []byte("x")}}
	m := newTestManager(t, store)

	boom := errors.New("stage exploded")
	var seen string
	err := m.ProcessWithCleanup(context.Background(), "originals/f1.pdf", "f1", "pdf", func(localPath string) error {
		seen = localPath
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if _, err := os.Stat(seen); !os.IsNotExist(err) {
		t.Fatalf("working copy %q still present after failure", seen)
	}
}

func TestSweepStale(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(&storeFake{}, dir, slog.New(slog.NewTextHandler(io.Discard, nil)))

	stale := filepath.Join(dir, "old.pdf")
	fresh := filepath.Join(dir, "new.pdf")
	for _, p := range []string{stale, fresh} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	old := time.Now().Add(-3 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatal(err)
	}

	removed := m.SweepStale(time.Hour)
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatal("stale file should have been removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatal("fresh file should have been kept")
	}
}
