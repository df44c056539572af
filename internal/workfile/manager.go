package workfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/storage"
)

// Manager guarantees a disk-backed working copy of a remotely stored file
// exists before processing and reclaims it afterward. Object storage is the
// source of truth; any stage may run on a process that never saw the bytes.
type Manager struct {
	store   storage.ObjectStore
	workDir string
	logger  *slog.Logger
}

func NewManager(store storage.ObjectStore, workDir string, logger *slog.Logger) *Manager {
	if workDir == "" {
		workDir = "./tmp"
	}
	return &Manager{store: store, workDir: workDir, logger: logger}
}

// LocalPath returns the deterministic working-copy location for a file.
func (m *Manager) LocalPath(fileID, ext string) string {
	return filepath.Join(m.workDir, fileID+"."+constants.NormalizeExt(ext))
}

// EnsureLocalFile returns existingLocalPath if it points at a non-empty
// file, otherwise downloads the remote object into the work directory.
// A missing remote object is terminal: the owner has to re-upload.
func (m *Manager) EnsureLocalFile(ctx context.Context, remotePath, fileID, ext, existingLocalPath string) (string, error) {
	if existingLocalPath != "" {
		if fi, err := os.Stat(existingLocalPath); err == nil && fi.Size() > 0 {
			return existingLocalPath, nil
		}
	}

	if err := os.MkdirAll(m.workDir, 0o755); err != nil {
		return "", common.NewInternalError("create work dir", err)
	}

	rc, err := m.store.Get(ctx, remotePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", common.NewSourceNotFoundError(remotePath, err)
		}
		return "", common.NewTransientError(fmt.Sprintf("download %s", remotePath), err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			m.logger.Warn("close remote object reader", "path", remotePath, "error", cerr)
		}
	}()

	local := m.LocalPath(fileID, ext)
	f, err := os.Create(local)
	if err != nil {
		return "", common.NewInternalError("create local working copy", err)
	}
	if _, err := io.Copy(f, rc); err != nil {
		_ = f.Close()
		_ = os.Remove(local)
		return "", common.NewTransientError(fmt.Sprintf("write local copy of %s", remotePath), err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(local)
		return "", common.NewInternalError("close local working copy", err)
	}

	m.logger.Debug("materialized local working copy", "file_id", fileID, "remote", remotePath, "local", local)
	return local, nil
}

// ProcessWithCleanup materializes the working copy, invokes fn with its
// path, and removes the copy on every exit path. Cleanup failure is logged,
// never propagated: a stray local file is a hygiene issue, not a
// correctness one.
func (m *Manager) ProcessWithCleanup(ctx context.Context, remotePath, fileID, ext string, fn func(localPath string) error) error {
	local, err := m.EnsureLocalFile(ctx, remotePath, fileID, ext, "")
	if err != nil {
		return err
	}
	defer m.Remove(local)
	return fn(local)
}

// Remove deletes a working copy, best effort.
func (m *Manager) Remove(localPath string) {
	if localPath == "" {
		return
	}
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		m.logger.Warn("failed to remove local working copy", "path", localPath, "error", err)
	}
}

// SweepStale removes working copies older than maxAge. Used as the
// conservative fallback when a late cleanup stage finds its chain metadata
// already expired.
func (m *Manager) SweepStale(maxAge time.Duration) int {
	entries, err := os.ReadDir(m.workDir)
	if err != nil {
		if !os.IsNotExist(err) {
			m.logger.Warn("stale sweep: read work dir", "dir", m.workDir, "error", err)
		}
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(m.workDir, e.Name())
		if err := os.Remove(path); err != nil {
			m.logger.Warn("stale sweep: remove", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		m.logger.Info("stale sweep removed working copies", "dir", m.workDir, "removed", removed)
	}
	return removed
}
