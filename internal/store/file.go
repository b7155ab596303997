// Package store persists the leave ledger as a single JSON document with
// two top-level collections: employees and leave_requests.
//
// Writes are whole-file rewrites through a temp-file-then-rename sequence,
// so a crash mid-write never leaves a truncated document behind. An
// advisory lock (github.com/gofrs/flock) keeps two processes from rewriting
// the same document at once.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/hrleave/leavectl/internal/leave"
)

// File is a file-backed snapshot store. It implements leave.Saver.
type File struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewFile creates a store for the document at path. The lock file lives next
// to the document; it must be a stable path because the document itself is
// replaced on every save. A nil logger falls back to slog.Default().
func NewFile(path string, logger *slog.Logger) *File {
	if logger == nil {
		logger = slog.Default()
	}
	return &File{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}
}

// Path returns the document path.
func (f *File) Path() string { return f.path }

// Load reads the document. A missing file is not an error: it yields an
// empty snapshot, matching first-run behavior.
func (f *File) Load() (leave.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("data file not found, starting empty", "path", f.path)
		return leave.Snapshot{}, nil
	}
	if err != nil {
		return leave.Snapshot{}, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var snap leave.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return leave.Snapshot{}, fmt.Errorf("parsing %s: %w", f.path, err)
	}

	f.logger.Debug("loaded data file",
		"path", f.path,
		"employees", len(snap.Employees),
		"requests", len(snap.LeaveRequests))
	return snap, nil
}

// Save rewrites the whole document atomically.
func (f *File) Save(snap leave.Snapshot) error {
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", f.lock.Path(), err)
	}
	defer func() {
		if err := f.lock.Unlock(); err != nil {
			f.logger.Warn("releasing data file lock", "error", err)
		}
	}()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".leave-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	// Remove the temp file on any failure path; after a successful rename
	// this is a no-op.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}

	f.logger.Debug("saved data file", "path", f.path, "bytes", len(data))
	return nil
}
