package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

// Workspace is a scratch directory owned by one run.
type Workspace struct {
	dir    string
	logger *slog.Logger
	closed bool
}

// NewWorkspace creates a fresh directory under parent, or under the system
// temp dir when parent is empty.
func NewWorkspace(parent string, logger *slog.Logger) (*Workspace, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dir, err := os.MkdirTemp(parent, "timetable-*")
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	logger.Debug("workspace created", "dir", dir)
	return &Workspace{dir: dir, logger: logger}, nil
}

// Dir is the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path joins name onto the workspace directory.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, filepath.Base(name))
}

// Close removes the workspace. Removal is retried since files may still be
// held open briefly on some platforms.
func (w *Workspace) Close(ctx context.Context) error {
	if w.closed {
		return nil
	}
	err := retry.Do(
		func() error {
			return os.RemoveAll(w.dir)
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(50*time.Millisecond),
		retry.MaxDelay(2*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			w.logger.Debug("retrying workspace removal", "attempt", n+1, "dir", w.dir, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("removing workspace %s: %w", w.dir, err)
	}
	w.closed = true
	return nil
}
