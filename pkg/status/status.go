// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome represents the per-file result of a rewrite
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeUpdated           // File was rewritten
	OutcomeUnchanged         // File was processed but nothing matched
	OutcomeNotFound          // Path does not exist
	OutcomeFailed            // Read, transform, or write failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeNotFound:
		return "not found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileEntry contains the recorded result for one target
type FileEntry struct {
	Path         string  // Target path as configured
	Outcome      Outcome // Final classification
	Replacements int     // Number of rewrites applied
	Err          error   // Underlying failure, if any
}

// 📈 Summary aggregates outcomes across a whole run
type Summary struct {
	Entries   []FileEntry // One entry per target, in processing order
	Updated   int
	Unchanged int
	NotFound  int
	Failed    int
}

// Total returns the number of targets evaluated
func (s Summary) Total() int {
	return len(s.Entries)
}

// Ok reports whether the run had no failures
func (s Summary) Ok() bool {
	return s.Failed == 0
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	FileExists(ctx context.Context, path string) (bool, error)

	// WriteFileAtomic writes via a temp file plus rename so a crash
	// mid-write never leaves a truncated target behind
	WriteFileAtomic(ctx context.Context, path string, content []byte) error

	// Backup operations
	BackupFile(ctx context.Context, path string) error
	RestoreFile(ctx context.Context, path string) error
}

// 📈 Reporter records per-target outcomes as the run progresses
type Reporter interface {
	Record(ctx context.Context, entry FileEntry)
	Summary(ctx context.Context) Summary
}

// 🔧 Manager implements both FileManager and Reporter
type Manager struct {
	logger *zerolog.Logger

	mu      sync.Mutex
	entries []FileEntry
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger: logger,
	}
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	// Preserve the target's mode when it already exists
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	// Unique temp name: concurrent writers to the same target must not
	// share one, and a user file literally named <path>.tmp stays alone
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) BackupFile(ctx context.Context, path string) error {
	backupPath := path + ".bak"

	// Only backup if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Errorf("checking file existence: %w", err)
	}

	if err := copyFile(path, backupPath); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	return nil
}

func (m *Manager) RestoreFile(ctx context.Context, path string) error {
	backupPath := path + ".bak"

	// Check if backup exists
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Errorf("backup file does not exist")
	} else if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}

	if err := copyFile(backupPath, path); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}

	return nil
}

// Reporter interface implementation

func (m *Manager) Record(ctx context.Context, entry FileEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)

	evt := m.logger.Info()
	if entry.Outcome == OutcomeFailed {
		evt = m.logger.Error().Err(entry.Err)
	}
	evt.
		Str("path", entry.Path).
		Str("outcome", entry.Outcome.String()).
		Int("replacements", entry.Replacements).
		Msg("target processed")
}

func (m *Manager) Summary(ctx context.Context) Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	summary := Summary{
		Entries: make([]FileEntry, len(m.entries)),
	}
	copy(summary.Entries, m.entries)

	for _, entry := range m.entries {
		switch entry.Outcome {
		case OutcomeUpdated:
			summary.Updated++
		case OutcomeUnchanged:
			summary.Unchanged++
		case OutcomeNotFound:
			summary.NotFound++
		case OutcomeFailed:
			summary.Failed++
		}
	}

	return summary
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return nil
}
