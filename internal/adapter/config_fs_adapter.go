// Package adapter contains infrastructure adapters for the configready CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/przeslijmi/configready/internal/model"
)

// ConfigFSAdapter abstracts the filesystem operations the aggregation
// workflow relies on. It intentionally hides direct `os` access so the
// domain logic can be tested against fakes without touching the disk.
type ConfigFSAdapter interface {
	// ListSubdirs returns the names of the immediate subdirectories of
	// path, in the order the platform lists them. Entries that are not
	// directories are filtered out.
	ListSubdirs(path m.Path) ([]string, error)

	// FileExists reports whether a regular file exists at path. Absence
	// is not an error.
	FileExists(path m.Path) (bool, error)

	// CopyFileIfAbsent copies src to dst byte for byte unless dst already
	// exists. The destination is created with O_EXCL, so the existence
	// check and the create are one atomic step and a pre-existing file is
	// never truncated. It reports whether a copy happened.
	CopyFileIfAbsent(src, dst m.Path) (bool, error)

	// WriteFileIfAbsent writes content to path unless a file already
	// exists there. It reports whether the file was created.
	WriteFileIfAbsent(path m.Path, content []byte, perm os.FileMode) (bool, error)

	// WriteFile writes content to path, replacing any previous content.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates the directory at path along with missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// Remove deletes the file at path.
	Remove(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalConfigFSAdapter is the os-backed implementation of ConfigFSAdapter.
type LocalConfigFSAdapter struct{}

// NewLocalConfigFSAdapter constructs a LocalConfigFSAdapter ready to be
// wired into the aggregator.
func NewLocalConfigFSAdapter() *LocalConfigFSAdapter {
	return &LocalConfigFSAdapter{}
}

// ListSubdirs lists the immediate subdirectories of path.
func (a *LocalConfigFSAdapter) ListSubdirs(path m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, err
	}

	var names []string

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}

// FileExists reports whether a regular file exists at path.
func (a *LocalConfigFSAdapter) FileExists(path m.Path) (bool, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// CopyFileIfAbsent copies src to dst unless dst already exists.
func (a *LocalConfigFSAdapter) CopyFileIfAbsent(src, dst m.Path) (bool, error) {
	// #nosec G304 - src is a discovered specimen path, not user input
	source, err := os.Open(string(src))
	if err != nil {
		return false, fmt.Errorf("open source %s: %w", src, err)
	}

	defer func() { _ = source.Close() }()

	dest, err := os.OpenFile(string(dst), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}

		return false, fmt.Errorf("create %s: %w", dst, err)
	}

	defer func() { _ = dest.Close() }()

	if _, err := io.Copy(dest, source); err != nil {
		return false, fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	return true, nil
}

// WriteFileIfAbsent writes content to path unless the file already exists.
func (a *LocalConfigFSAdapter) WriteFileIfAbsent(path m.Path, content []byte, perm os.FileMode) (bool, error) {
	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}

		return false, fmt.Errorf("create %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	if _, err := f.Write(content); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}

	return true, nil
}

// WriteFile writes content to path, replacing any previous content.
func (a *LocalConfigFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates the directory at path along with missing parents.
func (a *LocalConfigFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// Remove deletes the file at path.
func (a *LocalConfigFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalConfigFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
