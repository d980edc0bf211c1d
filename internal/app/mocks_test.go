package app

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

type mockFS struct {
	entries   []mockEntry
	exists    map[string]bool
	walkErr   error
	mkdirErr  error
	renameErr error

	mkdirs  []string
	renames [][2]string
}

type mockEntry struct {
	path  string
	isDir bool
	mode  fs.FileMode
	// err is handed to the walk callback, as WalkDir does for an unreadable directory.
	err error
}

func (m *mockFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	if m.walkErr != nil {
		return fn(root, nil, m.walkErr)
	}
	skipped := ""
	for _, entry := range m.entries {
		if skipped != "" && strings.HasPrefix(entry.path, skipped+"/") {
			continue
		}
		dirEntry := mockDirEntry{name: filepath.Base(entry.path), isDir: entry.isDir, mode: entry.mode}
		if err := fn(entry.path, dirEntry, entry.err); err != nil {
			if errors.Is(err, filepath.SkipDir) {
				if entry.isDir {
					skipped = entry.path
				}
				continue
			}
			return err
		}
	}
	return nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	for _, entry := range m.entries {
		if entry.path == path {
			return mockFileInfo{name: filepath.Base(path), isDir: entry.isDir}, nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) Exists(path string) (bool, error) {
	return m.exists[path], nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mkdirs = append(m.mkdirs, path)
	return m.mkdirErr
}

func (m *mockFS) Rename(src, dst string) error {
	m.renames = append(m.renames, [2]string{src, dst})
	return m.renameErr
}

type mockExif struct {
	timestamps map[string]string
	err        error
}

func (m mockExif) DateTimeOriginal(path string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if ts, ok := m.timestamps[path]; ok {
		return ts, nil
	}
	return "", errors.New("missing exif")
}

type mockDirEntry struct {
	name  string
	isDir bool
	mode  fs.FileMode
}

func (m mockDirEntry) Name() string { return m.name }
func (m mockDirEntry) IsDir() bool  { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode {
	if m.isDir {
		return fs.ModeDir
	}
	return m.mode
}
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name  string
	isDir bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }
