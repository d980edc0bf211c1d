package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	infrafs "photosort/internal/infra/fs"
	"photosort/internal/logging"
	"photosort/internal/testutil"
)

func TestWalkVisitsRegularFilesOnly(t *testing.T) {
	mock := &mockFS{entries: []mockEntry{
		{path: "/src", isDir: true},
		{path: "/src/sub", isDir: true},
		{path: "/src/sub/photo1.jpg"},
		{path: "/src/sub/photo2.jpg"},
		{path: "/src/sub/link.jpg", mode: fs.ModeSymlink},
	}}

	var visited []string
	err := Walk(mock, "/src", logging.Logger{}, func(path string) error {
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(visited)
	if len(visited) != 2 || visited[0] != "/src/sub/photo1.jpg" || visited[1] != "/src/sub/photo2.jpg" {
		t.Fatalf("unexpected visits %v", visited)
	}
}

func TestWalkStopsOnVisitError(t *testing.T) {
	mock := &mockFS{entries: []mockEntry{{path: "/src/a.jpg"}, {path: "/src/b.jpg"}}}
	boom := errors.New("boom")

	calls := 0
	err := Walk(mock, "/src", logging.Logger{}, func(string) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected visit error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected walk to stop after first error, got %d calls", calls)
	}
}

func TestWalkReturnsRootError(t *testing.T) {
	mock := &mockFS{walkErr: fs.ErrNotExist}
	err := Walk(mock, "/missing", logging.Logger{}, func(string) error { return nil })
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWalkRealTree(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, "sub", "photo1.jpg"), nil)
	testutil.WriteFile(t, filepath.Join(root, "sub", "photo2.jpg"), nil)
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var errOut bytes.Buffer
	var visited []string
	err := Walk(infrafs.OSFS{}, root, logging.New(nil, &errOut, false), func(path string) error {
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(visited)
	want := []string{filepath.Join(root, "sub", "photo1.jpg"), filepath.Join(root, "sub", "photo2.jpg")}
	if len(visited) != 2 || visited[0] != want[0] || visited[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, visited)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestWalkSkipsUnreadableSubdirectory(t *testing.T) {
	mock := &mockFS{entries: []mockEntry{
		{path: "/src", isDir: true},
		{path: "/src/locked", isDir: true, err: fs.ErrPermission},
		{path: "/src/locked/hidden.jpg"},
		{path: "/src/open", isDir: true},
		{path: "/src/open/photo.jpg"},
	}}

	var errOut bytes.Buffer
	var visited []string
	err := Walk(mock, "/src", logging.New(nil, &errOut, false), func(path string) error {
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("expected walk to continue, got %v", err)
	}
	if len(visited) != 1 || visited[0] != "/src/open/photo.jpg" {
		t.Fatalf("unexpected visits %v", visited)
	}
	if got := errOut.String(); got != "Error: /src/locked: permission denied\n" {
		t.Fatalf("unexpected stderr %q", got)
	}
}

func TestWalkFileRootVisitsNothing(t *testing.T) {
	mock := &mockFS{entries: []mockEntry{{path: "/src/img.jpg"}}}

	calls := 0
	err := Walk(mock, "/src/img.jpg", logging.Logger{}, func(string) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no visits for a file root, got %d", calls)
	}
}
