package app

import (
	"io/fs"
)

type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(src, dst string) error
}

// TimestampReader returns the raw EXIF capture time string of a file.
type TimestampReader interface {
	DateTimeOriginal(path string) (string, error)
}

// PathMaker computes where a source file belongs. ok is false when the
// file has no usable capture time and must stay where it is.
type PathMaker interface {
	TargetPath(src string) (target string, ok bool)
}

// PathFunc adapts a plain function to PathMaker.
type PathFunc func(src string) (string, bool)

func (f PathFunc) TargetPath(src string) (string, bool) {
	return f(src)
}
