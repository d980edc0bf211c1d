package app

import (
	"io/fs"
	"path/filepath"

	"photosort/internal/logging"
)

// Walk calls visit for every regular file below root. Order is whatever the
// filesystem yields. Unreadable sub-directories are logged and skipped; an
// error on root itself, or from visit, ends the walk. A root that is not a
// directory yields nothing.
func Walk(fsys FileSystem, root string, logger logging.Logger, visit func(path string) error) error {
	return fsys.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root || d == nil || !d.IsDir() {
				return walkErr
			}
			logger.Errorf("Error: %s: %v", path, walkErr)
			return filepath.SkipDir
		}
		if path == root && !d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return visit(path)
	})
}
