package app

import (
	"path/filepath"

	"photosort/internal/domain"
)

// Destination places files under Root by their capture time.
type Destination struct {
	Root      string
	Extractor *Extractor
}

func (d Destination) TargetPath(src string) (string, bool) {
	ts, ok := d.Extractor.Extract(src)
	if !ok {
		return "", false
	}
	return domain.BuildPath(d.Root, ts, filepath.Base(src)), true
}
