package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// BuildPath returns {targetRoot}/{year}/{month}/{day}_{hhmmss}_{basename}.
// It never touches the filesystem.
func BuildPath(targetRoot string, ts CaptureTime, basename string) string {
	name := fmt.Sprintf("%02d_%02d%02d%02d_%s", ts.Day, ts.Hour, ts.Minute, ts.Second, basename)
	return filepath.Join(targetRoot, strconv.Itoa(ts.Year), fmt.Sprintf("%02d", int(ts.Month)), name)
}
