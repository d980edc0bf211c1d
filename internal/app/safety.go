package app

import (
	"errors"
	"strings"

	appErrors "photosort/internal/errors"
)

var errNestedTarget = errors.New("target cannot be a sub folder of source")

// IsSubPath reports whether targetRoot starts with sourceRoot. This is a
// string prefix test: "/a/src2" counts as inside "/a/src".
func IsSubPath(sourceRoot, targetRoot string) bool {
	return strings.HasPrefix(targetRoot, sourceRoot)
}

// CheckPaths must pass before anything is walked, otherwise the walk could
// pick up files it has just moved.
func CheckPaths(sourceRoot, targetRoot string) error {
	if IsSubPath(sourceRoot, targetRoot) {
		return appErrors.Wrap(appErrors.NestedTarget, "check", targetRoot, errNestedTarget)
	}
	return nil
}
