package app

import (
	"errors"
	"path/filepath"

	"photosort/internal/domain"
	appErrors "photosort/internal/errors"
	"photosort/internal/logging"
)

var errDestinationExists = errors.New("destination already exists")

// Relocator moves one file to the place its PathMaker picks.
type Relocator struct {
	FS     FileSystem
	Paths  PathMaker
	Logger logging.Logger
	DryRun bool
}

func (r *Relocator) Relocate(src string) (domain.Outcome, error) {
	r.Logger.Infof("processing: %s", src)

	target, ok := r.Paths.TargetPath(src)
	if !ok {
		return domain.OutcomeSkipped, nil
	}

	r.Logger.Infof("%s -> %s", src, target)
	if r.DryRun {
		return domain.OutcomePlanned, nil
	}

	dir := filepath.Dir(target)
	if err := r.FS.MkdirAll(dir, 0o755); err != nil {
		return domain.OutcomeSkipped, appErrors.Wrap(appErrors.IOFailure, "mkdir", dir, err)
	}

	// rename(2) silently replaces an existing file on unix; refuse instead.
	exists, err := r.FS.Exists(target)
	if err != nil {
		return domain.OutcomeSkipped, appErrors.Wrap(appErrors.IOFailure, "stat", target, err)
	}
	if exists {
		return domain.OutcomeSkipped, appErrors.Wrap(appErrors.Collision, "rename", target, errDestinationExists)
	}

	if err := r.FS.Rename(src, target); err != nil {
		return domain.OutcomeSkipped, appErrors.Wrap(appErrors.IOFailure, "rename", src, err)
	}
	return domain.OutcomeMoved, nil
}
