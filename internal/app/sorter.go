package app

import (
	"context"
	"errors"

	"photosort/internal/domain"
	"photosort/internal/logging"
)

// ProgressFunc is called after each file has been handled.
type ProgressFunc func(domain.Progress)

type Sorter struct {
	FS         FileSystem
	Exif       TimestampReader
	Logger     logging.Logger
	DryRun     bool
	OnProgress ProgressFunc
}

// Sort moves every photo under sourceDir into its dated place below
// targetDir, one file at a time. On error or cancellation the summary covers
// the files handled so far; those moves are not undone.
func (s *Sorter) Sort(ctx context.Context, sourceDir, targetDir string) (domain.Summary, error) {
	if s.FS == nil || s.Exif == nil {
		return domain.Summary{}, errors.New("sorter requires FS and Exif")
	}

	stop := s.Logger.Measure("Sorting " + sourceDir)
	defer stop()

	relocator := Relocator{
		FS: s.FS,
		Paths: Destination{
			Root:      targetDir,
			Extractor: &Extractor{Reader: s.Exif, Logger: s.Logger},
		},
		Logger: s.Logger,
		DryRun: s.DryRun,
	}

	var summary domain.Summary
	err := Walk(s.FS, sourceDir, s.Logger, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		outcome, err := relocator.Relocate(path)
		if err != nil {
			return err
		}
		summary.Record(outcome)
		if s.OnProgress != nil {
			s.OnProgress(domain.Progress{
				Processed: summary.Processed,
				Moved:     summary.Moved + summary.Planned,
				Skipped:   summary.Skipped,
				Current:   path,
			})
		}
		return nil
	})

	s.Logger.Verbosef("Processed %d files: %d moved, %d planned, %d skipped", summary.Processed, summary.Moved, summary.Planned, summary.Skipped)
	return summary, err
}
