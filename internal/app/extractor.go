package app

import (
	"errors"

	"photosort/internal/domain"
	"photosort/internal/logging"
)

// Extractor turns a file into a capture time. Failures are logged and
// reported as absent; a bad file never stops the run.
type Extractor struct {
	Reader TimestampReader
	Logger logging.Logger
}

func (e *Extractor) Extract(path string) (domain.CaptureTime, bool) {
	raw, err := e.Reader.DateTimeOriginal(path)
	if errors.Is(err, domain.ErrNoExif) {
		e.Logger.Verbosef("No EXIF data in %s", path)
		return domain.CaptureTime{}, false
	}
	if err != nil {
		e.Logger.Errorf("Error: %s: %v", path, err)
		return domain.CaptureTime{}, false
	}
	ts, err := domain.ParseCaptureTime(raw)
	if err != nil {
		e.Logger.Verbosef("Unparseable capture time %q in %s", raw, path)
		return domain.CaptureTime{}, false
	}
	return ts, true
}
