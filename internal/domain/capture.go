package domain

import (
	"errors"
	"strings"
	"time"
)

// CaptureLayout is the EXIF DateTimeOriginal format.
const CaptureLayout = "2006:01:02 15:04:05"

// CaptureTime is the moment a photo was taken as recorded by the camera.
// No time zone is attached; values are taken at face value.
type CaptureTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// CaptureTimeOf drops the location and sub-second part of t.
func CaptureTimeOf(t time.Time) CaptureTime {
	return CaptureTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// ParseCaptureTime parses a "YYYY:MM:DD HH:MM:SS" string.
func ParseCaptureTime(s string) (CaptureTime, error) {
	s = strings.TrimSpace(strings.TrimRight(s, "\x00"))
	parsed, err := time.Parse(CaptureLayout, s)
	if err != nil {
		return CaptureTime{}, err
	}
	return CaptureTimeOf(parsed), nil
}

// ErrNoExif means the file is a readable image without any EXIF block.
var ErrNoExif = errors.New("no EXIF data")
