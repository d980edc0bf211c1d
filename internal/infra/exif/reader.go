package exif

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"

	"photosort/internal/domain"
)

// ErrNoCaptureTime is returned when the EXIF block carries no DateTimeOriginal tag.
var ErrNoCaptureTime = errors.New("exif: no DateTimeOriginal tag")

var jpegSOI = []byte{0xFF, 0xD8}

type Reader struct{}

// DateTimeOriginal returns the raw "YYYY:MM:DD HH:MM:SS" capture time of the image at path.
// A JPEG without an Exif segment yields domain.ErrNoExif.
func (Reader) DateTimeOriginal(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	r := bufio.NewReader(file)
	head, _ := r.Peek(len(jpegSOI))
	isJPEG := bytes.Equal(head, jpegSOI)

	x, err := goexif.Decode(r)
	if err != nil && (x == nil || goexif.IsCriticalError(err)) {
		if isJPEG && missingExifSegment(err) {
			return "", domain.ErrNoExif
		}
		return "", err
	}

	tag, err := x.Get(goexif.DateTimeOriginal)
	if err != nil {
		return "", ErrNoCaptureTime
	}
	return tag.StringVal()
}

// goexif hits EOF while scanning for APP1, or finds an APP1 that is not Exif.
func missingExifSegment(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		strings.Contains(err.Error(), "EOF") ||
		strings.Contains(err.Error(), "failed to find exif intro marker")
}
