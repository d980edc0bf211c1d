// Package testutil builds image fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

const (
	tagOrientation      = 0x0112
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003
	typeASCII           = 2
	typeShort           = 3
	typeLong            = 4
)

// ExifTIFF returns a little-endian TIFF block whose Exif sub-IFD holds a
// single DateTimeOriginal tag set to dateTime.
func ExifTIFF(dateTime string) []byte {
	value := append([]byte(dateTime), 0)

	const (
		ifd0Offset = 8
		ifdSize    = 2 + 12 + 4
		exifOffset = ifd0Offset + ifdSize
		dataOffset = exifOffset + ifdSize
	)

	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("II")
	binary.Write(&b, le, uint16(42))
	binary.Write(&b, le, uint32(ifd0Offset))

	writeIFD(&b, tagExifIFDPointer, typeLong, 1, exifOffset)

	writeIFD(&b, tagDateTimeOriginal, typeASCII, uint32(len(value)), dataOffset)
	b.Write(value)
	return b.Bytes()
}

// TIFFWithoutCaptureTime returns a valid TIFF block whose only tag is Orientation.
func TIFFWithoutCaptureTime() []byte {
	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("II")
	binary.Write(&b, le, uint16(42))
	binary.Write(&b, le, uint32(8))
	writeIFD(&b, tagOrientation, typeShort, 1, 1)
	return b.Bytes()
}

// PlainJPEG is a JPEG with no APP1 segment at all.
func PlainJPEG() []byte {
	return []byte{0xFF, 0xD8, 0xFF, 0xD9}
}

func writeIFD(b *bytes.Buffer, tag, typ uint16, count, value uint32) {
	le := binary.LittleEndian
	binary.Write(b, le, uint16(1))
	binary.Write(b, le, tag)
	binary.Write(b, le, typ)
	binary.Write(b, le, count)
	binary.Write(b, le, value)
	binary.Write(b, le, uint32(0))
}

// ExifJPEG wraps ExifTIFF in a minimal JPEG: SOI, an APP1 Exif segment, EOI.
func ExifJPEG(dateTime string) []byte {
	payload := append([]byte("Exif\x00\x00"), ExifTIFF(dateTime)...)

	var b bytes.Buffer
	b.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&b, binary.BigEndian, uint16(len(payload)+2))
	b.Write(payload)
	b.Write([]byte{0xFF, 0xD9})
	return b.Bytes()
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
