// Package format identifies the kind of page source a file holds.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// JSON indicates a page dump: a JSON array of pages, each holding
	// blocks of lines of positioned spans.
	JSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case JSON:
		return ".json"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

var pdfMagic = []byte("%PDF")

// DetectFromMagic checks the leading bytes of a file. JSON is recognized
// by its first non-whitespace byte, so arbitrary text starting with '{' or
// '[' also reads as JSON; the decoder rejects it later.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, pdfMagic) {
		return PDF
	}

	// Some producers put junk before the header; PDF readers tolerate it
	// within the first 1024 bytes.
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	if bytes.Contains(head, pdfMagic) {
		return PDF
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}
	return Unknown
}

// DetectFromReader reads the start of r and inspects its magic bytes
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 1024)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile inspects the file content first and falls back to the
// extension when the content is inconclusive
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	detected, err := DetectFromReader(f)
	if err != nil {
		return Unknown, err
	}
	if detected != Unknown {
		return detected, nil
	}
	return Detect(path), nil
}
