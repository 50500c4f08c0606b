// Package format provides input format detection for the datasheet library.
package format

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported reports a document format the extractors do not handle.
var ErrUnsupported = errors.New("unsupported document format")

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates a markup document (.html or .htm).
	HTML
	// PDF indicates a paginated PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Supported reports whether the format is one the extractors understand.
func (f Format) Supported() bool {
	return f == HTML || f == PDF
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return HTML
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading content bytes to determine the format.
// Returns Unknown if the content is not recognizably PDF or HTML.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return PDF
	}
	if looksLikeHTML(data) {
		return HTML
	}
	return Unknown
}

// DetectFromReader reads the head of the content and detects its format.
// More reliable than extension-based detection for misnamed files.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	head := make([]byte, 512)
	n, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(head[:n]), nil
}

// looksLikeHTML checks for a doctype, html tag, or XHTML declaration
// after leading whitespace.
func looksLikeHTML(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}
	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<?XML") {
		return strings.Contains(upper[:min(500, len(upper))], "<HTML")
	}
	return false
}
