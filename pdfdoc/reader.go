// Package pdfdoc provides paginated document reading for extraction.
//
// A Document wraps one open PDF and exposes per-page text, positional text
// bits, and detected tables. The handle is scoped to a single document:
// open, extract, close. Per-page failures are absorbed and logged so one
// malformed page cannot block extraction from the rest of the document.
package pdfdoc

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/partlab/datasheet/model"
)

// titleClip bounds how much of page 1 becomes the title.
const titleClip = 200

// headingLineMax rejects page lines too long to be headings.
const headingLineMax = 120

// headingLinesPerPage caps how many leading lines per page count as headings.
const headingLinesPerPage = 10

// Document is one open paginated document.
type Document struct {
	file   *os.File
	reader *pdf.Reader
	log    *zap.Logger
}

// Open opens a PDF file. The caller owns the handle and must Close it.
func Open(filename string) (*Document, error) {
	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	return &Document{file: f, reader: r, log: zap.NewNop()}, nil
}

// WithLogger sets the logger used for absorbed per-page failures.
func (d *Document) WithLogger(log *zap.Logger) *Document {
	if log != nil {
		d.log = log
	}
	return d
}

// Close releases the underlying file handle. Safe to call twice.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageText returns the plain text of one page (1-based). The underlying
// parser panics on some malformed content streams, so failures of any kind
// surface as errors here.
func (d *Document) PageText(pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d text: %v", pageNum, r)
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d text: %w", pageNum, err)
	}
	return text, nil
}

// Bits extracts the document's positional text: document-info metadata
// strings, the head of page 1 as the title, short leading lines of each page
// as headings, and all page text as the body. maxPages caps the scan when
// positive. Page failures are absorbed as empty text.
func (d *Document) Bits(maxPages int) model.TextBits {
	bits := model.TextBits{Meta: d.docInfo()}

	n := d.reader.NumPage()
	if maxPages > 0 && n > maxPages {
		n = maxPages
	}

	var body []string
	for i := 1; i <= n; i++ {
		txt, err := d.PageText(i)
		if err != nil {
			d.log.Warn("skipping unreadable page", zap.Int("page", i), zap.Error(err))
			txt = ""
		}
		if i == 1 && bits.Title == "" {
			bits.Title = clipTitle(txt)
		}
		bits.Headings = append(bits.Headings, headingLines(txt)...)
		body = append(body, txt)
	}
	bits.Body = strings.Join(body, " ")
	return bits
}

// docInfo returns the non-empty string values of the document-info
// dictionary, in key order.
func (d *Document) docInfo() []string {
	defer func() {
		// Malformed cross references can panic inside the resolver.
		recover()
	}()

	info := d.reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return nil
	}
	var meta []string
	for _, k := range info.Keys() {
		v := info.Key(k)
		if v.Kind() != pdf.String {
			continue
		}
		if s := strings.TrimSpace(v.RawString()); s != "" {
			meta = append(meta, s)
		}
	}
	return meta
}

// clipTitle returns the first characters of page text as a title.
func clipTitle(text string) string {
	runes := []rune(text)
	if len(runes) > titleClip {
		runes = runes[:titleClip]
	}
	return strings.TrimSpace(string(runes))
}

// headingLines returns the leading short lines of a page.
func headingLines(text string) []string {
	var out []string
	for i, line := range strings.Split(text, "\n") {
		if i >= headingLinesPerPage {
			break
		}
		l := strings.TrimSpace(line)
		if n := utf8.RuneCountInString(l); n > 0 && n < headingLineMax {
			out = append(out, l)
		}
	}
	return out
}
