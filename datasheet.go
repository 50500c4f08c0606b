// Package datasheet extracts structured candidate data from technical
// documents: device and part identifiers, package codes, and pin-assignment
// tables, from HTML pages or PDF files.
//
// Basic usage:
//
//	id, err := datasheet.Identify("stm32f103c8.pdf")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.DeviceName, id.Packages)
//
// With options:
//
//	pins, err := datasheet.ExtractPinTableWithOptions("board.html", datasheet.Options{
//	    Logger:   logger,
//	    MaxPages: 5,
//	})
//
// For advanced use cases, the lower-level identify and pintable packages
// expose the same pipelines as reusable extractors.
package datasheet

import (
	"fmt"

	"github.com/partlab/datasheet/identify"
	"github.com/partlab/datasheet/model"
	"github.com/partlab/datasheet/pintable"
)

// Identify extracts the device identifier, ranked part-number candidates,
// and package codes from a document. Missing paths report [ErrNotFound],
// unrecognized extensions [ErrUnsupportedFormat]; both match via errors.Is.
//
// Example:
//
//	id, err := datasheet.Identify("docs/msp430g2553.html")
func Identify(path string) (model.Identification, error) {
	return IdentifyWithOptions(path, Options{})
}

// IdentifyWithOptions is [Identify] with explicit configuration.
func IdentifyWithOptions(path string, opts Options) (model.Identification, error) {
	opts = opts.withDefaults()
	ex, err := identify.New(opts.Vocabulary)
	if err != nil {
		return model.Identification{}, fmt.Errorf("identify: %w", err)
	}
	ex.WithLogger(opts.Logger)
	if opts.MaxPages != 0 {
		ex.WithMaxPages(opts.MaxPages)
	}
	return ex.File(path)
}

// ExtractPinTable extracts the best pin-assignment table of a document,
// keyed by package label. Documents without a credible pin table, in an
// unsupported format, or unreadable as PDF yield the sentinel header-only
// table rather than an error; only a markup file that cannot be opened
// fails.
//
// Example:
//
//	pins, err := datasheet.ExtractPinTable("docs/stm32f103c8.pdf")
//	for _, row := range pins[pintable.DefaultLabel].Rows {
//	    fmt.Println(row)
//	}
func ExtractPinTable(path string) (map[string]model.Table, error) {
	return ExtractPinTableWithOptions(path, Options{})
}

// ExtractPinTableWithOptions is [ExtractPinTable] with explicit
// configuration.
func ExtractPinTableWithOptions(path string, opts Options) (map[string]model.Table, error) {
	opts = opts.withDefaults()
	ex := pintable.New(opts.Vocabulary).WithLogger(opts.Logger)
	if opts.MaxPages != 0 {
		ex.WithMaxPages(opts.MaxPages)
	}
	ex.Scorer().WithCorrectedWideBonus(opts.CorrectedWideBonus)
	return ex.File(path)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	id := datasheet.Must(datasheet.Identify("doc.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
