package datasheet

import (
	"io/fs"

	"github.com/partlab/datasheet/format"
)

// ErrNotFound reports that the input path does not exist. It matches the
// operating system's not-exist errors, so errors.Is recognizes wrapped
// open failures.
var ErrNotFound = fs.ErrNotExist

// ErrUnsupportedFormat reports an input whose extension is neither
// HTML nor PDF.
var ErrUnsupportedFormat = format.ErrUnsupported
