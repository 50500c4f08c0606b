package datasheet

import (
	"go.uber.org/zap"

	"github.com/partlab/datasheet/vocab"
)

// Options configures the package-level operations. The zero value uses the
// built-in vocabulary, a no-op logger, and each operation's default page
// cap.
type Options struct {
	// Logger receives absorbed-failure warnings and traversal debug
	// output. Nil means discard.
	Logger *zap.Logger

	// MaxPages caps how many pages of a paginated document are read.
	// Zero keeps the operation's default: identification reads the
	// first 10 pages, pin-table extraction reads all pages. Negative
	// removes the cap.
	MaxPages int

	// Vocabulary overrides the built-in pattern tables.
	Vocabulary *vocab.Vocabulary

	// CorrectedWideBonus makes the pin-table scorer check the wider
	// header-count tier before the narrow one.
	CorrectedWideBonus bool
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Vocabulary == nil {
		o.Vocabulary = vocab.Default()
	}
	return o
}
