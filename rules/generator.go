package rules

import (
	"context"

	"github.com/partlab/datasheet/retrieve"
)

// Generator produces a design-rule checklist for a device from retrieved
// document evidence. Implementations return rules in the checklist schema;
// callers normalize, validate, and deduplicate the result and filter pin
// references against the document's pin table.
type Generator interface {
	Generate(ctx context.Context, device string, evidence []retrieve.Chunk, pinContext string) ([]Rule, error)
}
