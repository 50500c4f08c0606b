package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partlab/datasheet"
	"github.com/partlab/datasheet/pintable"
	"github.com/partlab/datasheet/rules"
)

var (
	pinsOut    string
	pinsFormat string
)

var pinsCmd = &cobra.Command{
	Use:   "pins <file>",
	Short: "Extract the best pin-assignment table",
	Long: `Pins extracts the highest-scoring pin-assignment table of a document,
keyed by package label, with headers normalized to the canonical set.
Documents without a credible table yield the header-only sentinel.

The default JSON output carries every labeled table. The tsv, csv, and
markdown formats render the default table alone, and context prints the
generator prompt block capped by the pin_table_topn setting.

Examples:
  datasheet pins stm32f103c8.pdf
  datasheet pins --format markdown board.html`,
	Args: cobra.ExactArgs(1),
	RunE: runPins,
}

func init() {
	pinsCmd.Flags().StringVarP(&pinsOut, "output", "o", "", "Output file path (default: stdout)")
	pinsCmd.Flags().StringVar(&pinsFormat, "format", "json", "Output format: json, tsv, csv, markdown, context")
}

func runPins(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	voc, err := loadVocabulary()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	tables, err := datasheet.ExtractPinTableWithOptions(args[0], datasheet.Options{
		Logger:     logger,
		MaxPages:   pageCap(settings),
		Vocabulary: voc,
	})
	if err != nil {
		return err
	}

	table := tables[pintable.DefaultLabel]
	switch pinsFormat {
	case "json":
		return writeJSON(pinsOut, tables)
	case "tsv":
		return writeText(pinsOut, table.ToTSV())
	case "csv":
		return writeText(pinsOut, table.ToCSV())
	case "markdown":
		return writeText(pinsOut, table.ToMarkdown())
	case "context":
		return writeText(pinsOut, rules.FormatPinContext(table, settings.PinTableTopN))
	default:
		return fmt.Errorf("unknown format %q: must be json, tsv, csv, markdown, or context", pinsFormat)
	}
}
