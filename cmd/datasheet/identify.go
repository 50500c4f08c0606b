package main

import (
	"github.com/spf13/cobra"

	"github.com/partlab/datasheet"
)

var identifyOut string

var identifyCmd = &cobra.Command{
	Use:   "identify <file>",
	Short: "Extract the device identifier, part candidates, and package codes",
	Long: `Identify extracts the primary device identifier, ranked part-number
candidates, and package codes from one HTML or PDF document.

Examples:
  # Print identification JSON
  datasheet identify stm32f103c8.pdf

  # Scan more pages and write to a file
  datasheet identify --max-pages 20 -o id.json board.html`,
	Args: cobra.ExactArgs(1),
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().StringVarP(&identifyOut, "output", "o", "", "Output file path (default: stdout)")
}

func runIdentify(cmd *cobra.Command, args []string) error {
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

	id, err := datasheet.IdentifyWithOptions(args[0], datasheet.Options{
		Logger:     logger,
		MaxPages:   pageCap(settings),
		Vocabulary: voc,
	})
	if err != nil {
		return err
	}
	return writeJSON(identifyOut, id)
}
