package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/partlab/datasheet"
	"github.com/partlab/datasheet/format"
	"github.com/partlab/datasheet/internal/jsonenc"
	"github.com/partlab/datasheet/pintable"
	"github.com/partlab/datasheet/rules"
)

var (
	batchOut         string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract snapshots for every document in a directory",
	Long: `Batch scans a directory for HTML and PDF documents and writes one
snapshot JSON per document to the output directory, keyed by the extracted
device name (the file stem when identification finds none).

Each snapshot carries the source filename, the pin-assignment rows (the
canonical header row when no table was found), a rule checklist, and a
footnote slot. Checklists stay empty until a rule generator is wired in.

Examples:
  # Snapshots land in datasheets/output
  datasheet batch datasheets/

  # Wider pool, custom output directory
  datasheet batch --concurrency 8 --out results datasheets/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchOut, "out", "", "Output directory (default: <dir>/output)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "How many documents to process at once")
}

// snapshot is the per-document consumer contract for batch output.
type snapshot struct {
	Filename  string       `json:"filename"`
	Pin       [][]string   `json:"pin"`
	Checklist []rules.Rule `json:"checklist"`
	Footnote  string       `json:"footnote"`
}

type batchSummary struct {
	Done  bool   `json:"done"`
	Out   string `json:"out"`
	Count int    `json:"count"`
}

func runBatch(cmd *cobra.Command, args []string) error {
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

	dir := args[0]
	files, err := scanDocuments(dir)
	if err != nil {
		return err
	}
	outDir := batchOut
	if outDir == "" {
		outDir = filepath.Join(dir, "output")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	opts := datasheet.Options{
		Logger:     logger,
		MaxPages:   pageCap(settings),
		Vocabulary: voc,
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	if batchConcurrency > 0 {
		g.SetLimit(batchConcurrency)
	}
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("processing document", zap.String("file", file))
			if err := snapshotOne(file, outDir, opts); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(file), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("batch complete",
		zap.String("out", outDir), zap.Int("count", len(files)))
	return writeJSON("", batchSummary{Done: true, Out: outDir, Count: len(files)})
}

// snapshotOne extracts one document into <outDir>/<stem>.json, keyed by
// device name so downstream consumers can join snapshots on it.
func snapshotOne(path, outDir string, opts datasheet.Options) error {
	id, err := datasheet.IdentifyWithOptions(path, opts)
	if err != nil {
		return err
	}
	tables, err := datasheet.ExtractPinTableWithOptions(path, opts)
	if err != nil {
		return err
	}

	pin := tables[pintable.DefaultLabel].Rows
	if len(pin) == 0 {
		pin = [][]string{pintable.CanonicalHeaders()}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	key := id.DeviceName
	if key == "" {
		key = stem
	}
	out := map[string]snapshot{key: {
		Filename:  filepath.Base(path),
		Pin:       pin,
		Checklist: []rules.Rule{},
		Footnote:  "",
	}}
	data, err := jsonenc.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, stem+".json"), data, 0o644)
}

// scanDocuments lists the supported documents directly under dir, markup
// files before paginated ones.
func scanDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	var markup, paginated []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch format.Detect(path) {
		case format.HTML:
			markup = append(markup, path)
		case format.PDF:
			paginated = append(paginated, path)
		}
	}
	return append(markup, paginated...), nil
}
