package main

import (
	"github.com/spf13/cobra"

	"github.com/partlab/datasheet/retrieve"
)

var (
	evidenceOut string
	evidenceK   int
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence <file> [query ...]",
	Short: "Retrieve the evidence chunks matching keyword queries",
	Long: `Evidence builds the document's retrieval graph and ranks its chunks
against the queries. Without explicit queries the organization profile's
priority categories and section keywords are used, so the default run
surfaces the passages a rule generator would read.

Examples:
  datasheet evidence stm32f103c8.pdf
  datasheet evidence --k 5 board.html "decoupling" "pin description"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEvidence,
}

func init() {
	evidenceCmd.Flags().StringVarP(&evidenceOut, "output", "o", "", "Output file path (default: stdout)")
	evidenceCmd.Flags().IntVar(&evidenceK, "k", 0, "How many chunks to return (0 = the retrieval_k setting)")
}

func runEvidence(cmd *cobra.Command, args []string) error {
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

	r := retrieve.New(voc).WithLogger(logger)
	if pages := pageCap(settings); pages != 0 {
		r.WithMaxPages(pages)
	}
	chunks, err := r.File(args[0])
	if err != nil {
		return err
	}

	queries := args[1:]
	if len(queries) == 0 {
		queries = settings.Profile.Queries()
	}
	k := evidenceK
	if k <= 0 {
		k = settings.RetrievalK
	}
	hits := r.Retrieve(chunks, queries, k)
	if settings.EvidenceTopN > 0 && len(hits) > settings.EvidenceTopN {
		hits = hits[:settings.EvidenceTopN]
	}
	return writeJSON(evidenceOut, hits)
}
