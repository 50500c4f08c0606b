// Command datasheet mines technical documents for structured candidate
// data: device identifiers, package codes, pin-assignment tables, and
// keyword-ranked evidence for rule generation.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partlab/datasheet/config"
	"github.com/partlab/datasheet/internal/jsonenc"
	"github.com/partlab/datasheet/internal/logging"
	"github.com/partlab/datasheet/vocab"
)

var version = "0.1.0"

var (
	settingsPath string
	orgFlag      string
	vocabPath    string
	maxPages     int
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "datasheet",
	Short: "Extract structured data from technical documents",
	Long: `Datasheet mines HTML and PDF technical documents for structured
candidate data:

- device identifiers and ranked part-number candidates
- package codes
- pin-assignment tables normalized to canonical headers
- keyword-ranked evidence chunks for rule generation

Settings resolve from built-in defaults, an optional YAML settings file,
and the environment; a .env file in the working directory is honored.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to a YAML settings file")
	rootCmd.PersistentFlags().StringVar(&orgFlag, "org", "", "Organization profile (overrides the ORG variable)")
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocab", "", "Path to a vocabulary override file")
	rootCmd.PersistentFlags().IntVar(&maxPages, "max-pages", 0, "Page cap for paginated documents (0 = each operation's default, negative = no cap)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(pinsCmd)
	rootCmd.AddCommand(evidenceCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSettings resolves configuration, applying the --org flag before the
// environment is read so it wins over ORG.
func loadSettings() (*config.Settings, error) {
	if orgFlag != "" {
		if err := os.Setenv("ORG", orgFlag); err != nil {
			return nil, err
		}
	}
	return config.Load(settingsPath)
}

func loadVocabulary() (*vocab.Vocabulary, error) {
	if vocabPath == "" {
		return vocab.Default(), nil
	}
	return vocab.Load(vocabPath)
}

func newLogger() (*zap.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logging.New(logging.StyleTerminal, level)
}

// pageCap resolves the page cap for paginated documents: the --max-pages
// flag wins, then the pdf_max_pages setting. Zero keeps each operation's
// own default.
func pageCap(s *config.Settings) int {
	if maxPages != 0 {
		return maxPages
	}
	return s.PDFMaxPages
}

// writeJSON renders v as indented JSON to path, or stdout when path is
// empty.
func writeJSON(path string, v any) error {
	data, err := jsonenc.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(path, data, 0o644)
}

// writeText writes s to path, or stdout when path is empty.
func writeText(path, s string) error {
	if path == "" {
		fmt.Println(s)
		return nil
	}
	return os.WriteFile(path, []byte(s), 0o644)
}
