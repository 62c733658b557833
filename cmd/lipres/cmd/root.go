// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smz-lab/lipres/pkg/core"
	"github.com/smz-lab/lipres/pkg/reader/refmet"
	"github.com/smz-lab/lipres/pkg/writer/sqlite"
)

var (
	// Shared vocabulary flags
	vocabFile       string
	customVocabFile string

	// Flags for extract command
	dropAmbiguous   bool
	saturatedOnly   bool
	unsaturatedOnly bool
	maxCarbons      uint
	minCarbons      uint
	showFamily      bool

	// Flags for mass command
	amount      float64
	unitName    string
	strictClass bool

	// Flags for table command
	inputFile      string
	outputFile     string
	absoluteAmount bool
	noCleanup      bool
	unwantedLabels string
	missingValue   float64

	// Flags for vocab command
	vocabInFile  string
	vocabOutFile string
)

var rootCmd = &cobra.Command{
	Use:   "lipres",
	Short: "lipres - Lipid residue extraction tool",
	Long: `lipres picks individual fatty-acid residues from complex lipid
identifiers and aggregates measured lipid abundances by residue.

It parses class-prefixed identifiers (PG 18:1/20:1), multi-isomer
identifiers (TAG 48:2 total (14:0/16:0/18:2)(14:0/16:1/18:1)(16:0/16:1/16:1)),
RefMet bracketed forms (TG(18:4_20:4_27:0)) and free-text compound names
resolved against a reference vocabulary.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(massCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(vocabCmd)

	rootCmd.PersistentFlags().StringVar(&vocabFile, "vocab", "", "Vocabulary source: a cache built by 'vocab convert' (.db) or a RefMet table (.csv/.tsv); built-in vocabulary if not specified")
	rootCmd.PersistentFlags().StringVar(&customVocabFile, "custom-vocab", "", "CSV of custom vocabulary entries (name,residues) layered on top")

	// Extract command flags
	extractCmd.Flags().BoolVar(&dropAmbiguous, "drop-ambiguous", false, "Reject identifiers with more than one isomer arrangement")
	extractCmd.Flags().BoolVar(&saturatedOnly, "saturated-only", false, "Keep only saturated residues")
	extractCmd.Flags().BoolVar(&unsaturatedOnly, "unsaturated-only", false, "Keep only unsaturated residues")
	extractCmd.Flags().UintVar(&maxCarbons, "max-carbons", 0, "Keep only residues with at most this many carbons (0 = no limit)")
	extractCmd.Flags().UintVar(&minCarbons, "min-carbons", 0, "Keep only residues with at least this many carbons")
	extractCmd.Flags().BoolVar(&showFamily, "family", false, "Print the full lipid family name of each identifier's class")

	// Mass command flags
	massCmd.Flags().Float64Var(&amount, "amount", 0, "Measured amount to convert to a molecule count")
	massCmd.Flags().StringVar(&unitName, "unit", "picomole", "Unit of the measured amount: femtomole, picomole, nanomole, micromole, millimole, mole")
	massCmd.Flags().BoolVar(&strictClass, "strict-class", false, "Fail on lipid classes absent from the class-mass table instead of treating them as zero")

	// Table command flags
	tableCmd.Flags().StringVarP(&inputFile, "in", "i", "", "Input abundance table (required)")
	tableCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output file: .db for SQLite, anything else for tab-separated text (stdout if not specified)")
	tableCmd.Flags().BoolVar(&dropAmbiguous, "drop-ambiguous", false, "Reject identifiers with more than one isomer arrangement")
	tableCmd.Flags().BoolVar(&absoluteAmount, "absolute", false, "Report absolute molecule counts instead of input units")
	tableCmd.Flags().StringVar(&unitName, "unit", "picomole", "Unit of the measured amounts (used with --absolute)")
	tableCmd.Flags().BoolVar(&noCleanup, "no-cleanup", false, "Keep rows normally excluded as unwanted (total, fc, tc)")
	tableCmd.Flags().StringVar(&unwantedLabels, "unwanted", "", "Comma-separated row labels to exclude (overrides the default set)")
	tableCmd.Flags().Float64Var(&missingValue, "missing", 0, "Replacement for missing measurements")

	tableCmd.MarkFlagRequired("in")
}

// loadVocabulary assembles the vocabulary from the configured sources:
// built-in defaults, then a cache or RefMet table, then custom entries.
func loadVocabulary() (*core.Vocabulary, error) {
	vocab := core.DefaultVocabulary()

	if vocabFile != "" {
		ext := strings.ToLower(filepath.Ext(vocabFile))
		switch ext {
		case ".db", ".sqlite":
			loaded, err := sqlite.LoadVocabulary(vocabFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load vocabulary cache: %w", err)
			}
			vocab = merge(vocab, loaded)
		case ".csv", ".tsv", ".txt":
			f, err := os.Open(vocabFile)
			if err != nil {
				return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
			}
			loaded, err := refmet.LoadVocabulary(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to read RefMet table: %w", err)
			}
			vocab = merge(vocab, loaded)
		default:
			return nil, fmt.Errorf("unrecognized vocabulary file extension %q, expected .db, .csv or .tsv", ext)
		}
	}

	if customVocabFile != "" {
		f, err := os.Open(customVocabFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open custom vocabulary: %w", err)
		}
		defer f.Close()
		if err := vocab.LoadFromCSV(f); err != nil {
			return nil, fmt.Errorf("failed to load custom vocabulary: %w", err)
		}
	}

	return vocab, nil
}

// merge layers the entries of b over a.
func merge(a, b *core.Vocabulary) *core.Vocabulary {
	b.Each(func(e core.ReferenceEntry) {
		a.AddEntry(e)
	})
	return a
}
