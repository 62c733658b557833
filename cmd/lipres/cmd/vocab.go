package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smz-lab/lipres/pkg/reader/refmet"
	"github.com/smz-lab/lipres/pkg/writer/sqlite"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage vocabulary caches",
	Long: `Build and inspect SQLite vocabulary caches.

A cache is built once from a RefMet nomenclature table and then loaded
with --vocab on later runs, avoiding a re-parse of the source table.`,
}

var vocabConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a RefMet table to a SQLite vocabulary cache",
	Long: `Convert a RefMet nomenclature table (CSV or TSV) to a SQLite
vocabulary cache.

Rows whose name carries no residue composition are skipped.

Example:
  lipres vocab convert --in refmet.tsv --out refmet.db`,
	RunE: runVocabConvert,
}

var vocabInfoCmd = &cobra.Command{
	Use:   "info <cache.db>",
	Short: "Show metadata of a vocabulary cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocabInfo,
}

func init() {
	vocabCmd.AddCommand(vocabConvertCmd)
	vocabCmd.AddCommand(vocabInfoCmd)

	vocabConvertCmd.Flags().StringVarP(&vocabInFile, "in", "i", "", "Input RefMet table (required)")
	vocabConvertCmd.Flags().StringVarP(&vocabOutFile, "out", "o", "", "Output SQLite cache (required)")
	vocabConvertCmd.MarkFlagRequired("in")
	vocabConvertCmd.MarkFlagRequired("out")
}

func runVocabConvert(cmd *cobra.Command, args []string) error {
	f, err := os.Open(vocabInFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader, err := refmet.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read RefMet table: %w", err)
	}

	writer, err := sqlite.NewVocabWriter(vocabOutFile, vocabInFile)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}

	count := 0
	classes := make(map[string]bool)
	for reader.Next() {
		if err := writer.WriteEntry(*reader.Entry()); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write entry: %w", err)
		}
		count++
		if class := reader.MainClass(); class != "" {
			classes[class] = true
		}
	}
	if err := reader.Err(); err != nil {
		writer.Close()
		return fmt.Errorf("error reading RefMet table: %w", err)
	}

	if err := writer.Finalize(); err != nil {
		return fmt.Errorf("failed to finalize database: %w", err)
	}

	fmt.Printf("Converted %d entries across %d lipid classes to %s", count, len(classes), vocabOutFile)
	if skipped := reader.Skipped(); skipped > 0 {
		fmt.Printf(" (%d rows without residue composition skipped)", skipped)
	}
	fmt.Println()
	return nil
}

func runVocabInfo(cmd *cobra.Command, args []string) error {
	created, entries, source, err := sqlite.VocabInfo(args[0])
	if err != nil {
		return fmt.Errorf("failed to read cache metadata: %w", err)
	}

	fmt.Printf("Created:  %s\n", created)
	fmt.Printf("Entries:  %d\n", entries)
	fmt.Printf("Source:   %s\n", source)
	return nil
}
