package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smz-lab/lipres/pkg/core"
	"github.com/smz-lab/lipres/pkg/reader/dataset"
	"github.com/smz-lab/lipres/pkg/table"
	"github.com/smz-lab/lipres/pkg/writer/sqlite"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Aggregate a lipid abundance table by fatty-acid residue",
	Long: `Transform a table of measured lipid abundances (lipid identifiers as
rows, samples as columns) into a table of per-residue abundances.

Each identifier's residues inherit its measured amount divided by the
number of isomer arrangements, so an isobar with three candidate
arrangements contributes a third of its amount through each.

Examples:
  # Tab- or comma-separated input, residue table on stdout
  lipres table -i lipidomics.csv

  # Absolute molecule counts from picomole measurements, into SQLite
  lipres table -i lipidomics.csv -o residues.db --absolute --unit picomole`,
	RunE: runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}

	unit, err := core.ParseUnit(unitName)
	if err != nil {
		return err
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	ds, err := dataset.ReadAll(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to read input table: %w", err)
	}

	opts := table.Options{
		DropAmbiguous:  dropAmbiguous,
		MissingValue:   missingValue,
		NoCleanup:      noCleanup,
		AbsoluteAmount: absoluteAmount,
		Unit:           unit,
		Vocabulary:     vocab,
		Warnings: func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", a...)
		},
	}
	if unwantedLabels != "" {
		for _, label := range strings.Split(unwantedLabels, ",") {
			opts.Unwanted = append(opts.Unwanted, strings.TrimSpace(label))
		}
	}

	result, err := table.MakeResiduesTable(ds, opts)
	if err != nil {
		return err
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintf(os.Stderr, "Skipped: %d row labels\n", len(result.Skipped))
	}

	switch {
	case outputFile == "":
		return result.WriteCSV(os.Stdout)
	case strings.ToLower(filepath.Ext(outputFile)) == ".db":
		writer, err := sqlite.NewTableWriter(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output database: %w", err)
		}
		if err := writer.Write(result, inputFile); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write residue table: %w", err)
		}
		if err := writer.Close(); err != nil {
			return err
		}
		fmt.Printf("Wrote %d residues x %d samples to %s\n",
			len(result.Residues), len(result.Samples), outputFile)
		return nil
	default:
		out, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
		if err := result.WriteCSV(out); err != nil {
			return err
		}
		fmt.Printf("Wrote %d residues x %d samples to %s\n",
			len(result.Residues), len(result.Samples), outputFile)
		return nil
	}
}
