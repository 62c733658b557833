package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smz-lab/lipres/pkg/core"
	"github.com/smz-lab/lipres/pkg/filter"
)

var extractCmd = &cobra.Command{
	Use:   "extract [identifier]...",
	Short: "Extract fatty-acid residues from lipid identifiers",
	Long: `Extract individual fatty-acid residues from lipid identifiers, one
identifier per argument, or one per line on stdin when no arguments are given.

Each output line carries the original identifier, its residues in textual
order, and the ambiguity degree (the number of candidate isomer
arrangements the identifier expresses).

Examples:
  # Extract from arguments
  lipres extract "PG 18:1/20:1" "TAG 48:2 total (14:0/16:0/18:2)(14:0/16:1/18:1)(16:0/16:1/16:1)"

  # Extract from a file of identifiers, rejecting isobars
  lipres extract --drop-ambiguous < lipids.txt

  # Only long saturated chains
  lipres extract --saturated-only --min-carbons 16 < lipids.txt`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}

	filterConfig := &filter.Config{
		SaturatedOnly:   saturatedOnly,
		UnsaturatedOnly: unsaturatedOnly,
		MaxCarbons:      maxCarbons,
		MinCarbons:      minCarbons,
	}

	identifiers := args
	if len(identifiers) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				identifiers = append(identifiers, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
	}

	skipped := 0
	for _, raw := range identifiers {
		id, err := core.Parse(raw, vocab)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			skipped++
			continue
		}

		residues, degree := filterConfig.ApplyIdentifier(id, dropAmbiguous)
		if degree == 0 {
			fmt.Printf("%s\t-\tdropped (ambiguous)\n", raw)
			continue
		}

		tokens := make([]string, len(residues))
		for i, r := range residues {
			tokens[i] = r.String()
		}
		if showFamily {
			fmt.Printf("%s\t%s\t%s\tdegree=%d\n", raw, id.Family(), strings.Join(tokens, " "), degree)
		} else {
			fmt.Printf("%s\t%s\tdegree=%d\n", raw, strings.Join(tokens, " "), degree)
		}
	}

	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipped: %d identifiers\n", skipped)
	}

	return nil
}
