package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smz-lab/lipres/pkg/core"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Resolve free-text compound names against the vocabulary",
	Long: `Resolve free-text compound names (trivial names, synonyms, composite
esters) to their fatty-acid residues using the reference vocabulary.

Examples:
  lipres resolve "Linolenic acid" "Oleyl arachidonate"
  lipres resolve --vocab refmet.tsv "Docosahexaenoic acid"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}

	unknown := 0
	for _, name := range args {
		residues, err := vocab.Resolve(name)
		if err != nil {
			var unknownErr *core.UnknownCompoundError
			if errors.As(err, &unknownErr) {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				unknown++
				continue
			}
			return err
		}

		tokens := make([]string, len(residues))
		for i, r := range residues {
			tokens[i] = r.String()
		}
		fmt.Printf("%s\t%s\n", name, strings.Join(tokens, " "))
	}

	if unknown > 0 {
		return fmt.Errorf("%d names not found in vocabulary", unknown)
	}
	return nil
}
