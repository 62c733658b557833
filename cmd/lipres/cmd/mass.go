package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smz-lab/lipres/pkg/core"
)

var massCmd = &cobra.Command{
	Use:   "mass <identifier>...",
	Short: "Compute approximate molecular masses of lipid identifiers",
	Long: `Compute the approximate molecular mass of each lipid identifier from
its class backbone and fatty-acid residues. With --amount, also convert
the measured amount into an absolute molecule count.

For multi-isomer identifiers the first isomer arrangement is used; all
arrangements of an isobar share the same total composition, so the mass
is the same whichever is picked.

Examples:
  lipres mass "TAG 16:0/16:0/16:0"
  lipres mass --amount 2.5 --unit picomole "PC 16:0/18:1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMass,
}

func runMass(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}

	unit, err := core.ParseUnit(unitName)
	if err != nil {
		return err
	}

	calc := core.NewMassCalculator()
	calc.RequireKnownClass = strictClass

	failed := 0
	for _, raw := range args {
		id, err := core.Parse(raw, vocab)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			failed++
			continue
		}

		mass, err := calc.Mass(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			failed++
			continue
		}

		if amount > 0 {
			molecules, err := core.Molecules(amount, unit)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%.4f\t%.6e molecules\n", raw, mass, molecules)
		} else {
			fmt.Printf("%s\t%.4f\n", raw, mass)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d identifiers could not be processed", failed)
	}
	return nil
}
