package main

import (
	"fmt"
	"io"
	"strings"

	"underground/internal/blockmap"
	"underground/internal/elements"
	"underground/internal/orbital"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	nobleGas  bool
	showBoxes bool
)

// configCmd prints the ground-state configuration of one element
var configCmd = &cobra.Command{
	Use:   "config [element]",
	Short: "Print the electron configuration of an element",
	Long: `Prints the Auto-mode configuration for an element given by symbol, name or
atomic number. Defaults to ui.default_element from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

// elementsCmd lists the playable elements
var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the elements on tonight's bill",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printElements(cmd.OutOrStdout())
		return nil
	},
}

// blockmapCmd prints the block map
var blockmapCmd = &cobra.Command{
	Use:   "blockmap",
	Short: "Print the periodic table block map for Z=1-30",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBlockMap(cmd.OutOrStdout())
		return nil
	},
}

func runConfig(cmd *cobra.Command, args []string) error {
	e := cfg.StartElement()
	if len(args) == 1 {
		var err error
		if e, err = elements.Lookup(args[0]); err != nil {
			return err
		}
	}

	occ := orbital.Target(e.Number)
	notation := orbital.Notation(occ, e.Number, nobleGas)
	logger.Debug("computed configuration",
		zap.Int("z", e.Number),
		zap.Bool("noble", nobleGas),
		zap.String("notation", notation))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", e, notation)
	if e.Rebellious() {
		fmt.Fprintln(out, "REBEL: steals from 4s to settle 3d")
	}
	if showBoxes {
		fmt.Fprintln(out)
		printBoxes(out, occ, e.Number, nobleGas)
	}
	return nil
}

// printBoxes draws one line per subshell, highest energy first.
func printBoxes(w io.Writer, occ orbital.Occupancy, z int, noble bool) {
	rows := orbital.Subshells()
	if noble {
		if v := orbital.NobleCoreVisible(z); v != nil {
			rows = v
		}
	}
	for r := len(rows) - 1; r >= 0; r-- {
		s := rows[r]
		var sb strings.Builder
		for i := range s.Boxes {
			switch occ.Get(s.Box(i)) {
			case 0:
				sb.WriteString("[  ]")
			case 1:
				sb.WriteString("[↑ ]")
			default:
				sb.WriteString("[↑↓]")
			}
		}
		fmt.Fprintf(w, "%-3s %s %d/%d\n", s.Key(), sb.String(), occ.Aggregate(s.N, s.Letter), s.Capacity)
	}
}

func printElements(w io.Writer) {
	for _, e := range elements.All() {
		marker := ""
		if e.Rebellious() {
			marker = "  rebel"
		}
		fmt.Fprintf(w, "%3d  %-2s  %-11s %s-block%s\n", e.Number, e.Symbol, e.Name, e.Block(), marker)
	}
}

func printBlockMap(w io.Writer) {
	for _, row := range blockmap.Grid(orbital.MaxAtomicNumber) {
		var sb strings.Builder
		for _, c := range row {
			if c == nil {
				sb.WriteString("  . ")
				continue
			}
			fmt.Fprintf(&sb, "%3d%s", c.Z, c.Block)
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
	fmt.Fprintln(w)
	for _, l := range []orbital.Letter{orbital.LetterS, orbital.LetterP, orbital.LetterD} {
		fmt.Fprintf(w, "%s: %s\n", l, blockmap.Blurb(l))
	}
}
