package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/IceTiki/cfst-builder/internal/material"
	"github.com/spf13/cobra"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Look up and interpolate material grades",
	Long: `Commands for the material grade tables.

Material classes:
  concrete    GB 50010 concrete grades (C15 - C80)
  steel       GB 50017 structural steel, by plate thickness band
  steel_bar   GB 50010 reinforcing bars

Available subcommands:
  show    - Print a grade, or list the grades of a class
  interp  - Interpolate a grade by a target property value`,
}

func init() {
	rootCmd.AddCommand(materialCmd)
}

// printEntry prints the fields of a material record
func printEntry(e material.Entry) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     MATERIAL: %s\n", e.Name())
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Property\tValue\tUnit\n")
	fmt.Fprintf(w, "  ────────\t─────\t────\n")
	for _, f := range e.Fields() {
		if f.IsText {
			fmt.Fprintf(w, "  %s\t%s\t\n", f.Name, f.Text)
			continue
		}
		fmt.Fprintf(w, "  %s\t%g\t%s\n", f.Name, f.Value, f.Unit)
	}
	w.Flush()
	fmt.Println()
}
