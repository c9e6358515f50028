package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/IceTiki/cfst-builder/internal/config"
	"github.com/IceTiki/cfst-builder/internal/table"
	"github.com/IceTiki/cfst-builder/internal/version"
	"github.com/spf13/cobra"
)

var (
	tablesDir string
	envFile   string
	verbose   bool

	cfg   config.Config
	store *table.Store
)

var rootCmd = &cobra.Command{
	Use:   "cfst",
	Short: "Material data builder for concrete-filled steel tube columns",
	Long: `cfst - Concrete-Filled Steel Tube material builder

A CLI tool that prepares the material input of finite element models of
rectangular concrete-filled steel tube (CFST) columns with tie rods.

This tool helps structural engineers:
  - Look up concrete, structural steel and rebar grades (GB 50010 / GB 50017)
  - Interpolate a material grade from any tabulated property
  - Tabulate stress-strain curves of the steel tube, tie bars and the
    confined core concrete
  - Assemble the complete material set of a specimen
  - Transport reference point motion to any point of a rigid end face

Units are N and mm (MPa) throughout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(io.Discard)
		if verbose {
			log.SetOutput(os.Stderr)
		}

		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if tablesDir != "" {
			cfg.TableDir = tablesDir
		}
		store = cfg.Store()
		log.Printf("config: tables %q, steel thickness %g mm, %d samples", cfg.TableDir, cfg.SteelThickness, cfg.Samples)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   cfst v%-50s║\n", version.Version)
		fmt.Println("  ║   Concrete-Filled Steel Tube Material Builder             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Concrete, steel and rebar grade tables (GB 50010 / GB 50017)")
		fmt.Println("    • Grade interpolation by any tabulated property")
		fmt.Println("    • Steel tube, tie bar and confined concrete stress-strain curves")
		fmt.Println("    • Specimen material sets as JSON, XLSX and PDF")
		fmt.Println("    • Rigid end-face displacement transport")
		fmt.Println()
		fmt.Println("  Use 'cfst --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables", "", "Directory with replacement grade tables (<class>.json or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Environment file to load (default .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}
