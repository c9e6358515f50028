package cmd

import (
	"fmt"

	"github.com/IceTiki/cfst-builder/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cfst",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Concrete-Filled Steel Tube Material Builder")
		fmt.Println("Material tables after GB 50010-2010 and GB 50017-2017")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
