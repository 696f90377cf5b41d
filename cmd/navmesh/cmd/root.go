package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "navmesh",
	Short: "generate 2D navigation meshes",
	Long: `navmesh is the command-line wrapper around the navmesh package:
	- generate a default build settings file (YAML),
	- build a navigation mesh from a polygon-list obstacle file,
	- print the resulting polygons to standard output.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
