// Command tmpoly triangulates and clips 2D polygons read from JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "tmpoly",
	Short: "Triangulate and clip 2D polygons",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfigFile()
	},
}

func init() {
	bindPersistentFlags(root)
	root.AddCommand(triangulateCmd, clipCmd)
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
