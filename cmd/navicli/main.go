// Command navicli is a small operator tool for inspecting and exercising
// navicore graphs without embedding them in a host application, in the
// same vein as beads' bd/kd command trees.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "navicli",
	Short: "Inspect and replay navicore navigation graphs",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
