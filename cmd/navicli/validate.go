package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "validate <graph.toml>",
		Short: "Load a graph description and report structural errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraphFile(args[0])
			if err != nil {
				return err
			}
			count := 0
			for range g.IterNodes() {
				count++
			}
			fmt.Printf("ok: %d node(s), root %s\n", count, g.RootKey())
			return nil
		},
	})
}
