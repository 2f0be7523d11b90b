package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alselawi/castcad/pkg/stl"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [file]",
	Short: "List the solid groups of an ASCII STL file",
	Long:  "Show every named solid block of the file with its face count and vertex range. Binary STL files always decode to a single unnamed group.",
	Args:  cobra.ExactArgs(1),
	Run:   runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) {
	buffer, warnings, err := stl.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: skipped malformed facet %d in solid %q: %v\n", w.Facet, w.Solid, w.Err)
	}

	if len(buffer.Groups) == 0 {
		fmt.Printf("No solid groups (%d faces total)\n", buffer.FaceCount())
		return
	}

	fmt.Printf("%d solid group(s):\n", len(buffer.Groups))
	for _, g := range buffer.Groups {
		name := g.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %-24s %6d faces  vertices [%d, %d)\n", name, g.Count/3, g.Start, g.Start+g.Count)
	}
}
