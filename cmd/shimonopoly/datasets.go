package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shimonopoly/internal/datasets"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets [id]",
	Short: "List embedded city datasets",
	Long: `Shows the city datasets built into shimonopoly.

With an ID, prints that dataset as JSONL so it can be edited and played
with 'shimonopoly play --cities'.

Examples:
  shimonopoly datasets
  shimonopoly datasets usmetros > cities.jsonl`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDatasets,
}

func runDatasets(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		data, err := datasets.Raw(args[0])
		if err != nil {
			fail("%v", err)
		}
		os.Stdout.Write(data)
		return
	}

	all := datasets.List()
	if len(all) == 0 {
		fmt.Println("No datasets available.")
		return
	}

	fmt.Println("Available datasets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range all {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Cities", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, d := range all {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, d.ID, d.Lines, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'shimonopoly play --dataset <id>' to play on a dataset.")
}
