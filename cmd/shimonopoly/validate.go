package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shimonopoly/internal/cities"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a JSONL city file",
	Long: `Loads a JSONL city file the same way the game does and reports every
skipped line. Each line must be an object with a non-empty "name", a
non-negative "population" and "lat"/"lon" in degrees.

Exits with status 1 if the file has no valid city.

Examples:
  shimonopoly validate ./cities.jsonl`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	path := args[0]

	// Warnings are printed below, not logged
	loader := cities.NewLoader(nil)
	all, warnings, err := loader.LoadFile(path)
	if err != nil {
		fail("%v", err)
	}

	for _, w := range warnings {
		fmt.Printf("  skipped %s\n", w)
	}
	if len(warnings) > 0 {
		fmt.Println()
	}

	var population float64
	for _, c := range all {
		population += c.Population
	}

	fmt.Printf("%s: %s, %s, total population %s\n",
		path,
		english.Plural(len(all), "valid city", "valid cities"),
		english.Plural(len(warnings), "skipped line", ""),
		humanize.CommafWithDigits(population, 2),
	)

	if len(all) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no valid cities")
		os.Exit(1)
	}
}
