// csvclean rewrites a CSV export to plain ASCII so it can be bulk-imported
// without charset trouble. Known accented characters are substituted, the
// rest are dropped.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	in := flag.String("in", "", "input CSV file")
	out := flag.String("out", "", "output CSV file (default: <in>_ascii.csv)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: csvclean -in <file.csv> [-out <file.csv>]")
		os.Exit(2)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, ".csv") + "_ascii.csv"
	}

	content, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvclean: %v\n", err)
		os.Exit(1)
	}

	cleaned, replaced, dropped := cleanText(string(content))

	if err := os.WriteFile(*out, []byte(cleaned), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "csvclean: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cleaned %s\n", *in)
	fmt.Printf("  rows processed:      %d\n", strings.Count(cleaned, "\n"))
	fmt.Printf("  characters replaced: %d\n", replaced)
	fmt.Printf("  characters dropped:  %d\n", dropped)
	fmt.Printf("  output file:         %s\n", *out)
}
