// summary.go renders the plain-text branch breakdown shown after a file
// is processed.

package packlist

import (
	"fmt"
	"strings"
)

// Summary renders a branch-by-branch breakdown of the packing lists as
// plain text, suitable for console output or a .txt sidecar file.
func Summary(pages []Page) string {
	total := 0
	for _, page := range pages {
		total += page.TotalBooks
	}

	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "PACKING LIST SUMMARY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Delivery branches: %d\n", len(pages))
	fmt.Fprintf(&b, "Total books:       %d\n", total)
	if len(pages) > 0 {
		fmt.Fprintln(&b, strings.Repeat("-", 60))
		for i, page := range pages {
			fmt.Fprintf(&b, "%2d. %s (%s) - %d book(s)\n",
				i+1, page.BranchName, page.BranchCode, page.TotalBooks)
		}
	}
	fmt.Fprintln(&b, rule)
	return b.String()
}
