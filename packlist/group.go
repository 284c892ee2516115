// Package packlist groups expanded cheque books by delivery branch and
// renders one printable packing-list page per branch.
package packlist

import (
	"sort"

	"github.com/KennedyTaragon/Packing-List-Generator/parsers/dat"
)

// bankName appears in the header block of every packing list.
const bankName = "KCB Bank Ltd"

// Page is the packing list for a single delivery branch: everything needed
// to render one printed page.
type Page struct {
	BankName    string
	OrderNumber string
	OrderDate   string
	BranchCode  string
	BranchName  string
	TotalBooks  int
	Books       []dat.ExpandedBook
}

// StyleCount is one row of a page's book-style summary table.
type StyleCount struct {
	BookStyle string
	Count     int
}

// Build groups books by delivery branch code and produces pages sorted
// ascending by that code. Books with an empty delivery code are dropped.
// The branch name is taken from the first book seen for each code; source
// files occasionally carry differing names for one code and that
// inconsistency is surfaced as-is rather than reconciled here.
//
// Within a page, books are ordered by book style descending (ties keep
// file order). This ordering is externally observable in generated output
// and must be preserved.
func Build(books []dat.ExpandedBook, orderNumber, orderDate string) []Page {
	grouped := make(map[string][]dat.ExpandedBook)
	var codes []string
	for _, book := range books {
		code := book.DeliveryBranchCode
		if code == "" {
			continue
		}
		if _, seen := grouped[code]; !seen {
			codes = append(codes, code)
		}
		grouped[code] = append(grouped[code], book)
	}
	sort.Strings(codes)

	pages := make([]Page, 0, len(codes))
	for _, code := range codes {
		branchBooks := grouped[code]
		// The name must come from the first book in file order, so it is
		// captured before the style sort reorders the slice.
		name := branchBooks[0].DeliveryBranchName
		sort.SliceStable(branchBooks, func(i, j int) bool {
			return branchBooks[i].BookStyle > branchBooks[j].BookStyle
		})
		pages = append(pages, Page{
			BankName:    bankName,
			OrderNumber: orderNumber,
			OrderDate:   orderDate,
			BranchCode:  code,
			BranchName:  name,
			TotalBooks:  len(branchBooks),
			Books:       branchBooks,
		})
	}
	return pages
}

// StyleCounts tallies the page's books per style code, sorted by style
// descending to match the books table ordering.
func (p *Page) StyleCounts() []StyleCount {
	tally := make(map[string]int)
	var styles []string
	for _, book := range p.Books {
		if _, seen := tally[book.BookStyle]; !seen {
			styles = append(styles, book.BookStyle)
		}
		tally[book.BookStyle]++
	}
	sort.Sort(sort.Reverse(sort.StringSlice(styles)))

	counts := make([]StyleCount, 0, len(styles))
	for _, style := range styles {
		counts = append(counts, StyleCount{BookStyle: style, Count: tally[style]})
	}
	return counts
}
