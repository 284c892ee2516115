// expander.go expands decoded orders into individual books with
// incrementing serial numbers and assembles the per-file result.

package dat

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Expand converts orders into one ExpandedBook per physical book, in input
// order. Book #1 of each order carries the order's own starting serial
// unchanged; each further book adds the style's serial increment. Orders
// whose starting serial is not numeric contribute zero books and a
// diagnostic; the rest of the batch is unaffected.
func Expand(orders []OrderRecord, cat *Catalog) ([]ExpandedBook, []Diagnostic) {
	var books []ExpandedBook
	var diags []Diagnostic

	for i, order := range orders {
		serial, err := strconv.Atoi(order.ChequeStartSerial)
		if err != nil {
			diags = append(diags, Diagnostic{
				Message: fmt.Sprintf("order %d (account %s): start serial %q is not numeric, order skipped",
					i+1, order.AccountNumber, order.ChequeStartSerial),
			})
			continue
		}

		info := cat.Style(order.BookStyle)
		increment := cat.Increment(order.BookStyle)
		count := bookCount(order)

		books = append(books, newBook(order, info, order.ChequeStartSerial, count))
		for n := 1; n < count; n++ {
			serial += increment
			books = append(books, newBook(order, info, fmt.Sprintf("%06d", serial), count))
		}
	}
	return books, diags
}

// bookCount clamps the declared book count to at least one. A declared
// count of zero or less still produces the order's first book.
func bookCount(order OrderRecord) int {
	if order.NumberOfBooks < 1 {
		return 1
	}
	return order.NumberOfBooks
}

// newBook copies the per-order fields onto a single physical book.
func newBook(order OrderRecord, info StyleInfo, serial string, count int) ExpandedBook {
	return ExpandedBook{
		BookStyle:          order.BookStyle,
		Description:        info.Description,
		Currency:           info.Currency,
		Leaves:             info.Leaves,
		BranchCode:         order.SortCode,
		AccountNumber:      order.AccountNumber,
		SerialNumber:       serial,
		AccountName:        order.Personalization,
		BranchTitle:        order.BranchTitle,
		BranchAddress:      order.BranchAddress,
		DeliveryBranchCode: order.DeliveryBranchCode,
		DeliveryBranchName: order.DeliveryBranchName,
		BooksInOrder:       count,
	}
}

// Parse decodes a whole DAT file and expands it into books. Lines whose
// record type is not '1' (headers, trailers) and blank lines are skipped
// silently; lines that fail to decode and orders with bad serials are
// reported through the Diagnostics list. Parse never fails outright: a
// header/trailer-only file is a valid, empty result.
func Parse(filename string, data []byte, cat *Catalog) *ParseResult {
	res := &ParseResult{}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 3 || line[2] != recordOrder {
			continue
		}
		order, err := DecodeLine(line)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Line:    i + 1,
				Message: fmt.Sprintf("line %d dropped: %v", i+1, err),
			})
			continue
		}
		res.Orders = append(res.Orders, *order)
	}

	var expandDiags []Diagnostic
	res.Books, expandDiags = Expand(res.Orders, cat)
	res.Diagnostics = append(res.Diagnostics, expandDiags...)

	totalBooks := 0
	for _, order := range res.Orders {
		totalBooks += bookCount(order)
	}
	res.Metadata = FileMetadata{
		BankID:      "01",
		RunNumber:   OrderNumberFromFilename(filename),
		FileDate:    ParseDate(""),
		TotalOrders: len(res.Orders),
		TotalBooks:  totalBooks,
		Filename:    filepath.Base(filename),
	}
	return res
}
