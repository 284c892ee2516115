// manifest.go emits the flat CSV manifest of every expanded book, in page
// order, for downstream reconciliation.

package packlist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// Manifest renders all books across all pages as CSV. Rows follow page
// order, so the file reads top to bottom in the same sequence as the
// printed packing lists.
func Manifest(pages []Page) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"delivery_branch_code", "delivery_branch_name", "book_style",
		"description", "currency", "leaves", "account_name",
		"account_number", "start_serial", "branch_code",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing manifest header: %w", err)
	}

	for _, page := range pages {
		for _, book := range page.Books {
			row := []string{
				page.BranchCode,
				page.BranchName,
				book.BookStyle,
				book.Description,
				book.Currency,
				strconv.Itoa(book.Leaves),
				book.AccountName,
				book.AccountNumber,
				book.SerialNumber,
				book.BranchCode,
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("writing manifest row: %w", err)
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
