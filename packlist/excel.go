// excel.go renders packing-list pages as an XLSX workbook, one worksheet
// per delivery branch.

package packlist

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// booksHeader is the column layout of the main books table.
var booksHeader = []string{
	"Book Code", "Account Name", "Account Number",
	"Start Serial", "Branch Code", "Delivery Branch",
}

// Workbook renders all pages into a single XLSX workbook. Sheets follow
// page order (delivery branch code ascending); an empty page list produces
// a workbook with one blank sheet so the output is always a valid file.
func Workbook(pages []Page) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for i, page := range pages {
		name := sheetName(page, i)
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("creating sheet %s: %w", name, err)
			}
		}
		if err := writePage(f, name, page, titleStyle, headerStyle); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writePage lays out one packing list on the named sheet: title, order
// header block, style summary table, then the books table.
func writePage(f *excelize.File, sheet string, page Page, titleStyle, headerStyle int) error {
	set := func(col, row int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheet, cell, value)
	}

	set(1, 1, "PACKING LIST")
	f.MergeCell(sheet, "A1", "F1")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	set(1, 2, fmt.Sprintf("Delivery Branch: %s (%s)", page.BranchName, page.BranchCode))
	f.SetCellStyle(sheet, "A2", "A2", headerStyle)

	set(1, 4, "Bank Name:")
	set(2, 4, page.BankName)
	set(4, 4, "Order Number:")
	set(5, 4, page.OrderNumber)
	set(1, 5, "Order Date:")
	set(2, 5, page.OrderDate)
	set(4, 5, "Total Books:")
	set(5, 5, page.TotalBooks)

	// Style summary table.
	row := 7
	set(1, row, "Book Style")
	set(2, row, "Number of Books")
	if err := styleRow(f, sheet, row, 2, headerStyle); err != nil {
		return err
	}
	for _, sc := range page.StyleCounts() {
		row++
		set(1, row, sc.BookStyle)
		set(2, row, sc.Count)
	}
	row++
	set(1, row, "TOTAL")
	set(2, row, page.TotalBooks)
	if err := styleRow(f, sheet, row, 2, headerStyle); err != nil {
		return err
	}

	// Books table.
	row += 2
	for col, title := range booksHeader {
		set(col+1, row, title)
	}
	if err := styleRow(f, sheet, row, len(booksHeader), headerStyle); err != nil {
		return err
	}
	for _, book := range page.Books {
		row++
		set(1, row, book.BookStyle)
		set(2, row, book.AccountName)
		set(3, row, book.AccountNumber)
		set(4, row, book.SerialNumber)
		// The branch code column carries the delivery branch code, not
		// the account's sort code; the CSV manifest keeps both.
		set(5, row, book.DeliveryBranchCode)
		set(6, row, page.BranchName)
	}

	// Approximate column widths so names and serials are readable
	// without manual resizing.
	widths := []float64{12, 32, 18, 14, 14, 28}
	for i, w := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, colName, colName, w)
	}
	return nil
}

// styleRow applies a style across the first n columns of a row.
func styleRow(f *excelize.File, sheet string, row, n, style int) error {
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(n, row)
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("styling row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// sheetName builds a worksheet name from the branch, keeping it inside
// Excel's 31-character limit and free of forbidden characters.
func sheetName(page Page, index int) string {
	name := page.BranchCode + " " + page.BranchName
	for _, c := range []string{":", "\\", "/", "?", "*", "[", "]"} {
		name = strings.ReplaceAll(name, c, " ")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Branch %d", index+1)
	}
	if len(name) > 31 {
		name = strings.TrimSpace(name[:31])
	}
	return name
}
