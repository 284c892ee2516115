package packlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/KennedyTaragon/Packing-List-Generator/parsers/dat"
)

func TestWorkbookRoundTrip(t *testing.T) {
	books := []dat.ExpandedBook{
		book("01", "000001", "01320", "KCB LAVINGTON"),
		book("52", "000201", "01320", "KCB LAVINGTON"),
		book("01", "000051", "01440", "KCB WESTLANDS"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")

	data, err := Workbook(pages)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want one per branch: %v", len(sheets), sheets)
	}
	if !strings.HasPrefix(sheets[0], "01320") || !strings.HasPrefix(sheets[1], "01440") {
		t.Errorf("sheet names %v, want branch-code prefixes in ascending order", sheets)
	}

	title, err := f.GetCellValue(sheets[0], "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != "PACKING LIST" {
		t.Errorf("A1 = %q, want PACKING LIST", title)
	}

	branch, _ := f.GetCellValue(sheets[0], "A2")
	if !strings.Contains(branch, "KCB LAVINGTON") || !strings.Contains(branch, "01320") {
		t.Errorf("branch header = %q", branch)
	}

	// The books table on the first sheet: header at row 12 (title, branch,
	// header block, two-style summary with total), style 52 sorted first.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatal(err)
	}
	var headerRow, firstBookRow []string
	for i, row := range rows {
		if len(row) > 0 && row[0] == "Book Code" {
			headerRow = row
			if i+1 < len(rows) {
				firstBookRow = rows[i+1]
			}
			break
		}
	}
	if headerRow == nil {
		t.Fatal("books table header not found")
	}
	if headerRow[3] != "Start Serial" {
		t.Errorf("header = %v", headerRow)
	}
	if len(firstBookRow) < 5 || firstBookRow[0] != "52" || firstBookRow[3] != "000201" {
		t.Errorf("first book row = %v, want style 52 serial 000201", firstBookRow)
	}
	// The branch code column prints the delivery branch code, not the
	// account's sort code.
	if len(firstBookRow) >= 5 && firstBookRow[4] != "01320" {
		t.Errorf("branch code column = %q, want delivery code 01320", firstBookRow[4])
	}
}

func TestWorkbookEmptyPages(t *testing.T) {
	data, err := Workbook(nil)
	if err != nil {
		t.Fatalf("Workbook(nil): %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("empty workbook is not a valid file: %v", err)
	}
	f.Close()
}

func TestManifest(t *testing.T) {
	books := []dat.ExpandedBook{
		book("01", "000001", "01320", "KCB LAVINGTON"),
		book("01", "000051", "01440", "KCB WESTLANDS"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")

	data, err := Manifest(pages)
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 books:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "delivery_branch_code,") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "01320") || !strings.Contains(lines[1], "000001") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestSummary(t *testing.T) {
	books := []dat.ExpandedBook{
		book("01", "000001", "01320", "KCB LAVINGTON"),
		book("01", "000051", "01320", "KCB LAVINGTON"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")

	out := Summary(pages)
	for _, want := range []string{"PACKING LIST SUMMARY", "Delivery branches: 1", "Total books:       2", "KCB LAVINGTON (01320)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
