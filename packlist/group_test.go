package packlist

import (
	"testing"

	"github.com/KennedyTaragon/Packing-List-Generator/parsers/dat"
)

func book(style, serial, branchCode, branchName string) dat.ExpandedBook {
	return dat.ExpandedBook{
		BookStyle:          style,
		Description:        "Personal KES",
		Currency:           "KES",
		Leaves:             50,
		BranchCode:         "01100",
		AccountNumber:      "1234567890",
		SerialNumber:       serial,
		AccountName:        "JOHN DOE",
		DeliveryBranchCode: branchCode,
		DeliveryBranchName: branchName,
		BooksInOrder:       1,
	}
}

func TestBuildGroupsAndSortsBranches(t *testing.T) {
	books := []dat.ExpandedBook{
		book("01", "000001", "01440", "KCB WESTLANDS"),
		book("01", "000051", "01320", "KCB LAVINGTON"),
		book("02", "000101", "01440", "KCB WESTLANDS"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")

	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	// Pages ascend by branch code.
	if pages[0].BranchCode != "01320" || pages[1].BranchCode != "01440" {
		t.Errorf("page order: %s, %s; want 01320, 01440", pages[0].BranchCode, pages[1].BranchCode)
	}
	if pages[0].TotalBooks != 1 || pages[1].TotalBooks != 2 {
		t.Errorf("book counts: %d, %d", pages[0].TotalBooks, pages[1].TotalBooks)
	}
	if pages[0].OrderNumber != "KCB-000618" || pages[0].OrderDate != "2025-09-29" {
		t.Errorf("order header lost: %+v", pages[0])
	}
	if pages[0].BankName == "" {
		t.Error("bank name missing from page header")
	}
}

func TestBuildSortsBooksByStyleDescending(t *testing.T) {
	books := []dat.ExpandedBook{
		book("01", "000001", "01320", "KCB LAVINGTON"),
		book("52", "000201", "01320", "KCB LAVINGTON"),
		book("02", "000101", "01320", "KCB LAVINGTON"),
		book("52", "000301", "01320", "KCB LAVINGTON"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}

	gotStyles := make([]string, 0, 4)
	for _, b := range pages[0].Books {
		gotStyles = append(gotStyles, b.BookStyle)
	}
	want := []string{"52", "52", "02", "01"}
	for i := range want {
		if gotStyles[i] != want[i] {
			t.Fatalf("book styles %v, want %v", gotStyles, want)
		}
	}
	// Equal styles keep file order (stable sort).
	if pages[0].Books[0].SerialNumber != "000201" || pages[0].Books[1].SerialNumber != "000301" {
		t.Errorf("equal-style books reordered: %q, %q",
			pages[0].Books[0].SerialNumber, pages[0].Books[1].SerialNumber)
	}
}

func TestBuildDropsEmptyDeliveryCode(t *testing.T) {
	books := []dat.ExpandedBook{
		book("01", "000001", "", ""),
		book("01", "000051", "01320", "KCB LAVINGTON"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")
	if len(pages) != 1 || pages[0].TotalBooks != 1 {
		t.Fatalf("books without a delivery code must be dropped: %+v", pages)
	}
}

func TestBuildBranchNameFromFirstBook(t *testing.T) {
	// Inconsistent names for one code are not reconciled: the first book
	// in file order wins, even when the style sort moves a later book
	// with a higher style to the front of the page.
	books := []dat.ExpandedBook{
		book("01", "000001", "01320", "KCB LAVINGTON"),
		book("52", "000051", "01320", "KCB LAVINGTON MALL"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")
	if pages[0].Books[0].BookStyle != "52" {
		t.Fatalf("expected the style sort to reorder the books: %+v", pages[0].Books)
	}
	if pages[0].BranchName != "KCB LAVINGTON" {
		t.Errorf("branch name %q, want the first book's name in file order", pages[0].BranchName)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	if pages := Build(nil, "KCB-000001", "2025-01-01"); len(pages) != 0 {
		t.Errorf("expected no pages, got %d", len(pages))
	}
}

func TestStyleCounts(t *testing.T) {
	books := []dat.ExpandedBook{
		book("01", "000001", "01320", "KCB LAVINGTON"),
		book("01", "000051", "01320", "KCB LAVINGTON"),
		book("52", "000201", "01320", "KCB LAVINGTON"),
	}
	pages := Build(books, "KCB-000618", "2025-09-29")
	counts := pages[0].StyleCounts()

	if len(counts) != 2 {
		t.Fatalf("got %d style rows, want 2", len(counts))
	}
	// Styles descend, matching the books table.
	if counts[0].BookStyle != "52" || counts[0].Count != 1 {
		t.Errorf("counts[0] = %+v", counts[0])
	}
	if counts[1].BookStyle != "01" || counts[1].Count != 2 {
		t.Errorf("counts[1] = %+v", counts[1])
	}
}
