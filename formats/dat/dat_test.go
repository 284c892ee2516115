package dat

import (
	"strings"
	"testing"

	"github.com/KennedyTaragon/Packing-List-Generator/formats"
)

// sampleLine builds a 210-column order line for style 01, two books,
// serial 000001, delivering to branch 01320.
func sampleLine() string {
	buf := []byte(strings.Repeat(" ", 210))
	place := func(start int, v string) { copy(buf[start:], v) }
	place(0, "01")          // bank id
	place(2, "1")           // order record
	place(4, "01100")       // sort code
	place(9, "1234567890")  // account number
	place(24, "01")         // book style
	place(26, "2")          // number of books
	place(30, "000001")     // cheque start serial
	place(42, "JOHN DOE")   // personalization
	place(169, "01320")     // delivery branch code
	place(174, "KCB LAVINGTON")
	return string(buf)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"order record", sampleLine(), true},
		{"header record", "010", true},
		{"trailer record", "014", true},
		{"leading blank lines", "\n\n010", true},
		{"wrong discriminator", "019", false},
		{"non-digit bank id", "AB1", false},
		{"too short", "01", false},
		{"empty", "", false},
		{"html", "<html></html>", false},
	}
	c := registered
	for _, tt := range tests {
		if got := c.Match([]byte(tt.data)); got != tt.want {
			t.Errorf("%s: Match = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDetectByExtension(t *testing.T) {
	// Unrecognizable content still routes to the DAT converter when the
	// filename says .dat.
	conv := formats.Detect("KCB-618.dat", []byte("ZZZ"))
	if conv == nil {
		t.Fatal("Detect returned nil for .dat extension")
	}
	if !strings.Contains(conv.Name(), "DAT") {
		t.Errorf("Detect picked %q", conv.Name())
	}
}

func TestConvertProducesAllOutputs(t *testing.T) {
	content := "010\n" + sampleLine() + "\n014\n"
	outputs, summary, err := registered.Convert("KCB-618.dat", []byte(content))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if summary.OrderNumber != "KCB-000618" {
		t.Errorf("OrderNumber = %q", summary.OrderNumber)
	}
	if summary.TotalOrders != 1 || summary.TotalBooks != 2 || summary.Branches != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", summary.Warnings)
	}

	categories := make(map[string]formats.OutputFile, len(outputs))
	for _, out := range outputs {
		categories[out.Category] = out
	}
	for _, want := range []string{"packlist", "report", "summary"} {
		out, ok := categories[want]
		if !ok {
			t.Fatalf("missing %s output, got %v", want, categories)
		}
		if len(out.Data) == 0 {
			t.Errorf("%s output (%s) is empty", want, out.Name)
		}
	}
	if name := categories["packlist"].Name; name != "PackingList_KCB-000618.xlsx" {
		t.Errorf("workbook name = %q", name)
	}
}

func TestConvertReportsDiagnosticsAsWarnings(t *testing.T) {
	bad := []byte(strings.Replace(sampleLine(), "000001", "ABCDEF", 1))
	_, summary, err := registered.Convert("KCB-618.dat", bad)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(summary.Warnings) != 1 {
		t.Fatalf("warnings = %v, want the bad-serial diagnostic", summary.Warnings)
	}
	if summary.TotalBooks != 2 {
		// Declared totals still count the skipped order.
		t.Errorf("TotalBooks = %d, want declared 2", summary.TotalBooks)
	}
}
