// decoder.go turns fixed-width order lines into typed records and extracts
// file-level identifiers (run number, file date) from surrounding context.

package dat

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DecodeLine decodes a single order line. The line may be any length: it is
// right-padded with spaces to 210 columns before slicing, so trailing fields
// of a short line decode as empty strings. The only way a line is rejected
// is a number_of_books field that is present but not numeric.
//
// Column ranges are character positions, so a non-ASCII personalization
// does not shift the fields after it.
//
// DecodeLine is a pure function of the line text; record-type filtering
// happens in Parse, not here.
func DecodeLine(line string) (*OrderRecord, error) {
	runes := padLine(line)
	cut := func(start, end int) string {
		return strings.TrimSpace(string(runes[start:end]))
	}

	numBooks := 1
	if s := cut(26, 30); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("number_of_books %q is not numeric", s)
		}
		numBooks = n
	}

	return &OrderRecord{
		BankID:               cut(0, 2),
		RecordType:           cut(2, 3),
		Priority:             cut(3, 4),
		SortCode:             cut(4, 9),
		AccountNumber:        cut(9, 19),
		CheckDigit:           cut(19, 20),
		ChequeVoucherDigits:  cut(20, 22),
		CreditsVoucherDigits: cut(22, 24),
		BookStyle:            cut(24, 26),
		NumberOfBooks:        numBooks,
		ChequeStartSerial:    cut(30, 36),
		CreditsStartSerial:   cut(36, 42),
		Personalization:      cut(42, 78),
		BranchTitle:          cut(78, 108),
		BranchAddress:        cut(108, 138),
		SignatureRequired:    cut(138, 139),
		BeneficiaryName:      cut(139, 169),
		DeliveryBranchCode:   cut(169, 174),
		DeliveryBranchName:   cut(174, 210),
	}, nil
}

// RawFields slices a line by the Layout table without any interpretation.
// Used by the view command to dump a record column by column.
func RawFields(line string) map[string]string {
	runes := padLine(line)
	fields := make(map[string]string, len(Layout))
	for _, f := range Layout {
		fields[f.Name] = strings.TrimSpace(string(runes[f.Start:f.End]))
	}
	return fields
}

// padLine converts a line to characters right-padded with spaces to the
// full record width.
func padLine(line string) []rune {
	runes := []rune(line)
	for len(runes) < lineWidth {
		runes = append(runes, ' ')
	}
	return runes
}

var (
	kcbNumberRe = regexp.MustCompile(`(?i)KCB-(\d+)`)
	anyNumberRe = regexp.MustCompile(`\d{3,6}`)
)

// OrderNumberFromFilename extracts the print-run order number from a DAT
// filename. It prefers an explicit "KCB-<digits>" marker, then any run of
// 3 to 6 digits, then a time-derived code, and always returns exactly six
// digits.
func OrderNumberFromFilename(path string) string {
	name := filepath.Base(path)
	if m := kcbNumberRe.FindStringSubmatch(name); m != nil {
		return padSerial(m[1])
	}
	if m := anyNumberRe.FindString(name); m != "" {
		return padSerial(m)
	}
	return padSerial(time.Now().Format("010215"))
}

// padSerial normalizes a digit string to exactly six characters: left
// zero-padded, or trimmed to the low-order six digits when longer.
func padSerial(digits string) string {
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	if len(digits) < 6 {
		digits = strings.Repeat("0", 6-len(digits)) + digits
	}
	return digits
}

// dateFormats are tried in priority order; the first that parses wins.
var dateFormats = []string{"02/01/06", "020106", "02/01/2006", "2006-01-02"}

// ParseDate normalizes a date string to YYYY-MM-DD. It is total: blank or
// unparseable input falls back to the current date.
func ParseDate(s string) string {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range dateFormats {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}
	return time.Now().Format("2006-01-02")
}
