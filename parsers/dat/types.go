// Package dat decodes KCB cheque-book order files (fixed-width DAT format)
// and expands multi-book orders into one record per physical book.
package dat

// OrderRecord is one decoded order line: a cheque or voucher book print
// order for a single account.
type OrderRecord struct {
	BankID               string
	RecordType           string
	Priority             string
	SortCode             string
	AccountNumber        string
	CheckDigit           string
	ChequeVoucherDigits  string
	CreditsVoucherDigits string
	BookStyle            string
	NumberOfBooks        int
	ChequeStartSerial    string
	CreditsStartSerial   string
	Personalization      string
	BranchTitle          string
	BranchAddress        string
	SignatureRequired    string
	BeneficiaryName      string
	DeliveryBranchCode   string
	DeliveryBranchName   string
}

// ExpandedBook is one physical book derived from an order. It is created
// only by expansion and never mutated afterwards.
type ExpandedBook struct {
	BookStyle          string
	Description        string
	Currency           string
	Leaves             int
	BranchCode         string
	AccountNumber      string
	SerialNumber       string
	AccountName        string
	BranchTitle        string
	BranchAddress      string
	DeliveryBranchCode string
	DeliveryBranchName string
	BooksInOrder       int
}

// FileMetadata is the aggregate over all decoded orders for one file.
// TotalBooks sums the declared (clamped) book counts, so it equals
// len(Books) whenever no order was dropped for a bad serial.
type FileMetadata struct {
	BankID      string
	RunNumber   string
	FileDate    string
	TotalOrders int
	TotalBooks  int
	Filename    string
}

// Diagnostic records a recoverable per-line or per-order problem. The
// affected line or order is dropped and processing continues; nothing in
// this package is fatal to a whole file.
type Diagnostic struct {
	Line    int // 1-based source line, 0 when not tied to a line
	Message string
}

// ParseResult is the complete output of parsing one DAT file.
type ParseResult struct {
	Orders      []OrderRecord
	Books       []ExpandedBook
	Metadata    FileMetadata
	Diagnostics []Diagnostic
}
