package dat

// lineWidth is the number of meaningful columns in an order line. Shorter
// lines are right-padded with spaces before slicing, never rejected.
const lineWidth = 210

// Record type discriminator values found at column 2 of every line.
const (
	recordHeader  = '0'
	recordOrder   = '1'
	recordTrailer = '4'
)

// Field names one fixed column range [Start,End) of an order line.
type Field struct {
	Name  string
	Start int
	End   int
}

// Layout describes every column range of a 210-character order record.
// Ranges do not overlap and cover the whole line. The view command uses
// this table to dump raw fields; the decoder slices the same offsets.
var Layout = []Field{
	{"bank_id", 0, 2},
	{"record_type", 2, 3},
	{"priority", 3, 4},
	{"sort_code", 4, 9},
	{"account_number", 9, 19},
	{"check_digit", 19, 20},
	{"cheque_voucher_digits", 20, 22},
	{"credits_voucher_digits", 22, 24},
	{"book_style", 24, 26},
	{"number_of_books", 26, 30},
	{"cheque_start_serial", 30, 36},
	{"credits_start_serial", 36, 42},
	{"personalization", 42, 78},
	{"branch_title", 78, 108},
	{"branch_address", 108, 138},
	{"signature_required", 138, 139},
	{"beneficiary_name", 139, 169},
	{"delivery_branch_code", 169, 174},
	{"delivery_branch_name", 174, 210},
}
