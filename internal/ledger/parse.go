package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsum-dev/finsum/internal/model"
)

// layout identifies which of the two source record shapes a line is parsed
// under. The file is assumed to transition from dual-column to single-amount
// at most once, and never back.
type layout int

const (
	layoutDualColumn layout = iota
	layoutSingleAmount
)

// Dual-column shape: separate debit and credit fields.
const (
	dualColDate     = 0
	dualColDesc     = 3
	dualColCategory = 4
	dualColDebit    = 5
	dualColCredit   = 6
	dualColNotes    = 7
	dualNumFields   = 7
)

// Single-amount shape: one signed amount field, different ordering.
const (
	singleColDate     = 0
	singleColDesc     = 2
	singleColAmount   = 3
	singleColCategory = 4
	singleNumFields   = 5
)

// probeCol is sniffed on every line as the layout-switch heuristic: a numeric
// value there combined with a low field count marks the single-amount shape.
const (
	probeCol        = 3
	probeMaxFields  = 6
	headerToken     = "Transaction Date"
	defaultCategory = "Uncategorized"
)

var dateLayouts = []string{"2006-01-02", "01/02/2006", "2006/01/02"}

// SkippedLine records a line that could not be parsed.
type SkippedLine struct {
	Line int // 1-based line number in the source file
	Raw  string
}

// Parse reads the raw ledger text and returns the surviving transactions plus
// the lines that were discarded. Blank lines and header repeats are skipped
// silently and are not reported as discards. Vendor labels are not assigned
// here; see Load.
func Parse(r io.Reader) ([]model.Transaction, []SkippedLine, error) {
	sc := bufio.NewScanner(r)

	cur := layoutDualColumn
	var txns []model.Transaction
	var skipped []SkippedLine

	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.Contains(raw, headerToken) {
			continue
		}

		// No quote-aware splitting: the source format carries no escaping,
		// and an embedded comma desynchronizes the rest of that line.
		fields := strings.Split(raw, ",")

		// The switch is one-way: once tripped, every later line is parsed as
		// single-amount even if it structurally resembles the old shape.
		if sniffSingleAmount(fields) {
			cur = layoutSingleAmount
		}

		var txn model.Transaction
		var err error
		switch cur {
		case layoutSingleAmount:
			txn, err = parseSingleAmountRow(fields)
		default:
			txn, err = parseDualColumnRow(fields)
		}
		if err != nil {
			skipped = append(skipped, SkippedLine{Line: lineNo, Raw: raw})
			continue
		}
		txns = append(txns, txn)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading ledger: %w", err)
	}

	return normalize(txns), skipped, nil
}

// sniffSingleAmount probes field index 3 for a numeric value. It is applied
// to every line, before and after the layout switch.
func sniffSingleAmount(fields []string) bool {
	if len(fields) <= probeCol {
		return false
	}
	if _, err := decimal.NewFromString(strings.TrimSpace(fields[probeCol])); err != nil {
		return false
	}
	return len(fields) <= probeMaxFields
}

func parseDualColumnRow(fields []string) (model.Transaction, error) {
	if len(fields) < dualNumFields {
		return model.Transaction{}, fmt.Errorf("expected at least %d fields, got %d", dualNumFields, len(fields))
	}

	date, err := parseDate(fields[dualColDate])
	if err != nil {
		return model.Transaction{}, err
	}

	debit, hasDebit := parseOptionalAmount(fields[dualColDebit])
	credit, hasCredit := parseOptionalAmount(fields[dualColCredit])

	// Debit wins when both are populated. Neither present leaves the amount
	// at zero; the record is dropped by the post-pass filter.
	amount := decimal.Zero
	switch {
	case hasDebit:
		amount = debit
	case hasCredit:
		amount = credit.Neg()
	}

	notes := ""
	if len(fields) > dualColNotes {
		notes = fields[dualColNotes]
	}

	return model.Transaction{
		Date:        date,
		Description: fields[dualColDesc],
		Category:    fields[dualColCategory],
		Amount:      amount,
		Notes:       notes,
	}, nil
}

func parseSingleAmountRow(fields []string) (model.Transaction, error) {
	if len(fields) < singleNumFields {
		return model.Transaction{}, fmt.Errorf("expected at least %d fields, got %d", singleNumFields, len(fields))
	}

	date, err := parseDate(fields[singleColDate])
	if err != nil {
		return model.Transaction{}, err
	}

	// Unlike the dual-column shape, a bad amount here discards the line.
	amount, err := decimal.NewFromString(strings.TrimSpace(fields[singleColAmount]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", fields[singleColAmount], err)
	}

	return model.Transaction{
		Date:        date,
		Description: fields[singleColDesc],
		Category:    fields[singleColCategory],
		Amount:      amount,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", s)
}

// parseOptionalAmount treats empty or non-numeric text as an absent value.
func parseOptionalAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// normalize applies the post-pass filter: zero-amount records are dropped and
// a missing category defaults to "Uncategorized".
func normalize(txns []model.Transaction) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Amount.IsZero() {
			continue
		}
		if strings.TrimSpace(t.Category) == "" {
			t.Category = defaultCategory
		}
		out = append(out, t)
	}
	return out
}
