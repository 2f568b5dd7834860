// Package report renders the normalized transaction dataset: a text summary,
// a grouped CSV export, and keyword search. It only reads the dataset.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsum-dev/finsum/internal/model"
)

const dateFormat = "2006-01-02"

// WriteSummary writes the financial summary report for the dataset.
func WriteSummary(w io.Writer, txns []model.Transaction) error {
	if len(txns) == 0 {
		return fmt.Errorf("no transactions to summarize")
	}

	var spending, payments decimal.Decimal
	minDate, maxDate := txns[0].Date, txns[0].Date
	for _, t := range txns {
		if t.IsSpending() {
			spending = spending.Add(t.Amount)
		} else {
			payments = payments.Add(t.Amount)
		}
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}
	net := spending.Add(payments)

	var sb strings.Builder
	sb.WriteString("=======================================\n")
	sb.WriteString("      PERSONAL FINANCE SUMMARY\n")
	sb.WriteString("=======================================\n\n")
	fmt.Fprintf(&sb, "Report Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Date Range: %s to %s\n\n", minDate.Format(dateFormat), maxDate.Format(dateFormat))

	sb.WriteString("--- Overall Summary ---\n")
	fmt.Fprintf(&sb, "Total Spending: $%s\n", spending.StringFixed(2))
	fmt.Fprintf(&sb, "Total Payments/Credits: $%s\n", payments.Neg().StringFixed(2))
	fmt.Fprintf(&sb, "Net Activity: $%s\n\n", net.StringFixed(2))

	sb.WriteString("--- Spending by Category ---\n")
	for _, row := range spendingTotals(txns, func(t model.Transaction) string { return t.Category }) {
		fmt.Fprintf(&sb, "%-25s $%s\n", row.Name, row.Total.StringFixed(2))
	}

	sb.WriteString("\n--- Top 10 Vendors by Spending ---\n")
	vendors := spendingTotals(txns, func(t model.Transaction) string { return t.Vendor })
	if len(vendors) > 10 {
		vendors = vendors[:10]
	}
	for _, row := range vendors {
		fmt.Fprintf(&sb, "%-25s $%s\n", row.Name, row.Total.StringFixed(2))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// total is one aggregation row of the summary report.
type total struct {
	Name  string
	Total decimal.Decimal
}

// spendingTotals sums positive amounts by key, sorted by total descending
// (name ascending on ties, for stable output).
func spendingTotals(txns []model.Transaction, key func(model.Transaction) string) []total {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsSpending() {
			continue
		}
		k := key(t)
		sums[k] = sums[k].Add(t.Amount)
	}

	rows := make([]total, 0, len(sums))
	for name, sum := range sums {
		rows = append(rows, total{Name: name, Total: sum})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
