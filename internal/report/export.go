package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsum-dev/finsum/internal/model"
)

// Header is the CSV header for the grouped transactions export.
const Header = "vendor,category,total_amount,transaction_count,first_transaction_date,last_transaction_date"

const (
	numFields = 6
	colVendor = 0
	colCat    = 1
	colTotal  = 2
	colCount  = 3
	colFirst  = 4
	colLast   = 5
)

// Group is one (vendor, category) aggregate.
type Group struct {
	Vendor   string
	Category string
	Total    decimal.Decimal
	Count    int
	First    time.Time
	Last     time.Time
}

// GroupTransactions aggregates by (vendor, category), sorted by total
// ascending so the largest credits lead and the largest spending trails.
func GroupTransactions(txns []model.Transaction) []Group {
	byKey := make(map[string]*Group)
	var order []string
	for _, t := range txns {
		k := t.Vendor + "\x00" + t.Category
		g, ok := byKey[k]
		if !ok {
			g = &Group{Vendor: t.Vendor, Category: t.Category, First: t.Date, Last: t.Date}
			byKey[k] = g
			order = append(order, k)
		}
		g.Total = g.Total.Add(t.Amount)
		g.Count++
		if t.Date.Before(g.First) {
			g.First = t.Date
		}
		if t.Date.After(g.Last) {
			g.Last = t.Date
		}
	}

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, *byKey[k])
	}
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].Total.Equal(groups[j].Total) {
			return groups[i].Total.LessThan(groups[j].Total)
		}
		if groups[i].Vendor != groups[j].Vendor {
			return groups[i].Vendor < groups[j].Vendor
		}
		return groups[i].Category < groups[j].Category
	})
	return groups
}

// WriteGroupedCSV writes the grouped export (including header).
func WriteGroupedCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, g := range GroupTransactions(txns) {
		if err := cw.Write(marshalGroup(g)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalGroup(g Group) []string {
	row := make([]string, numFields)
	row[colVendor] = g.Vendor
	row[colCat] = g.Category
	row[colTotal] = g.Total.StringFixed(2)
	row[colCount] = strconv.Itoa(g.Count)
	row[colFirst] = g.First.Format(dateFormat)
	row[colLast] = g.Last.Format(dateFormat)
	return row
}
