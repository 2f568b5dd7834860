package report

import (
	"strings"

	"github.com/finsum-dev/finsum/internal/model"
)

// Search returns transactions whose description contains keyword,
// case-insensitively, preserving file order.
func Search(txns []model.Transaction, keyword string) []model.Transaction {
	needle := strings.ToLower(keyword)
	var matches []model.Transaction
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			matches = append(matches, t)
		}
	}
	return matches
}
