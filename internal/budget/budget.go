// Package budget compares per-category spending against a YAML budget file.
package budget

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finsum-dev/finsum/internal/model"
)

// File is the on-disk budget.yaml shape.
type File struct {
	Categories []CategoryBudget `yaml:"categories"`
}

// CategoryBudget is one budgeted category.
type CategoryBudget struct {
	Name    string  `yaml:"name"`
	Monthly float64 `yaml:"monthly"`
}

// Service provides lookup and comparison over a loaded budget.
type Service struct {
	categories []CategoryBudget
	byName     map[string]decimal.Decimal
}

// NewService creates a Service from budget categories.
func NewService(categories []CategoryBudget) *Service {
	byName := make(map[string]decimal.Decimal, len(categories))
	for _, c := range categories {
		byName[c.Name] = decimal.NewFromFloat(c.Monthly)
	}
	return &Service{categories: categories, byName: byName}
}

// Load reads a budget YAML file and returns a Service.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading budget: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing budget: %w", err)
	}
	return NewService(f.Categories), nil
}

// Save writes a budget File to a YAML file.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling budget: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}
	return nil
}

// Amount returns the monthly budget for a category.
func (s *Service) Amount(category string) (decimal.Decimal, bool) {
	d, ok := s.byName[category]
	return d, ok
}

// Line is one row of a budget comparison.
type Line struct {
	Category  string
	Budget    decimal.Decimal
	Actual    decimal.Decimal
	Remaining decimal.Decimal // negative = overspent
	Budgeted  bool
}

// Compare tallies positive spending per category against the budget.
// Budgeted categories come first in file order; spending in categories the
// budget does not mention follows, sorted by name, with a zero budget.
func (s *Service) Compare(txns []model.Transaction) []Line {
	actual := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsSpending() {
			continue
		}
		actual[t.Category] = actual[t.Category].Add(t.Amount)
	}

	var lines []Line
	for _, c := range s.categories {
		budgeted := decimal.NewFromFloat(c.Monthly)
		spent := actual[c.Name]
		lines = append(lines, Line{
			Category:  c.Name,
			Budget:    budgeted,
			Actual:    spent,
			Remaining: budgeted.Sub(spent),
			Budgeted:  true,
		})
		delete(actual, c.Name)
	}

	var rest []string
	for name := range actual {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		lines = append(lines, Line{
			Category:  name,
			Actual:    actual[name],
			Remaining: actual[name].Neg(),
		})
	}
	return lines
}
