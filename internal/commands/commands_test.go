package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsum-dev/finsum/internal/budget"
	"github.com/finsum-dev/finsum/internal/config"
)

const sampleLedger = "Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit,Notes\n" +
	"2024-01-05,x,x,AMAZON MKTPLACE,Shopping,45.99,,\n" +
	"2024-01-12,x,x,CAPITAL ONE MOBILE PYMT,Payment,,120.00,\n" +
	"2024-01-20,x,UBER TRIP,12.50,Travel\n"

func writeLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLedger), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, "report", "--ledger", writeLedger(t), "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "PERSONAL FINANCE SUMMARY")
	assert.Contains(t, out, "Total Spending: $58.49")
	assert.Contains(t, out, "Total Payments/Credits: $120.00")
}

func TestReportCommand_DefaultOutputFromConfig(t *testing.T) {
	// Without -o the summary goes to the path configured in finsum.yaml.
	dir := t.TempDir()
	ledgerPath := writeLedger(t)
	cfg := config.Default()
	cfg.Output.Summary = "summary.txt"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	out, err := run(t, "report", "--ledger", ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote summary.txt")

	data, err := os.ReadFile(filepath.Join(dir, "summary.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "PERSONAL FINANCE SUMMARY")
}

func TestReportCommand_MissingLedger(t *testing.T) {
	_, err := run(t, "report", "--ledger", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestExportCommand_ToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "grouped.csv")
	_, err := run(t, "export", "--ledger", writeLedger(t), "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vendor,category,total_amount")
	assert.Contains(t, string(data), "Amazon,Shopping,45.99,1")
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "uber", "--ledger", writeLedger(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 transaction(s)")
	assert.Contains(t, out, "Uber")
	assert.Contains(t, out, "12.50")
}

func TestSearchCommand_NoMatch(t *testing.T) {
	out, err := run(t, "search", "zzz", "--ledger", writeLedger(t))
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions found")
}

func TestBudgetCommand(t *testing.T) {
	budgetPath := filepath.Join(t.TempDir(), "budget.yaml")
	require.NoError(t, budget.Save(budgetPath, &budget.File{
		Categories: []budget.CategoryBudget{{Name: "Shopping", Monthly: 40}},
	}))

	out, err := run(t, "budget", "--ledger", writeLedger(t), "--budget", budgetPath)
	require.NoError(t, err)
	// 45.99 spent against a 40.00 budget; Travel has no budget line.
	assert.Contains(t, out, "Shopping")
	assert.Contains(t, out, "OVER")
	assert.Contains(t, out, "(unbudgeted)")
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "classify", "SUMUP ** JOES COFFEE SHOP")
	require.NoError(t, err)
	assert.Equal(t, "Joes Coffee Shop\n", out)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized finsum project")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "transactions.csv", cfg.Ledger)

	svc, err := budget.Load(filepath.Join(dir, "budget.yaml"))
	require.NoError(t, err)
	_, ok := svc.Amount("Groceries")
	assert.True(t, ok)
}
