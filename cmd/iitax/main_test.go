package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "iitax", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"monthly", "bonus", "yearly", "validate", "example", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "yearly")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "iitax dev")
}

func TestMonthlyCommand(t *testing.T) {
	out, _, err := run(t, "monthly", "--income", "27000", "--period", "1", "--special", "1500")
	require.NoError(t, err)
	assert.Contains(t, out, "Period 1")
	assert.Contains(t, out, "14506.00")
	assert.Contains(t, out, "435.18")
	assert.Contains(t, out, "20570.82")
}

func TestMonthlyCommand_RateOverride(t *testing.T) {
	out, _, err := run(t, "monthly", "--income", "10000", "--provident-rate", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "500.00")

	_, _, err = run(t, "monthly", "--income", "10000", "--medical-rate", "1.5")
	assert.ErrorContains(t, err, "medical rate must be between 0 and 1")
}

func TestMonthlyCommand_Errors(t *testing.T) {
	_, _, err := run(t, "monthly")
	assert.ErrorContains(t, err, "income")

	_, _, err = run(t, "monthly", "--income", "abc")
	assert.ErrorContains(t, err, "invalid --income")

	_, _, err = run(t, "monthly", "--income", "1000", "--period", "0")
	assert.ErrorContains(t, err, "period must be at least 1")
}

func TestBonusCommand(t *testing.T) {
	out, _, err := run(t, "bonus", "30000", "36001")
	require.NoError(t, err)
	assert.Contains(t, out, "900.00")
	assert.Contains(t, out, "29100.00")
	assert.Contains(t, out, "3390.10")

	_, _, err = run(t, "bonus", "-5")
	assert.ErrorContains(t, err, "bonus cannot be negative")
}

func TestYearlyCommand_Table(t *testing.T) {
	out, _, err := run(t, "yearly", "--income", "27000", "--special", "1500", "--bonus", "2,3,4")
	require.NoError(t, err)
	assert.Contains(t, out, "Pretax 27000.00 × 12 periods + bonus [2, 3, 4] months")
	assert.Contains(t, out, "234177.60")
	assert.Contains(t, out, "Total 3 (+4)")
}

func TestYearlyCommand_CSVToStdout(t *testing.T) {
	out, _, err := run(t, "yearly", "--income", "27000", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "total,Total,324000.00")
}

func TestYearlyCommand_FormatAlias(t *testing.T) {
	out, _, err := run(t, "yearly", "--income", "27000", "--format", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "Ledger")

	out, _, err = run(t, "yearly", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "aliases: console, excel, text")
}

func TestYearlyCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	out, _, err := run(t, "yearly", "--income", "27000", "--format", "pdf", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestYearlyCommand_ConfigWithOverride(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "p.toml")
	require.NoError(t, os.WriteFile(profile, []byte("pretax_income = \"27000\"\nperiods = 12\nbonuses = [\"2\"]\n"), 0o644))

	out, _, err := run(t, "yearly", "--config", profile, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"label": "Bonus 2 months"`)

	out, _, err = run(t, "yearly", "--config", profile, "--bonus", "", "--format", "csv")
	require.NoError(t, err)
	assert.NotContains(t, out, "Bonus")
}

func TestYearlyCommand_Errors(t *testing.T) {
	_, _, err := run(t, "yearly")
	assert.ErrorContains(t, err, "either --income or --config is required")

	_, _, err = run(t, "yearly", "--income", "27000", "--format", "docx")
	assert.ErrorContains(t, err, "unsupported format")
	assert.ErrorContains(t, err, "aliases: console, excel, text")

	_, _, err = run(t, "yearly", "--income", "27000", "--periods", "13")
	assert.ErrorContains(t, err, "periods must be between 1 and 12")

	_, _, err = run(t, "yearly", "--config", "missing.yaml")
	assert.ErrorContains(t, err, "config file not found")
}

func TestYearlyCommand_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "yearly", "--income", "27000", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "period 12")
	assert.Contains(t, stderr, "module=iitax")

	_, stderr, err = run(t, "yearly", "--income", "27000")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "yearly", "--income", "27000", "--log-level", "loud")
	assert.ErrorContains(t, err, "log level must be one of")
}

func TestMonthlyAndBonusCommands_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "monthly", "--income", "27000", "--special", "1500", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "period 1: taxable 14506.00")
	assert.Contains(t, stderr, "module=iitax")

	_, stderr, err = run(t, "bonus", "30000", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "bonus 30000.00")
	assert.Contains(t, stderr, "tax 900.00")

	_, stderr, err = run(t, "bonus", "30000")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestExampleAndValidateCommands(t *testing.T) {
	for _, name := range []string{"example.yaml", "example.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			out, _, err := run(t, "example", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Example profile written to")

			_, _, err = run(t, "example", path)
			assert.ErrorContains(t, err, "already exists")

			out, _, err = run(t, "validate", path)
			require.NoError(t, err)
			assert.Contains(t, out, "is valid")

			out, _, err = run(t, "yearly", "--config", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Total 1 (+2)")
		})
	}
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pretax_income: 0\n"), 0o644))

	_, _, err := run(t, "validate", path)
	assert.ErrorContains(t, err, "pretax income must be positive")
}
