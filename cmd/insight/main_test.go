package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
)

func TestParseShellQuery(t *testing.T) {
	q, err := parseShellQuery([]string{"quantity=50", "margin_threshold=12.5", "limit=3"})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Limit)
	require.True(t, q.QuantityThreshold.Valid)
	assert.Equal(t, "50", q.QuantityThreshold.Decimal.String())
	require.True(t, q.MarginThreshold.Valid)
	assert.Equal(t, "12.5", q.MarginThreshold.Decimal.String())
	assert.False(t, q.VelocityThreshold.Valid)
	assert.False(t, q.MinMonthlySales.Valid)
}

func TestParseShellQuery_Defaults(t *testing.T) {
	q, err := parseShellQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultPageLimit, q.Limit)
	assert.False(t, q.QuantityThreshold.Valid)
}

func TestParseShellQuery_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"quantity"},
		{"quantity=abc"},
		{"limit=x"},
		{"color=red"},
	} {
		_, err := parseShellQuery(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestThresholdFlags_OnlyChangedAreSet(t *testing.T) {
	var th thresholdFlags
	cmd := &cobra.Command{Use: "view"}
	th.bind(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--velocity", "2", "--limit", "5"}))

	q := th.query(cmd)
	assert.Equal(t, 5, q.Limit)
	require.True(t, q.VelocityThreshold.Valid)
	assert.Equal(t, "2", q.VelocityThreshold.Decimal.String())
	assert.False(t, q.QuantityThreshold.Valid)
	assert.False(t, q.MarginThreshold.Valid)
	assert.False(t, q.MinMonthlySales.Valid)
}

func TestRootCmd_RejectsUnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--format", "yaml", "overview"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"view", "highlights", "overview", "export", "shell", "seed", "token"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}
