package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge-labs/sqlbridge/internal/cli/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { config.SetCurrent(nil) })

	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTranslateCommand_JSON(t *testing.T) {
	out, err := execute(t,
		"translate", "--from", "bigquery", "--to", "snowflake", "--no-history", "-o", "json",
		"SELECT DATE_ADD(order_date, INTERVAL 1 DAY) FROM orders")
	require.NoError(t, err)

	var result struct {
		ConvertedQuery string `json:"converted_query"`
		Target         string `json:"target"`
		Score          int    `json:"compatibility_score"`
		Issues         []struct {
			Line     int    `json:"line"`
			Severity string `json:"severity"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Contains(t, result.ConvertedQuery, "DATEADD")
	assert.Equal(t, "snowflake", result.Target)
	assert.Equal(t, 95, result.Score)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "warning", result.Issues[0].Severity)
}

func TestTranslateCommand_RequiresPlatforms(t *testing.T) {
	_, err := execute(t, "translate", "--no-history", "SELECT 1")
	assert.Error(t, err)
}

func TestTranslateCommand_UnknownPlatform(t *testing.T) {
	_, err := execute(t,
		"translate", "--from", "redshift", "--to", "snowflake", "--no-history", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redshift")
}

func TestSchemaCommand_Table(t *testing.T) {
	out, err := execute(t,
		"schema", "--platform", "bigquery",
		"SELECT x.id FROM orders x JOIN users u ON x.user_id = u.id")
	require.NoError(t, err)

	assert.Contains(t, out, "orders")
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "join-equality")
}

func TestExportCommand_FailureRendered(t *testing.T) {
	out, err := execute(t,
		"export", "--platform", "snowflake", "--format", "dbt", "SELECT 1")
	require.NoError(t, err)
	assert.Contains(t, out, "no table references")
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	_, err := execute(t,
		"translate", "--from", "bigquery", "--to", "databricks",
		"--history-path", path, "SELECT id FROM orders")
	require.NoError(t, err)

	out, err := execute(t, "history", "list", "--history-path", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT id FROM orders")
	assert.Contains(t, out, "bigquery")

	_, err = execute(t, "history", "clear", "--history-path", path)
	require.NoError(t, err)

	out, err = execute(t, "history", "list", "--history-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(no history)")
}

func TestTemplatesCommand_Filtered(t *testing.T) {
	out, err := execute(t, "templates", "--platform", "snowflake", "--category", "joins")
	require.NoError(t, err)
	assert.Contains(t, out, "orders-with-users")
	assert.NotContains(t, out, "daily-revenue")
}
