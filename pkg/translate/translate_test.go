package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge-labs/sqlbridge/pkg/catalog"
	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
)

func TestTranslate_Identity(t *testing.T) {
	queries := []string{
		"SELECT DATE_ADD(CURRENT_DATE(), INTERVAL 1 DAY) FROM `a.b.c`",
		"SELECT 1",
		"",
	}
	for _, sql := range queries {
		for _, p := range platform.All() {
			r := Translate(sql, p, p)
			assert.Equal(t, sql, r.ConvertedQuery, "identity on %s", p)
			assert.Empty(t, r.Issues)
			assert.Equal(t, 100, r.Score)
		}
	}
}

func TestTranslate_EmptyQuery(t *testing.T) {
	r := Translate("", platform.BigQuery, platform.Snowflake)
	assert.Equal(t, "", r.ConvertedQuery)
	assert.Empty(t, r.Issues)
	assert.Equal(t, 100, r.Score)
}

func TestTranslate_NoPlatformConstructs(t *testing.T) {
	sql := "SELECT id, name FROM users WHERE active = TRUE"
	r := Translate(sql, platform.BigQuery, platform.Snowflake)
	assert.Equal(t, sql, r.ConvertedQuery)
	assert.Empty(t, r.Issues)
	assert.Equal(t, 100, r.Score)
}

func TestTranslate_BigQueryToSnowflake_DateArithmetic(t *testing.T) {
	sql := "SELECT DATE_ADD(CURRENT_DATE(), INTERVAL 1 DAY) FROM a.b.c"
	r := Translate(sql, platform.BigQuery, platform.Snowflake)

	assert.Contains(t, r.ConvertedQuery, "DATEADD")
	assert.NotContains(t, r.ConvertedQuery, "DATE_ADD")
	assert.Contains(t, r.ConvertedQuery, "FROM a.b.c")
	require.NotEmpty(t, r.Issues)
	assert.Less(t, r.Score, 100)

	hasReviewable := false
	for _, issue := range r.Issues {
		if issue.Severity == catalog.SeverityInfo || issue.Severity == catalog.SeverityWarning {
			hasReviewable = true
		}
	}
	assert.True(t, hasReviewable)
}

func TestTranslate_BacktickTablePath(t *testing.T) {
	r := Translate("SELECT x FROM `proj.dataset.orders`", platform.BigQuery, platform.Snowflake)
	assert.Contains(t, r.ConvertedQuery, "FROM proj.dataset.orders")
	assert.NotContains(t, r.ConvertedQuery, "`")

	require.Len(t, r.Issues, 1)
	assert.Equal(t, catalog.SeverityInfo, r.Issues[0].Severity)
	assert.Equal(t, 99, r.Score)
}

func TestTranslate_BacktickPathToDatabricks_DropsProject(t *testing.T) {
	r := Translate("SELECT x FROM `proj.dataset.orders`", platform.BigQuery, platform.Databricks)
	assert.Contains(t, r.ConvertedQuery, "FROM dataset.orders")
	assert.NotContains(t, r.ConvertedQuery, "proj.")
}

func TestTranslate_DottedPathToBigQuery_AddsBackticks(t *testing.T) {
	r := Translate("SELECT x FROM db.public.orders o", platform.Snowflake, platform.BigQuery)
	assert.Contains(t, r.ConvertedQuery, "FROM `db.public.orders` o")
}

func TestTranslate_UnsupportedKeepsOriginalText(t *testing.T) {
	sql := "SELECT * FROM UNNEST(arr)"
	r := Translate(sql, platform.BigQuery, platform.Snowflake)

	assert.Equal(t, sql, r.ConvertedQuery)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, catalog.SeverityError, r.Issues[0].Severity)
	assert.Equal(t, 85, r.Score)
}

func TestTranslate_IssueLinesAreOneBased(t *testing.T) {
	sql := "SELECT id,\n  DATE_ADD(d, INTERVAL 1 DAY)\nFROM t"
	r := Translate(sql, platform.BigQuery, platform.Snowflake)

	require.Len(t, r.Issues, 1)
	assert.Equal(t, 2, r.Issues[0].Line)

	// The line exists in both original and converted query.
	origLines := strings.Split(r.OriginalQuery, "\n")
	convLines := strings.Split(r.ConvertedQuery, "\n")
	assert.LessOrEqual(t, r.Issues[0].Line, len(origLines))
	assert.LessOrEqual(t, r.Issues[0].Line, len(convLines))
}

func TestTranslate_ScoreDedupsSameLineIssues(t *testing.T) {
	sameLine := Translate("SELECT DATE_ADD(a, INTERVAL 1 DAY), DATE_ADD(b, INTERVAL 2 DAY) FROM t",
		platform.BigQuery, platform.Snowflake)
	assert.Len(t, sameLine.Issues, 2)
	assert.Equal(t, 95, sameLine.Score, "same message on same line counts once")

	twoLines := Translate("SELECT DATE_ADD(a, INTERVAL 1 DAY),\n DATE_ADD(b, INTERVAL 2 DAY) FROM t",
		platform.BigQuery, platform.Snowflake)
	assert.Equal(t, 90, twoLines.Score, "distinct lines count separately")
}

func TestTranslate_ScoreFloorsAtZero(t *testing.T) {
	sql := "SELECT * FROM UNNEST(a)\nJOIN UNNEST(b) x ON 1 = 1"
	r := TranslateWithWeights(sql, platform.BigQuery, platform.Snowflake, catalog.Weights{Error: 60, Warning: 5, Info: 1})
	assert.Equal(t, 0, r.Score)
}

func TestTranslate_MonotonicScoring(t *testing.T) {
	clean := Translate("SELECT a FROM t", platform.BigQuery, platform.Snowflake)
	one := Translate("SELECT * FROM UNNEST(a)", platform.BigQuery, platform.Snowflake)
	two := Translate("SELECT * FROM UNNEST(a)\nJOIN UNNEST(b) x ON 1 = 1", platform.BigQuery, platform.Snowflake)

	assert.Greater(t, clean.Score, one.Score)
	assert.Greater(t, one.Score, two.Score)
}

func TestTranslate_Deterministic(t *testing.T) {
	sql := "SELECT DATE_ADD(d, INTERVAL 1 DAY), SAFE_CAST(x AS INT64)\nFROM `p.d.t` WHERE a = b"
	first := Translate(sql, platform.BigQuery, platform.Snowflake)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Translate(sql, platform.BigQuery, platform.Snowflake))
	}
}

func TestTranslate_SnowflakeToBigQuery(t *testing.T) {
	r := Translate("SELECT IFF(a > b, 1, 0), NVL(x, 0) FROM t", platform.Snowflake, platform.BigQuery)
	assert.Contains(t, r.ConvertedQuery, "IF(")
	assert.Contains(t, r.ConvertedQuery, "IFNULL(")
	assert.Equal(t, 98, r.Score)
}

func TestTranslate_DatabricksToSnowflake(t *testing.T) {
	r := Translate("SELECT COLLECT_LIST(name) FROM people", platform.Databricks, platform.Snowflake)
	assert.Contains(t, r.ConvertedQuery, "ARRAY_AGG")
	require.Len(t, r.Issues, 1)
	assert.Equal(t, catalog.SeverityInfo, r.Issues[0].Severity)
}
