package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/token"
)

func orderedPairs() [][2]platform.Platform {
	var pairs [][2]platform.Platform
	for _, src := range platform.All() {
		for _, dst := range platform.All() {
			if src != dst {
				pairs = append(pairs, [2]platform.Platform{src, dst})
			}
		}
	}
	return pairs
}

func TestRules_EveryPairCovered(t *testing.T) {
	for _, p := range orderedPairs() {
		rules := Rules(p[0], p[1])
		assert.NotEmpty(t, rules, "no rules for %s -> %s", p[0], p[1])
	}
}

func TestRules_WellFormed(t *testing.T) {
	for _, p := range orderedPairs() {
		for _, rule := range Rules(p[0], p[1]) {
			name := p[0].String() + "->" + p[1].String() + " " + strings.Join(rule.Match, " ")

			require.NotEmpty(t, rule.Match, name)
			for _, word := range rule.Match {
				assert.Equal(t, strings.ToLower(word), word,
					"%s: match phrases are matched lowercase", name)
			}
			assert.NotEmpty(t, rule.Message, name)
			assert.NotEmpty(t, rule.Suggestion, name)

			if rule.Unsupported {
				assert.Empty(t, rule.Replace, "%s: unsupported rules leave text unchanged", name)
				assert.Equal(t, SeverityError, rule.Severity, name)
			} else {
				assert.NotEmpty(t, rule.Replace, name)
			}
		}
	}
}

func TestRules_PairsAreDirectional(t *testing.T) {
	forward := Rules(platform.BigQuery, platform.Snowflake)
	backward := Rules(platform.Snowflake, platform.BigQuery)
	require.NotEmpty(t, forward)
	require.NotEmpty(t, backward)
	assert.NotEqual(t, forward[0].Match, backward[0].Match)
}

func TestWeights_DefaultPenalties(t *testing.T) {
	assert.Equal(t, 15, DefaultWeights.Penalty(SeverityError))
	assert.Equal(t, 5, DefaultWeights.Penalty(SeverityWarning))
	assert.Equal(t, 1, DefaultWeights.Penalty(SeverityInfo))
	assert.Equal(t, 0, DefaultWeights.Penalty(Severity(99)))
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestStructuralRules_BacktickPath(t *testing.T) {
	rules := StructuralRules(platform.BigQuery, platform.Snowflake)
	require.Len(t, rules, 1)

	toks := token.Classify("SELECT * FROM `proj.dataset.orders`", platform.BigQuery)
	idx := -1
	for i, tok := range toks {
		if tok.Kind == token.KindString {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	consumed, replacement, ok := rules[0].Apply(toks, idx)
	require.True(t, ok)
	assert.Equal(t, 1, consumed)
	assert.Equal(t, "proj.dataset.orders", replacement)
}

func TestStructuralRules_BacktickPathDropsProjectForDatabricks(t *testing.T) {
	rules := StructuralRules(platform.BigQuery, platform.Databricks)
	require.Len(t, rules, 1)

	toks := token.Classify("FROM `proj.dataset.orders`", platform.BigQuery)
	consumed, replacement, ok := rules[0].Apply(toks, len(toks)-1)
	require.True(t, ok)
	assert.Equal(t, 1, consumed)
	assert.Equal(t, "dataset.orders", replacement)
}

func TestStructuralRules_DottedPathRequiresTableContext(t *testing.T) {
	rules := StructuralRules(platform.Snowflake, platform.BigQuery)
	require.Len(t, rules, 1)

	toks := token.Classify("FROM db.public.orders", platform.Snowflake)
	idx := -1
	for i, tok := range toks {
		if tok.Text == "db" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	consumed, replacement, ok := rules[0].Apply(toks, idx)
	require.True(t, ok)
	assert.Equal(t, 5, consumed)
	assert.Equal(t, "`db.public.orders`", replacement)

	// The same path outside a FROM/JOIN clause is a column reference
	// chain, not a table, and must not match.
	selectToks := token.Classify("SELECT db.public.orders", platform.Snowflake)
	for i, tok := range selectToks {
		if tok.Text == "db" {
			_, _, ok := rules[0].Apply(selectToks, i)
			assert.False(t, ok)
		}
	}
}

func TestStructuralRules_TwoPartPathForDatabricksSource(t *testing.T) {
	rules := StructuralRules(platform.Databricks, platform.BigQuery)
	require.Len(t, rules, 1)

	toks := token.Classify("FROM sales.orders", platform.Databricks)
	idx := -1
	for i, tok := range toks {
		if tok.Text == "sales" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	consumed, replacement, ok := rules[0].Apply(toks, idx)
	require.True(t, ok)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, "`sales.orders`", replacement)
}

func TestStructuralRules_SinglePartPathTooShort(t *testing.T) {
	rules := StructuralRules(platform.Snowflake, platform.BigQuery)
	require.Len(t, rules, 1)

	toks := token.Classify("FROM orders", platform.Snowflake)
	_, _, ok := rules[0].Apply(toks, len(toks)-1)
	assert.False(t, ok)
}
