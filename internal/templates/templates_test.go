package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/schema"
	"github.com/sqlbridge-labs/sqlbridge/pkg/token"
)

func TestList_EmptyFiltersMatchAll(t *testing.T) {
	all := List("", "")
	assert.NotEmpty(t, all)

	// Every platform has the same template names.
	counts := map[platform.Platform]int{}
	for _, tpl := range all {
		counts[tpl.Platform]++
	}
	for _, p := range platform.All() {
		assert.Equal(t, counts[platform.BigQuery], counts[p], "uneven coverage for %s", p)
	}
}

func TestList_FilterByPlatform(t *testing.T) {
	for _, p := range platform.All() {
		for _, tpl := range List(p, "") {
			assert.Equal(t, p, tpl.Platform)
		}
	}
}

func TestList_FilterByCategory(t *testing.T) {
	for _, category := range Categories {
		matched := List("", category)
		require.NotEmpty(t, matched, "no templates in category %s", category)
		for _, tpl := range matched {
			assert.Equal(t, category, tpl.Category)
		}
	}
}

func TestList_CombinedFilter(t *testing.T) {
	matched := List(platform.Snowflake, "joins")
	require.Len(t, matched, 1)
	assert.Equal(t, "orders-with-users", matched[0].Name)
}

func TestList_UnknownCategoryEmpty(t *testing.T) {
	assert.Empty(t, List("", "window-functions"))
}

func TestTemplates_QueriesTokenizeAndExtract(t *testing.T) {
	// Every template query must round-trip through the classifier and
	// reference at least one table, so the worked examples behave in
	// every command that accepts them.
	for _, tpl := range List("", "") {
		toks := token.Classify(tpl.Query, tpl.Platform)
		assert.Equal(t, tpl.Query, token.Reassemble(toks), "%s/%s", tpl.Platform, tpl.Name)

		g := schema.Extract(tpl.Query, tpl.Platform)
		assert.NotEmpty(t, g.Tables, "%s/%s has no table references", tpl.Platform, tpl.Name)
	}
}
