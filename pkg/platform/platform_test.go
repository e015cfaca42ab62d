package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, p := range All() {
		parsed, err := Parse(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := Parse("redshift")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redshift")

	_, err = Parse("")
	assert.Error(t, err)

	// Matching is exact: no case folding.
	_, err = Parse("BigQuery")
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "BigQuery", BigQuery.DisplayName())
	assert.Equal(t, "Snowflake", Snowflake.DisplayName())
	assert.Equal(t, "Databricks", Databricks.DisplayName())
	assert.Equal(t, "mystery", Platform("mystery").DisplayName())
}

func TestValid(t *testing.T) {
	for _, p := range All() {
		assert.True(t, p.Valid())
	}
	assert.False(t, Platform("redshift").Valid())
	assert.False(t, Platform("").Valid())
}
