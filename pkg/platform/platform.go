// Package platform defines the warehouse platforms supported by the
// migration engine and the schema extractor.
package platform

import "fmt"

// Platform identifies a SQL warehouse dialect.
type Platform string

const (
	// BigQuery is Google BigQuery (GoogleSQL).
	BigQuery Platform = "bigquery"
	// Snowflake is the Snowflake data warehouse.
	Snowflake Platform = "snowflake"
	// Databricks is Databricks SQL (Spark SQL).
	Databricks Platform = "databricks"
)

// All returns every supported platform in a fixed order.
func All() []Platform {
	return []Platform{BigQuery, Snowflake, Databricks}
}

// Parse converts a user-supplied name into a Platform.
// Matching is exact against the canonical lowercase names.
func Parse(name string) (Platform, error) {
	switch Platform(name) {
	case BigQuery, Snowflake, Databricks:
		return Platform(name), nil
	}
	return "", fmt.Errorf("unknown platform: %q (expected bigquery, snowflake, or databricks)", name)
}

// String returns the canonical lowercase name.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the human-readable product name.
func (p Platform) DisplayName() string {
	switch p {
	case BigQuery:
		return "BigQuery"
	case Snowflake:
		return "Snowflake"
	case Databricks:
		return "Databricks"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case BigQuery, Snowflake, Databricks:
		return true
	}
	return false
}
