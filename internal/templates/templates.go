// Package templates provides a static library of example queries per
// platform and category.
package templates

import "github.com/sqlbridge-labs/sqlbridge/pkg/platform"

// Template is one example query.
type Template struct {
	Name     string
	Category string
	Platform platform.Platform
	Query    string
}

// Categories in display order.
var Categories = []string{"basic", "joins", "aggregation", "dates"}

var library = []Template{
	{
		Name:     "simple-select",
		Category: "basic",
		Platform: platform.BigQuery,
		Query:    "SELECT id, name, created_at\nFROM `my-project.analytics.users`\nLIMIT 100",
	},
	{
		Name:     "simple-select",
		Category: "basic",
		Platform: platform.Snowflake,
		Query:    "SELECT id, name, created_at\nFROM analytics.public.users\nLIMIT 100",
	},
	{
		Name:     "simple-select",
		Category: "basic",
		Platform: platform.Databricks,
		Query:    "SELECT id, name, created_at\nFROM analytics.users\nLIMIT 100",
	},
	{
		Name:     "orders-with-users",
		Category: "joins",
		Platform: platform.BigQuery,
		Query:    "SELECT o.id, o.total, u.email\nFROM `my-project.sales.orders` o\nJOIN `my-project.sales.users` u ON o.user_id = u.id",
	},
	{
		Name:     "orders-with-users",
		Category: "joins",
		Platform: platform.Snowflake,
		Query:    "SELECT o.id, o.total, u.email\nFROM sales.public.orders o\nJOIN sales.public.users u ON o.user_id = u.id",
	},
	{
		Name:     "orders-with-users",
		Category: "joins",
		Platform: platform.Databricks,
		Query:    "SELECT o.id, o.total, u.email\nFROM sales.orders o\nJOIN sales.users u ON o.user_id = u.id",
	},
	{
		Name:     "daily-revenue",
		Category: "aggregation",
		Platform: platform.BigQuery,
		Query:    "SELECT order_date, SUM(total) AS revenue, COUNT(*) AS orders\nFROM `my-project.sales.orders`\nGROUP BY order_date\nORDER BY order_date",
	},
	{
		Name:     "daily-revenue",
		Category: "aggregation",
		Platform: platform.Snowflake,
		Query:    "SELECT order_date, SUM(total) AS revenue, COUNT(*) AS orders\nFROM sales.public.orders\nGROUP BY order_date\nORDER BY order_date",
	},
	{
		Name:     "daily-revenue",
		Category: "aggregation",
		Platform: platform.Databricks,
		Query:    "SELECT order_date, SUM(total) AS revenue, COUNT(*) AS orders\nFROM sales.orders\nGROUP BY order_date\nORDER BY order_date",
	},
	{
		Name:     "recent-orders",
		Category: "dates",
		Platform: platform.BigQuery,
		Query:    "SELECT id, total\nFROM `my-project.sales.orders`\nWHERE order_date >= DATE_SUB(CURRENT_DATE(), INTERVAL 7 DAY)",
	},
	{
		Name:     "recent-orders",
		Category: "dates",
		Platform: platform.Snowflake,
		Query:    "SELECT id, total\nFROM sales.public.orders\nWHERE order_date >= DATEADD(DAY, -7, CURRENT_DATE())",
	},
	{
		Name:     "recent-orders",
		Category: "dates",
		Platform: platform.Databricks,
		Query:    "SELECT id, total\nFROM sales.orders\nWHERE order_date >= DATE_SUB(CURRENT_DATE(), 7)",
	},
}

// List returns templates filtered by platform and category. Empty
// filter values match everything. Order is library declaration order.
func List(p platform.Platform, category string) []Template {
	var out []Template
	for _, t := range library {
		if p != "" && t.Platform != p {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}
