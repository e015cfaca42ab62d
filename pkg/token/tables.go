package token

import "github.com/sqlbridge-labs/sqlbridge/pkg/platform"

// operators is the fixed closed operator set. Longer operators are
// listed first so the scanner can match greedily.
var operators = []string{"<>", "!=", ">=", "<=", "=", ">", "<", "+", "-", "*", "/", "%"}

// commonKeywords are keywords shared by all three platforms.
var commonKeywords = map[string]struct{}{}

// commonFunctions are function names shared by all three platforms.
var commonFunctions = map[string]struct{}{}

// platformKeywords are keywords specific to a platform's dialect.
// Entries may overlap between platforms; classification only consults
// the table of the platform being classified.
var platformKeywords = map[platform.Platform]map[string]struct{}{}

// platformFunctions are function names specific to a platform's
// dialect. Entries may overlap between platforms.
var platformFunctions = map[platform.Platform]map[string]struct{}{}

func init() {
	for _, kw := range []string{
		"select", "from", "where", "join", "inner", "left", "right", "full",
		"outer", "cross", "on", "using", "as", "and", "or", "not", "in",
		"exists", "between", "like", "is", "group", "by", "order", "having",
		"limit", "offset", "union", "all", "distinct", "case", "when", "then",
		"else", "end", "with", "insert", "into", "values", "update", "set",
		"delete", "create", "table", "view", "drop", "alter", "asc", "desc",
		"interval", "day", "month", "year", "hour", "minute", "second",
		"over", "partition", "rows", "window",
	} {
		commonKeywords[kw] = struct{}{}
	}

	for _, fn := range []string{
		"count", "sum", "avg", "min", "max", "coalesce", "cast", "concat",
		"upper", "lower", "trim", "ltrim", "rtrim", "substring", "round",
		"floor", "ceil", "abs", "length", "replace", "nullif", "greatest",
		"least", "row_number", "rank", "dense_rank", "lag", "lead",
		"current_timestamp", "date_trunc",
	} {
		commonFunctions[fn] = struct{}{}
	}

	platformKeywords[platform.BigQuery] = wordSet(
		"unnest", "struct", "array", "options", "safe",
	)
	platformKeywords[platform.Snowflake] = wordSet(
		"qualify", "ilike", "rlike", "regexp", "tablesample", "sample", "minus",
	)
	platformKeywords[platform.Databricks] = wordSet(
		"lateral", "distribute", "cluster", "tblproperties", "zorder", "optimize",
	)

	platformFunctions[platform.BigQuery] = wordSet(
		"date_add", "date_sub", "date_diff", "timestamp_add", "timestamp_diff",
		"current_date", "format_date", "parse_date", "safe_cast", "array_agg",
		"string_agg", "generate_uuid", "regexp_extract",
	)
	platformFunctions[platform.Snowflake] = wordSet(
		"dateadd", "datediff", "to_date", "to_char", "to_timestamp", "iff",
		"nvl", "listagg", "try_cast", "flatten", "object_construct",
		"current_date", "uuid_string", "getdate",
	)
	platformFunctions[platform.Databricks] = wordSet(
		"date_add", "date_sub", "datediff", "add_months", "from_unixtime",
		"unix_timestamp", "current_date", "collect_list", "collect_set",
		"explode", "regexp_extract", "uuid",
	)
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsCommonKeyword reports whether word (lowercase) is a shared keyword.
func IsCommonKeyword(word string) bool {
	_, ok := commonKeywords[word]
	return ok
}

// IsPlatformKeyword reports whether word (lowercase) is specific to p.
func IsPlatformKeyword(word string, p platform.Platform) bool {
	_, ok := platformKeywords[p][word]
	return ok
}

// IsCommonFunction reports whether word (lowercase) is a shared function name.
func IsCommonFunction(word string) bool {
	_, ok := commonFunctions[word]
	return ok
}

// IsPlatformFunction reports whether word (lowercase) is a function
// specific to p.
func IsPlatformFunction(word string, p platform.Platform) bool {
	_, ok := platformFunctions[p][word]
	return ok
}
