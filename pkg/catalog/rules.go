package catalog

import (
	"strings"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/token"
)

// directRules holds direct-substitution and unsupported-marker rules
// per ordered platform pair. Declaration order is the tie-break order.
var directRules = map[pair][]Rule{
	{platform.BigQuery, platform.Snowflake}: {
		sub("date_add", "DATEADD", SeverityWarning,
			"DATE_ADD converted to DATEADD",
			"Snowflake DATEADD takes (unit, amount, date); review argument order"),
		sub("date_sub", "DATEADD", SeverityWarning,
			"DATE_SUB converted to DATEADD",
			"Negate the amount argument: DATEADD(unit, -n, date)"),
		sub("date_diff", "DATEDIFF", SeverityWarning,
			"DATE_DIFF converted to DATEDIFF",
			"Snowflake DATEDIFF takes (unit, start, end); review argument order"),
		sub("timestamp_diff", "TIMESTAMPDIFF", SeverityWarning,
			"TIMESTAMP_DIFF converted to TIMESTAMPDIFF",
			"Review argument order and timezone handling"),
		sub("format_date", "TO_CHAR", SeverityWarning,
			"FORMAT_DATE converted to TO_CHAR",
			"Format pattern syntax differs; review the format string"),
		sub("parse_date", "TO_DATE", SeverityWarning,
			"PARSE_DATE converted to TO_DATE",
			"Format pattern syntax differs; review the format string"),
		sub("safe_cast", "TRY_CAST", SeverityInfo,
			"SAFE_CAST converted to TRY_CAST",
			"Behavior is equivalent"),
		sub("string_agg", "LISTAGG", SeverityInfo,
			"STRING_AGG converted to LISTAGG",
			"Behavior is equivalent"),
		sub("generate_uuid", "UUID_STRING", SeverityInfo,
			"GENERATE_UUID converted to UUID_STRING",
			"Behavior is equivalent"),
		unsupported("unnest", SeverityError,
			"UNNEST has no direct Snowflake equivalent",
			"Rewrite using LATERAL FLATTEN"),
		unsupportedPhrase([]string{"ml", ".", "predict"}, SeverityError,
			"ML.PREDICT is BigQuery-specific",
			"Snowflake has no in-warehouse ML prediction equivalent"),
	},
	{platform.BigQuery, platform.Databricks}: {
		sub("date_diff", "DATEDIFF", SeverityWarning,
			"DATE_DIFF converted to DATEDIFF",
			"Databricks DATEDIFF takes (end, start); review argument order"),
		sub("timestamp_diff", "TIMESTAMPDIFF", SeverityInfo,
			"TIMESTAMP_DIFF converted to TIMESTAMPDIFF",
			"Behavior is equivalent"),
		sub("format_date", "DATE_FORMAT", SeverityWarning,
			"FORMAT_DATE converted to DATE_FORMAT",
			"Format pattern syntax differs; review the format string"),
		sub("parse_date", "TO_DATE", SeverityWarning,
			"PARSE_DATE converted to TO_DATE",
			"Format pattern syntax differs; review the format string"),
		sub("safe_cast", "TRY_CAST", SeverityInfo,
			"SAFE_CAST converted to TRY_CAST",
			"Behavior is equivalent"),
		sub("generate_uuid", "UUID", SeverityInfo,
			"GENERATE_UUID converted to UUID",
			"Behavior is equivalent"),
		sub("unnest", "EXPLODE", SeverityWarning,
			"UNNEST converted to EXPLODE",
			"EXPLODE is used in the SELECT list or LATERAL VIEW, not FROM"),
		unsupportedPhrase([]string{"ignore", "nulls"}, SeverityError,
			"ARRAY_AGG ... IGNORE NULLS has no Databricks equivalent",
			"Filter nulls before aggregating: FILTER (WHERE expr IS NOT NULL)"),
		unsupportedPhrase([]string{"ml", ".", "predict"}, SeverityError,
			"ML.PREDICT is BigQuery-specific",
			"Databricks has no in-warehouse ML prediction equivalent"),
	},
	{platform.Snowflake, platform.BigQuery}: {
		sub("dateadd", "DATE_ADD", SeverityWarning,
			"DATEADD converted to DATE_ADD",
			"BigQuery DATE_ADD takes (date, INTERVAL n unit); review argument order"),
		sub("datediff", "DATE_DIFF", SeverityWarning,
			"DATEDIFF converted to DATE_DIFF",
			"BigQuery DATE_DIFF takes (end, start, unit); review argument order"),
		sub("to_date", "PARSE_DATE", SeverityWarning,
			"TO_DATE converted to PARSE_DATE",
			"Format pattern syntax differs; review the format string"),
		sub("to_char", "FORMAT_DATE", SeverityWarning,
			"TO_CHAR converted to FORMAT_DATE",
			"Format pattern syntax differs; review the format string"),
		sub("iff", "IF", SeverityInfo,
			"IFF converted to IF",
			"Behavior is equivalent"),
		sub("nvl", "IFNULL", SeverityInfo,
			"NVL converted to IFNULL",
			"Behavior is equivalent"),
		sub("listagg", "STRING_AGG", SeverityInfo,
			"LISTAGG converted to STRING_AGG",
			"Behavior is equivalent"),
		sub("try_cast", "SAFE_CAST", SeverityInfo,
			"TRY_CAST converted to SAFE_CAST",
			"Behavior is equivalent"),
		sub("uuid_string", "GENERATE_UUID", SeverityInfo,
			"UUID_STRING converted to GENERATE_UUID",
			"Behavior is equivalent"),
		sub("minus", "EXCEPT DISTINCT", SeverityInfo,
			"MINUS converted to EXCEPT DISTINCT",
			"Behavior is equivalent"),
		sub("getdate", "CURRENT_TIMESTAMP", SeverityInfo,
			"GETDATE converted to CURRENT_TIMESTAMP",
			"Behavior is equivalent"),
		unsupported("flatten", SeverityError,
			"FLATTEN has no direct BigQuery equivalent",
			"Rewrite using UNNEST"),
		unsupported("ilike", SeverityError,
			"ILIKE has no BigQuery equivalent",
			"Rewrite as LOWER(expr) LIKE LOWER(pattern)"),
	},
	{platform.Snowflake, platform.Databricks}: {
		sub("dateadd", "DATE_ADD", SeverityWarning,
			"DATEADD converted to DATE_ADD",
			"Databricks DATE_ADD takes (start, days); other units need different functions"),
		sub("datediff", "DATEDIFF", SeverityWarning,
			"Snowflake DATEDIFF converted to Databricks DATEDIFF",
			"Databricks DATEDIFF takes (end, start) in days; review arguments"),
		sub("to_char", "DATE_FORMAT", SeverityWarning,
			"TO_CHAR converted to DATE_FORMAT",
			"Format pattern syntax differs; review the format string"),
		sub("iff", "IF", SeverityInfo,
			"IFF converted to IF",
			"Behavior is equivalent"),
		sub("uuid_string", "UUID", SeverityInfo,
			"UUID_STRING converted to UUID",
			"Behavior is equivalent"),
		sub("getdate", "CURRENT_TIMESTAMP", SeverityInfo,
			"GETDATE converted to CURRENT_TIMESTAMP",
			"Behavior is equivalent"),
		sub("flatten", "EXPLODE", SeverityWarning,
			"FLATTEN converted to EXPLODE",
			"Use LATERAL VIEW EXPLODE instead of LATERAL FLATTEN"),
		unsupported("listagg", SeverityError,
			"LISTAGG has no direct Databricks equivalent",
			"Rewrite as ARRAY_JOIN(COLLECT_LIST(expr), delimiter)"),
	},
	{platform.Databricks, platform.BigQuery}: {
		sub("datediff", "DATE_DIFF", SeverityWarning,
			"DATEDIFF converted to DATE_DIFF",
			"BigQuery DATE_DIFF takes (end, start, unit); review argument order"),
		sub("add_months", "DATE_ADD", SeverityWarning,
			"ADD_MONTHS converted to DATE_ADD",
			"Use DATE_ADD(date, INTERVAL n MONTH)"),
		sub("from_unixtime", "TIMESTAMP_SECONDS", SeverityWarning,
			"FROM_UNIXTIME converted to TIMESTAMP_SECONDS",
			"TIMESTAMP_SECONDS returns TIMESTAMP, not a formatted string"),
		sub("unix_timestamp", "UNIX_SECONDS", SeverityWarning,
			"UNIX_TIMESTAMP converted to UNIX_SECONDS",
			"UNIX_SECONDS requires a TIMESTAMP argument"),
		sub("collect_list", "ARRAY_AGG", SeverityInfo,
			"COLLECT_LIST converted to ARRAY_AGG",
			"Behavior is equivalent"),
		sub("collect_set", "ARRAY_AGG", SeverityWarning,
			"COLLECT_SET converted to ARRAY_AGG",
			"Add DISTINCT to preserve set semantics"),
		sub("explode", "UNNEST", SeverityWarning,
			"EXPLODE converted to UNNEST",
			"UNNEST belongs in the FROM clause, not the SELECT list"),
		sub("uuid", "GENERATE_UUID", SeverityInfo,
			"UUID converted to GENERATE_UUID",
			"Behavior is equivalent"),
		unsupported("distribute", SeverityError,
			"DISTRIBUTE BY is Databricks-specific",
			"BigQuery manages distribution automatically; remove the clause"),
		unsupported("optimize", SeverityError,
			"OPTIMIZE is Databricks-specific",
			"BigQuery has no manual compaction command"),
	},
	{platform.Databricks, platform.Snowflake}: {
		sub("datediff", "DATEDIFF", SeverityWarning,
			"Databricks DATEDIFF converted to Snowflake DATEDIFF",
			"Snowflake DATEDIFF takes (unit, start, end); review arguments"),
		sub("date_add", "DATEADD", SeverityWarning,
			"DATE_ADD converted to DATEADD",
			"Snowflake DATEADD takes (unit, amount, date); review argument order"),
		sub("from_unixtime", "TO_TIMESTAMP", SeverityWarning,
			"FROM_UNIXTIME converted to TO_TIMESTAMP",
			"TO_TIMESTAMP returns TIMESTAMP, not a formatted string"),
		sub("collect_list", "ARRAY_AGG", SeverityInfo,
			"COLLECT_LIST converted to ARRAY_AGG",
			"Behavior is equivalent"),
		sub("collect_set", "ARRAY_AGG", SeverityWarning,
			"COLLECT_SET converted to ARRAY_AGG",
			"Add DISTINCT to preserve set semantics"),
		sub("explode", "FLATTEN", SeverityWarning,
			"EXPLODE converted to FLATTEN",
			"Use LATERAL FLATTEN(input => expr) in the FROM clause"),
		sub("uuid", "UUID_STRING", SeverityInfo,
			"UUID converted to UUID_STRING",
			"Behavior is equivalent"),
		unsupported("distribute", SeverityError,
			"DISTRIBUTE BY is Databricks-specific",
			"Snowflake manages distribution automatically; remove the clause"),
		unsupported("optimize", SeverityError,
			"OPTIMIZE is Databricks-specific",
			"Snowflake has no manual compaction command"),
	},
}

// structuralRules holds table-qualification rewrites per ordered pair.
var structuralRules = map[pair][]StructuralRule{
	{platform.BigQuery, platform.Snowflake}: {
		backtickPathRule("Converted BigQuery table reference to Snowflake database.schema.table format", keepAllParts),
	},
	{platform.BigQuery, platform.Databricks}: {
		backtickPathRule("Converted BigQuery table reference to Databricks schema.table format", dropFirstPart),
	},
	{platform.Snowflake, platform.BigQuery}: {
		dottedPathRule(3, "Converted table reference to BigQuery `project.dataset.table` format", backtickAllParts),
	},
	{platform.Snowflake, platform.Databricks}: {
		dottedPathRule(3, "Converted table reference to Databricks schema.table format", joinedDropFirst),
	},
	{platform.Databricks, platform.BigQuery}: {
		dottedPathRule(2, "Converted table reference to BigQuery backtick-quoted format", backtickAllParts),
	},
}

func sub(match, replace string, sev Severity, message, suggestion string) Rule {
	return Rule{
		Match:      []string{match},
		Replace:    replace,
		Severity:   sev,
		Message:    message,
		Suggestion: suggestion,
	}
}

func unsupported(match string, sev Severity, message, suggestion string) Rule {
	return unsupportedPhrase([]string{match}, sev, message, suggestion)
}

func unsupportedPhrase(match []string, sev Severity, message, suggestion string) Rule {
	return Rule{
		Match:       match,
		Unsupported: true,
		Severity:    sev,
		Message:     message,
		Suggestion:  suggestion,
	}
}

// ---------- structural matchers ----------

func keepAllParts(parts []string) string {
	return strings.Join(parts, ".")
}

func dropFirstPart(parts []string) string {
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, ".")
}

func backtickAllParts(parts []string) string {
	return "`" + strings.Join(parts, ".") + "`"
}

func joinedDropFirst(parts []string) string {
	return dropFirstPart(parts)
}

// backtickPathRule matches a backtick-quoted multi-part table path such
// as `project.dataset.table` and reformats its segments.
func backtickPathRule(message string, format func(parts []string) string) StructuralRule {
	return StructuralRule{
		Name:     "backtick-path",
		Message:  message,
		Severity: SeverityInfo,
		Apply: func(tokens []token.Token, i int) (int, string, bool) {
			t := tokens[i]
			if t.Kind != token.KindString || len(t.Text) < 2 || t.Text[0] != '`' {
				return 0, "", false
			}
			inner := strings.Trim(t.Text, "`")
			if !strings.Contains(inner, ".") {
				return 0, "", false
			}
			return 1, format(strings.Split(inner, ".")), true
		},
	}
}

// dottedPathRule matches a dotted identifier path of at least minParts
// segments directly after FROM or JOIN and reformats it. The path
// tokens must be adjacent (no whitespace between segments).
func dottedPathRule(minParts int, message string, format func(parts []string) string) StructuralRule {
	return StructuralRule{
		Name:     "dotted-path",
		Message:  message,
		Severity: SeverityInfo,
		Apply: func(tokens []token.Token, i int) (int, string, bool) {
			if !inTableContext(tokens, i) {
				return 0, "", false
			}
			parts, consumed := matchDottedPath(tokens, i)
			if len(parts) < minParts {
				return 0, "", false
			}
			return consumed, format(parts), true
		},
	}
}

// inTableContext reports whether the nearest significant token before
// i is FROM or JOIN.
func inTableContext(tokens []token.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch tokens[j].Kind {
		case token.KindWhitespace, token.KindComment:
			continue
		}
		word := strings.ToLower(tokens[j].Text)
		return word == "from" || word == "join"
	}
	return false
}

// matchDottedPath consumes an ident(.ident)* run starting at i and
// returns the path segments and the number of tokens consumed.
func matchDottedPath(tokens []token.Token, i int) ([]string, int) {
	if tokens[i].Kind != token.KindIdent {
		return nil, 0
	}
	parts := []string{tokens[i].Text}
	consumed := 1
	for {
		j := i + consumed
		if j+1 >= len(tokens) || tokens[j].Text != "." || tokens[j+1].Kind != token.KindIdent {
			break
		}
		parts = append(parts, tokens[j+1].Text)
		consumed += 2
	}
	return parts, consumed
}
