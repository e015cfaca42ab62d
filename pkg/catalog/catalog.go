// Package catalog holds the static rewrite rules used to migrate SQL
// between warehouse platforms.
//
// The platform set is fixed by design, so the catalog is a closed table
// keyed by ordered (source, target) pairs rather than a runtime
// registry. New platforms require catalog authorship, not plugin
// loading.
package catalog

import (
	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/token"
)

// Severity indicates how much review a rewrite needs.
type Severity int

const (
	// SeverityError means the construct was left unrewritten because no
	// safe equivalent exists in the target platform.
	SeverityError Severity = iota
	// SeverityWarning means the substitution changes semantics in edge
	// cases and should be reviewed.
	SeverityWarning
	// SeverityInfo means the substitution is purely syntactic.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Rule is a direct-substitution or unsupported-marker rule. Match is a
// lowercase phrase matched against consecutive non-whitespace tokens.
// An unsupported rule has no Replace and leaves the source text
// unchanged.
type Rule struct {
	Match       []string
	Replace     string
	Unsupported bool
	Message     string
	Suggestion  string
	Severity    Severity
}

// StructuralRule rewrites table-qualification patterns over identifier
// sequences rather than token by token.
type StructuralRule struct {
	Name       string
	Message    string
	Suggestion string
	Severity   Severity

	// Apply attempts a rewrite at tokens[i]. It returns the number of
	// tokens consumed and the replacement text when the pattern matches.
	Apply func(tokens []token.Token, i int) (consumed int, replacement string, ok bool)
}

// Weights are the per-severity score penalties. They are constants of
// the scoring design, exposed so callers can tune them.
type Weights struct {
	Error   int
	Warning int
	Info    int
}

// DefaultWeights are the standard penalties: errors block safe
// application, warnings need review, info issues are cosmetic.
var DefaultWeights = Weights{Error: 15, Warning: 5, Info: 1}

// Penalty returns the score penalty for a severity.
func (w Weights) Penalty(s Severity) int {
	switch s {
	case SeverityError:
		return w.Error
	case SeverityWarning:
		return w.Warning
	case SeverityInfo:
		return w.Info
	default:
		return 0
	}
}

type pair struct {
	source, target platform.Platform
}

// Rules returns the direct-substitution and unsupported-marker rules
// for the ordered platform pair, in declaration order.
func Rules(source, target platform.Platform) []Rule {
	return directRules[pair{source, target}]
}

// StructuralRules returns the table-qualification rules for the
// ordered platform pair, in declaration order.
func StructuralRules(source, target platform.Platform) []StructuralRule {
	return structuralRules[pair{source, target}]
}
