// Package translate rewrites SQL between warehouse platforms using the
// rule catalog and scores how safely the result can be applied.
package translate

import (
	"strings"

	"github.com/sqlbridge-labs/sqlbridge/pkg/catalog"
	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/token"
)

// Issue describes one construct the translator rewrote or could not
// rewrite. An error severity always means the construct was left
// unchanged because no safe equivalent exists.
type Issue struct {
	Line       int // 1-based; 0 means no line information
	Message    string
	Suggestion string
	Severity   catalog.Severity
}

// Result is the outcome of a translation.
type Result struct {
	OriginalQuery  string
	ConvertedQuery string
	Target         platform.Platform
	Issues         []Issue
	Score          int // 0-100 compatibility score
}

// Translate rewrites sql from the source platform into the target
// platform using the default score weights. It never fails: a query
// with no detectable platform-specific constructs passes through
// unchanged with a score of 100.
func Translate(sql string, source, target platform.Platform) Result {
	return TranslateWithWeights(sql, source, target, catalog.DefaultWeights)
}

// TranslateWithWeights is Translate with caller-supplied score weights.
func TranslateWithWeights(sql string, source, target platform.Platform, weights catalog.Weights) Result {
	// Identity case: no rule lookup at all.
	if source == target {
		return Result{OriginalQuery: sql, ConvertedQuery: sql, Target: target, Score: 100}
	}

	tokens := token.Classify(sql, source)
	structural := catalog.StructuralRules(source, target)
	direct := catalog.Rules(source, target)

	var out strings.Builder
	var issues []Issue

	for i := 0; i < len(tokens); {
		t := tokens[i]

		if t.Kind == token.KindWhitespace || t.Kind == token.KindComment {
			out.WriteString(t.Text)
			i++
			continue
		}

		// Structural rules first; longest match wins, declaration order
		// breaks ties.
		if consumed, replacement, rule := applyStructural(structural, tokens, i); consumed > 0 {
			out.WriteString(replacement)
			issues = append(issues, Issue{
				Line:       t.Line,
				Message:    rule.Message,
				Suggestion: rule.Suggestion,
				Severity:   rule.Severity,
			})
			i += consumed
			continue
		}

		if consumed, replacement, rule := applyDirect(direct, tokens, i); consumed > 0 {
			out.WriteString(replacement)
			issues = append(issues, Issue{
				Line:       t.Line,
				Message:    rule.Message,
				Suggestion: rule.Suggestion,
				Severity:   rule.Severity,
			})
			i += consumed
			continue
		}

		out.WriteString(t.Text)
		i++
	}

	return Result{
		OriginalQuery:  sql,
		ConvertedQuery: out.String(),
		Target:         target,
		Issues:         issues,
		Score:          score(issues, weights),
	}
}

// applyStructural tries every structural rule at position i and keeps
// the longest match.
func applyStructural(rules []catalog.StructuralRule, tokens []token.Token, i int) (int, string, *catalog.StructuralRule) {
	best := -1
	bestConsumed := 0
	bestReplacement := ""
	for r := range rules {
		consumed, replacement, ok := rules[r].Apply(tokens, i)
		if ok && consumed > bestConsumed {
			best = r
			bestConsumed = consumed
			bestReplacement = replacement
		}
	}
	if best < 0 {
		return 0, "", nil
	}
	return bestConsumed, bestReplacement, &rules[best]
}

// applyDirect tries every direct rule at position i and keeps the
// longest phrase match. An unsupported rule keeps the original text.
func applyDirect(rules []catalog.Rule, tokens []token.Token, i int) (int, string, *catalog.Rule) {
	best := -1
	bestConsumed := 0
	for r := range rules {
		if consumed, ok := matchPhrase(rules[r].Match, tokens, i); ok && consumed > bestConsumed {
			best = r
			bestConsumed = consumed
		}
	}
	if best < 0 {
		return 0, "", nil
	}
	rule := &rules[best]
	if rule.Unsupported {
		// Leave the matched span byte-identical to the source.
		var original strings.Builder
		for j := i; j < i+bestConsumed; j++ {
			original.WriteString(tokens[j].Text)
		}
		return bestConsumed, original.String(), rule
	}
	return bestConsumed, rule.Replace, rule
}

// matchPhrase matches a lowercase phrase against consecutive tokens
// starting at i, skipping whitespace and comments between phrase
// words. It returns the total number of raw tokens covered.
func matchPhrase(phrase []string, tokens []token.Token, i int) (int, bool) {
	j := i
	for w := 0; w < len(phrase); w++ {
		for j < len(tokens) && (tokens[j].Kind == token.KindWhitespace || tokens[j].Kind == token.KindComment) {
			// Interior whitespace only: the first phrase word must land
			// exactly on tokens[i].
			if w == 0 {
				return 0, false
			}
			j++
		}
		if j >= len(tokens) || strings.ToLower(tokens[j].Text) != phrase[w] {
			return 0, false
		}
		j++
	}
	return j - i, true
}

// score computes the 0-100 compatibility score. Issues with the same
// message on the same line count once toward the distinct tally.
func score(issues []Issue, weights catalog.Weights) int {
	type key struct {
		line    int
		message string
	}
	seen := make(map[key]struct{})
	s := 100
	for _, issue := range issues {
		k := key{issue.Line, issue.Message}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		s -= weights.Penalty(issue.Severity)
	}
	if s < 0 {
		return 0
	}
	return s
}
