package schema

import (
	"strings"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/token"
)

// Extract builds a schema graph from a single query. A query with no
// FROM clause yields an empty graph; references that cannot be
// resolved are skipped.
func Extract(sql string, p platform.Platform) *Graph {
	toks := significant(token.Classify(sql, p))
	e := newExtractor()
	e.registerTables(toks)
	e.attributeSelectColumns(toks)
	e.inferRelationships(toks)
	return &Graph{Tables: e.tables, Relationships: e.rels}
}

// significant drops whitespace and comment tokens.
func significant(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.KindWhitespace || t.Kind == token.KindComment {
			continue
		}
		out = append(out, t)
	}
	return out
}

// extractor accumulates graph state for one analysis call. All maps
// are scoped to the call; nothing leaks between extractions.
type extractor struct {
	tables    []*TableNode
	byName    map[string]*TableNode // normalized full reference -> first node
	byLastSeg map[string]*TableNode // last path segment -> node
	byAlias   map[string]*TableNode // lowercase alias -> node
	rels      []Relationship
	relSeen   map[Relationship]struct{}
}

func newExtractor() *extractor {
	return &extractor{
		byName:    make(map[string]*TableNode),
		byLastSeg: make(map[string]*TableNode),
		byAlias:   make(map[string]*TableNode),
		relSeen:   make(map[Relationship]struct{}),
	}
}

// ---------- pass 1: tables ----------

// registerTables finds every FROM and JOIN clause and registers the
// table references that follow, including comma-separated lists.
func (e *extractor) registerTables(toks []token.Token) {
	for i := 0; i < len(toks); i++ {
		w := lower(toks[i].Text)
		if w != "from" && w != "join" {
			continue
		}
		next := i + 1
		for next < len(toks) {
			name, alias, advanced := parseTableRef(toks, next)
			if advanced == next {
				break
			}
			next = advanced
			if name != "" {
				e.register(name, alias)
			}
			// Comma-separated table list (old-style joins).
			if w == "from" && next < len(toks) && toks[next].Text == "," {
				next++
				continue
			}
			break
		}
		i = next - 1
	}
}

// parseTableRef reads one table reference at position i: a backtick
// path, a bracket-quoted path, or a dotted identifier path, followed
// by an optional alias. It returns the new position; a position equal
// to i means nothing parseable was found (e.g. a subquery).
func parseTableRef(toks []token.Token, i int) (name, alias string, next int) {
	if i >= len(toks) {
		return "", "", i
	}
	t := toks[i]

	switch {
	case t.Kind == token.KindString && strings.HasPrefix(t.Text, "`"):
		name = strings.Trim(t.Text, "`")
		next = i + 1
	default:
		var parts []string
		parts, next = readDottedPath(toks, i)
		if next == i {
			return "", "", i
		}
		name = strings.Join(parts, ".")
	}

	// Optional alias: AS identifier, or a trailing bare identifier.
	if next < len(toks) && lower(toks[next].Text) == "as" && next+1 < len(toks) && isWordToken(toks[next+1]) {
		alias = toks[next+1].Text
		next += 2
	} else if next < len(toks) && isWordToken(toks[next]) {
		alias = toks[next].Text
		next++
	}
	return name, alias, next
}

// readDottedPath reads segment(.segment)* where each segment is a bare
// identifier or a bracket-quoted name.
func readDottedPath(toks []token.Token, i int) ([]string, int) {
	seg, next := readSegment(toks, i)
	if next == i {
		return nil, i
	}
	parts := []string{seg}
	for next < len(toks) && toks[next].Text == "." {
		seg, after := readSegment(toks, next+1)
		if after == next+1 {
			break
		}
		parts = append(parts, seg)
		next = after
	}
	return parts, next
}

// readSegment reads one path segment at i.
func readSegment(toks []token.Token, i int) (string, int) {
	if i >= len(toks) {
		return "", i
	}
	if toks[i].Text == "[" {
		var b strings.Builder
		j := i + 1
		for j < len(toks) && toks[j].Text != "]" {
			b.WriteString(toks[j].Text)
			j++
		}
		if j >= len(toks) {
			return "", i // unterminated bracket, give up
		}
		return b.String(), j + 1
	}
	if isWordToken(toks[i]) {
		return toks[i].Text, i + 1
	}
	return "", i
}

// register adds a table node, collapsing repeated references to the
// same normalized name unless the aliases differ (self-join), in which
// case the second reference becomes a distinct alias-keyed node.
func (e *extractor) register(name, alias string) *TableNode {
	norm := lower(name)
	if existing, ok := e.byName[norm]; ok {
		if alias == "" || lower(alias) == lower(existing.Alias) {
			return existing
		}
		// Self-join under a different alias: distinct node keyed by alias.
		if node, ok := e.byAlias[lower(alias)]; ok {
			return node
		}
		node := &TableNode{ID: norm + ":" + lower(alias), Name: name, Alias: alias}
		e.tables = append(e.tables, node)
		e.byAlias[lower(alias)] = node
		return node
	}

	node := &TableNode{ID: norm, Name: name, Alias: alias}
	e.tables = append(e.tables, node)
	e.byName[norm] = node
	if alias != "" {
		e.byAlias[lower(alias)] = node
	}
	if seg := lastSegment(norm); seg != norm {
		if _, ok := e.byLastSeg[seg]; !ok {
			e.byLastSeg[seg] = node
		}
	}
	return node
}

// resolve maps a column qualifier to a table node: alias first, then
// full reference, then last path segment.
func (e *extractor) resolve(qualifier string) *TableNode {
	q := lower(qualifier)
	if node, ok := e.byAlias[q]; ok {
		return node
	}
	if node, ok := e.byName[q]; ok {
		return node
	}
	if node, ok := e.byLastSeg[q]; ok {
		return node
	}
	return nil
}

// soleTable returns the only registered table, or nil when the scope
// is empty or ambiguous.
func (e *extractor) soleTable() *TableNode {
	if len(e.tables) == 1 {
		return e.tables[0]
	}
	return nil
}

// ---------- pass 2: SELECT list columns ----------

// attributeSelectColumns attributes column identifiers in SELECT lists
// to their owning tables.
func (e *extractor) attributeSelectColumns(toks []token.Token) {
	inSelect := false
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch lower(t.Text) {
		case "select":
			inSelect = true
			continue
		case "from":
			inSelect = false
			continue
		}
		if !inSelect {
			continue
		}

		// alias after AS belongs to the output, not a table
		if lower(t.Text) == "as" {
			i++
			continue
		}

		if !isWordToken(t) {
			continue
		}

		// qualified reference: qual.col or qual.*
		if i+2 < len(toks) && toks[i+1].Text == "." {
			if toks[i+2].Text == "*" {
				i += 2
				continue
			}
			if isWordToken(toks[i+2]) {
				if table := e.resolve(t.Text); table != nil {
					table.column(toks[i+2].Text)
				}
				i += 2
				continue
			}
		}

		// function call: name(...)
		if i+1 < len(toks) && toks[i+1].Text == "(" {
			continue
		}

		// bare column: attributable only with a single table in scope
		if table := e.soleTable(); table != nil {
			table.column(t.Text)
		}
	}
}

// ---------- pass 3: equality predicates ----------

// inferRelationships scans ON and WHERE clauses for
// qualifier.column = qualifier.column predicates and records a
// join-equality relationship for each.
func (e *extractor) inferRelationships(toks []token.Token) {
	inCond := false
	for i := 0; i < len(toks); i++ {
		switch lower(toks[i].Text) {
		case "on", "where":
			inCond = true
			continue
		case "select", "from", "join", "group", "having", "order", "limit", "union", "qualify", "window":
			inCond = false
			continue
		}
		if !inCond {
			continue
		}

		leftQual, leftCol, next := readColumnRef(toks, i)
		if next == i || next >= len(toks) || toks[next].Text != "=" {
			continue
		}
		rightQual, rightCol, after := readColumnRef(toks, next+1)
		if after == next+1 {
			continue
		}

		leftTable := e.resolveSide(leftQual)
		rightTable := e.resolveSide(rightQual)
		if leftTable == nil || rightTable == nil {
			i = after - 1 // unresolvable side: skip, graph stays incomplete
			continue
		}

		left := leftTable.column(leftCol)
		right := rightTable.column(rightCol)
		link(left, right)

		if leftTable.ID != rightTable.ID {
			e.addRelationship(Relationship{Source: leftTable.ID, Target: rightTable.ID, Type: RelJoinEquality})
		}
		i = after - 1
	}
}

// readColumnRef reads [qual.]col at i. Both sides must be bare
// identifiers; literals and expressions do not match.
func readColumnRef(toks []token.Token, i int) (qual, col string, next int) {
	if i >= len(toks) || !isWordToken(toks[i]) {
		return "", "", i
	}
	if i+2 < len(toks) && toks[i+1].Text == "." && isWordToken(toks[i+2]) {
		return toks[i].Text, toks[i+2].Text, i + 3
	}
	return "", toks[i].Text, i + 1
}

// resolveSide resolves a qualifier, falling back to the sole table in
// scope for unqualified references.
func (e *extractor) resolveSide(qual string) *TableNode {
	if qual == "" {
		return e.soleTable()
	}
	return e.resolve(qual)
}

func (e *extractor) addRelationship(rel Relationship) {
	if _, ok := e.relSeen[rel]; ok {
		return
	}
	e.relSeen[rel] = struct{}{}
	e.rels = append(e.rels, rel)
}

// ---------- helpers ----------

func lower(s string) string {
	return strings.ToLower(s)
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// isWordToken reports whether t is a bare identifier usable as a table
// segment, alias, or column name.
func isWordToken(t token.Token) bool {
	if t.Kind != token.KindIdent || t.Text == "" {
		return false
	}
	ch := t.Text[0]
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
