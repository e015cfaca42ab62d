// Package schema extracts a table/column relationship graph from a
// single SQL query by static analysis of its text.
//
// The extractor is heuristic: it scans FROM/JOIN clauses, ON and WHERE
// equality predicates, and the SELECT list. References it cannot
// resolve are skipped, so the resulting graph may be incomplete but is
// never wrong.
package schema

// RelJoinEquality labels a relationship inferred from an equality
// predicate in an ON or WHERE clause.
const RelJoinEquality = "join-equality"

// ColumnNode is a column in the graph. References and ReferencedBy are
// inverse views of the same relation: for every inferred edge a -> b,
// a.References contains b's ID and b.ReferencedBy contains a's ID.
type ColumnNode struct {
	ID           string
	Name         string
	References   []string
	ReferencedBy []string
}

// TableNode is a table in the graph. Identity is the normalized table
// reference; a self-join with two distinct aliases yields two nodes
// keyed by alias.
type TableNode struct {
	ID      string
	Name    string
	Alias   string
	Columns []*ColumnNode
}

// Relationship links two tables by node ID.
type Relationship struct {
	Source string
	Target string
	Type   string
}

// Graph is the extracted schema graph. Tables are ordered by first
// appearance; Relationships are deduplicated by (source, target, type).
type Graph struct {
	Tables        []*TableNode
	Relationships []Relationship
}

// Table returns the table node with the given ID, or nil.
func (g *Graph) Table(id string) *TableNode {
	for _, t := range g.Tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Column returns the column node with the given ID, or nil.
func (g *Graph) Column(id string) *ColumnNode {
	for _, t := range g.Tables {
		for _, c := range t.Columns {
			if c.ID == id {
				return c
			}
		}
	}
	return nil
}

// column returns the named column on t, creating it if absent.
// Identity is the lowercased name, so mixed-case references to the
// same column resolve to one node.
func (t *TableNode) column(name string) *ColumnNode {
	for _, c := range t.Columns {
		if lower(c.Name) == lower(name) {
			return c
		}
	}
	c := &ColumnNode{ID: t.ID + "." + lower(name), Name: name}
	t.Columns = append(t.Columns, c)
	return c
}

// link records the edge from -> to on both inverse views.
func link(from, to *ColumnNode) {
	from.References = appendUnique(from.References, to.ID)
	to.ReferencedBy = appendUnique(to.ReferencedBy, from.ID)
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
