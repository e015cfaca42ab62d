// Package output renders analysis results as text tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sqlbridge-labs/sqlbridge/internal/history"
	"github.com/sqlbridge-labs/sqlbridge/internal/templates"
	"github.com/sqlbridge-labs/sqlbridge/pkg/export"
	"github.com/sqlbridge-labs/sqlbridge/pkg/schema"
	"github.com/sqlbridge-labs/sqlbridge/pkg/translate"
)

// Mode selects the rendering style.
type Mode string

const (
	// ModeTable renders human-readable tables.
	ModeTable Mode = "table"
	// ModeJSON renders machine-readable JSON.
	ModeJSON Mode = "json"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// Translation renders a migration result.
func Translation(w io.Writer, r translate.Result, mode Mode) error {
	if mode == ModeJSON {
		type issueJSON struct {
			Line       int    `json:"line,omitempty"`
			Message    string `json:"message"`
			Suggestion string `json:"suggestion,omitempty"`
			Severity   string `json:"severity"`
		}
		issues := make([]issueJSON, 0, len(r.Issues))
		for _, issue := range r.Issues {
			issues = append(issues, issueJSON{
				Line:       issue.Line,
				Message:    issue.Message,
				Suggestion: issue.Suggestion,
				Severity:   issue.Severity.String(),
			})
		}
		return renderJSON(w, map[string]any{
			"converted_query":     r.ConvertedQuery,
			"target":              r.Target.String(),
			"issues":              issues,
			"compatibility_score": r.Score,
		})
	}

	fmt.Fprintln(w, r.ConvertedQuery)
	fmt.Fprintln(w)

	if len(r.Issues) > 0 {
		t := newTable(w)
		t.AppendHeader(table.Row{"Line", "Severity", "Message", "Suggestion"})
		for _, issue := range r.Issues {
			line := ""
			if issue.Line > 0 {
				line = fmt.Sprintf("%d", issue.Line)
			}
			t.AppendRow(table.Row{line, issue.Severity.String(), issue.Message, issue.Suggestion})
		}
		t.Render()
	}
	fmt.Fprintf(w, "Compatibility score: %d/100\n", r.Score)
	return nil
}

// Schema renders an extracted schema graph.
func Schema(w io.Writer, g *schema.Graph, mode Mode) error {
	if mode == ModeJSON {
		return renderJSON(w, g)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Table", "Alias", "Columns"})
	for _, tbl := range g.Tables {
		cols := ""
		for i, c := range tbl.Columns {
			if i > 0 {
				cols += ", "
			}
			cols += c.Name
		}
		t.AppendRow(table.Row{tbl.Name, tbl.Alias, cols})
	}
	t.Render()

	if len(g.Relationships) > 0 {
		fmt.Fprintln(w)
		rt := newTable(w)
		rt.AppendHeader(table.Row{"Source", "Target", "Type"})
		for _, rel := range g.Relationships {
			rt.AppendRow(table.Row{rel.Source, rel.Target, rel.Type})
		}
		rt.Render()
	}
	return nil
}

// Export renders a model export result.
func Export(w io.Writer, r export.Result, mode Mode) error {
	if mode == ModeJSON {
		return renderJSON(w, map[string]any{
			"success":       r.Success,
			"error":         r.Error,
			"model":         r.Model,
			"documentation": r.Documentation,
			"config":        r.Config,
		})
	}

	if !r.Success {
		fmt.Fprintf(w, "export failed: %s\n", r.Error)
		return nil
	}
	fmt.Fprintln(w, "-- model --")
	fmt.Fprintln(w, r.Model)
	fmt.Fprintln(w, "-- documentation --")
	fmt.Fprintln(w, r.Documentation)
	fmt.Fprintln(w, "-- config --")
	fmt.Fprintln(w, r.Config)
	return nil
}

// History renders recorded query history entries.
func History(w io.Writer, entries []history.Entry, mode Mode) error {
	if mode == ModeJSON {
		return renderJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "(no history)")
		return nil
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Run At", "Platform", "Query"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.RunAt.Format("2006-01-02 15:04:05"), e.Platform.String(), truncate(e.Query, 60)})
	}
	t.Render()
	return nil
}

// Templates renders the example query library.
func Templates(w io.Writer, list []templates.Template, mode Mode) error {
	if mode == ModeJSON {
		return renderJSON(w, list)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Category", "Platform", "Query"})
	for _, tpl := range list {
		t.AppendRow(table.Row{tpl.Name, tpl.Category, tpl.Platform.String(), truncate(tpl.Query, 60)})
	}
	t.Render()
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
