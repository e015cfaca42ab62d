// Package export emits workflow-tool model artifacts (model body,
// documentation, and configuration) from a translated and analyzed
// query.
package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/schema"
	"github.com/sqlbridge-labs/sqlbridge/pkg/translate"
)

// Format selects the target workflow tool.
type Format string

const (
	// FormatDBT emits a dbt model with Snowflake as the base dialect.
	FormatDBT Format = "dbt"
	// FormatDataform emits a Dataform sqlx model with BigQuery as the
	// base dialect.
	FormatDataform Format = "dataform"
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatDBT, FormatDataform:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown export format: %q (expected dbt or dataform)", name)
}

// baseDialect returns the dialect the format's model body is written in.
func (f Format) baseDialect() platform.Platform {
	if f == FormatDataform {
		return platform.BigQuery
	}
	return platform.Snowflake
}

// Result is the outcome of an export. When Success is false, Error
// explains why and the artifact fields are empty.
type Result struct {
	Success       bool
	Error         string
	Model         string
	Documentation string
	Config        string
}

func failure(msg string) Result {
	return Result{Error: msg}
}

// Export builds the model, documentation, and config artifacts for the
// given query. It fails when the input is empty or contains no
// resolvable table reference.
func Export(sql string, p platform.Platform, format Format) Result {
	if strings.TrimSpace(sql) == "" {
		return failure("query is empty")
	}

	graph := schema.Extract(sql, p)
	if len(graph.Tables) == 0 {
		return failure("query contains no table references")
	}

	tr := translate.Translate(sql, p, format.baseDialect())
	name := modelName(graph)

	var model, docs, config string
	var err error
	switch format {
	case FormatDataform:
		model = dataformModel(tr.ConvertedQuery)
		docs, err = documentationYAML(name, graph)
		if err == nil {
			config = dataformConfig()
		}
	default:
		model = dbtModel(tr.ConvertedQuery)
		docs, err = documentationYAML(name, graph)
		if err == nil {
			config = dbtConfig(name)
		}
	}
	if err != nil {
		return failure(err.Error())
	}

	return Result{Success: true, Model: model, Documentation: docs, Config: config}
}

// modelName derives a model name from the first table reference.
func modelName(g *schema.Graph) string {
	base := strings.ToLower(g.Tables[0].Name)
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		base = base[idx+1:]
	}
	return "stg_" + base
}

func dbtModel(query string) string {
	return "{{ config(materialized='view') }}\n\n" + strings.TrimRight(query, "\n") + "\n"
}

func dataformModel(query string) string {
	return "config {\n  type: \"view\"\n}\n\n" + strings.TrimRight(query, "\n") + "\n"
}

// docFile mirrors a dbt schema.yml: the tables the query touches and
// the columns attributed to each.
type docFile struct {
	Version int        `yaml:"version"`
	Models  []docModel `yaml:"models"`
	Sources []docTable `yaml:"sources,omitempty"`
}

type docModel struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Columns     []docColumn `yaml:"columns,omitempty"`
}

type docTable struct {
	Name    string      `yaml:"name"`
	Columns []docColumn `yaml:"columns,omitempty"`
}

type docColumn struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

func documentationYAML(name string, g *schema.Graph) (string, error) {
	file := docFile{Version: 2}

	var allColumns []docColumn
	for _, t := range g.Tables {
		src := docTable{Name: strings.ToLower(t.Name)}
		for _, c := range t.Columns {
			col := docColumn{Name: strings.ToLower(c.Name)}
			if len(c.References) > 0 {
				col.Description = "Join key referencing " + strings.Join(c.References, ", ")
			}
			src.Columns = append(src.Columns, col)
			allColumns = append(allColumns, col)
		}
		file.Sources = append(file.Sources, src)
	}

	file.Models = []docModel{{
		Name:        name,
		Description: "Generated from a migrated query",
		Columns:     allColumns,
	}}

	out, err := yaml.Marshal(&file)
	if err != nil {
		return "", fmt.Errorf("failed to render documentation: %w", err)
	}
	return string(out), nil
}

type dbtProject struct {
	Name       string         `yaml:"name"`
	Version    string         `yaml:"version"`
	Profile    string         `yaml:"profile"`
	ModelPaths []string       `yaml:"model-paths"`
	Models     map[string]any `yaml:"models"`
}

func dbtConfig(name string) string {
	project := dbtProject{
		Name:       name + "_project",
		Version:    "1.0.0",
		Profile:    "default",
		ModelPaths: []string{"models"},
		Models:     map[string]any{"+materialized": "view"},
	}
	out, err := yaml.Marshal(&project)
	if err != nil {
		return ""
	}
	return string(out)
}

type dataformSettings struct {
	DefaultDataset  string `yaml:"defaultDataset"`
	DefaultLocation string `yaml:"defaultLocation"`
	DefaultProject  string `yaml:"defaultProject"`
}

func dataformConfig() string {
	settings := dataformSettings{
		DefaultDataset:  "dataform",
		DefaultLocation: "US",
		DefaultProject:  "my-project",
	}
	out, err := yaml.Marshal(&settings)
	if err != nil {
		return ""
	}
	return string(out)
}
