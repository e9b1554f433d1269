// Package export writes the demonstration document produced by a run.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/finlit/internal/scenario"
	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/rules"
	"github.com/iwvelando/finlit/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Features lists what the tool demonstrates.
var Features = []string{
	"Emergency fund calculator",
	"Budget planner",
	"Savings goal tracker",
	"Debt payoff calculator",
	"Compound interest calculator",
	"Country-specific financial rules",
}

// Document is the exported record of a run.
type Document struct {
	Project     string                        `json:"project" yaml:"project"`
	RunID       string                        `json:"run_id" yaml:"runId"`
	GeneratedAt time.Time                     `json:"generated_at" yaml:"generatedAt"`
	Countries   map[string]rules.CountryRules `json:"countries" yaml:"countries"`
	Scenarios   map[string]scenario.Report    `json:"scenarios" yaml:"scenarios"`
	Features    []string                      `json:"features" yaml:"features"`
}

// NewDocument assembles a document from the rule table and reports.
// Reports sharing a name keep the last one.
func NewDocument(table *rules.Table, reports []scenario.Report, generatedAt time.Time) Document {
	doc := Document{
		Project:     constants.ProjectName,
		RunID:       uuid.NewString(),
		GeneratedAt: generatedAt.UTC(),
		Countries:   map[string]rules.CountryRules{},
		Scenarios:   make(map[string]scenario.Report, len(reports)),
		Features:    append([]string(nil), Features...),
	}
	if table != nil {
		for _, key := range table.Keys() {
			doc.Countries[key] = table.Lookup(key)
		}
	}
	for _, report := range reports {
		doc.Scenarios[report.Name] = report
	}
	return doc
}

// Encode writes doc to w in the given export format.
func Encode(w io.Writer, doc Document, exportFormat string) error {
	switch exportFormat {
	case constants.ExportFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON export: %w", err)
		}
		return nil
	case constants.ExportFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML export: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported export format %q", exportFormat)
	}
}

// Write writes doc to path, choosing JSON or YAML from the file extension and
// creating the parent directory when needed.
func Write(path string, doc Document) error {
	exportFormat, err := validation.ExportFormatForPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}

	if err := Encode(file, doc, exportFormat); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
