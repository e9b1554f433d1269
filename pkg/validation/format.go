// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iwvelando/finlit/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV && format != constants.OutputFormatJSON {
		return fmt.Errorf("expected output format of %s, %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
	}
	return nil
}

// ExportFormatForPath derives the export format from a file extension.
func ExportFormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return constants.ExportFormatJSON, nil
	case ".yaml", ".yml":
		return constants.ExportFormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export file extension for %s, expected .json, .yaml or .yml", path)
	}
}
