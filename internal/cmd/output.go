package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fshelp/internal/errors"
)

// Output formats shared by the reporting commands.
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

//nolint:gochecknoglobals // Package-level constants for output validation
var validOutputs = []string{outputText, outputYAML, outputJSON}

// render writes value in the requested format. Text output is delegated to text.
func render(w io.Writer, format string, value any, text func(io.Writer) error) error {
	switch format {
	case outputText, "":
		return text(w)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return errors.NewValidationError("output", format, validOutputs...)
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
