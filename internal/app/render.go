package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chriscorrea/voca/internal/index"
)

// Output is the document written in JSON and YAML mode.
type Output struct {
	Operation string `json:"operation" yaml:"operation"`
	Result    any    `json:"result" yaml:"result"`
}

// render formats the result of operation. Text output puts list items on
// their own lines and carries no trailing newline.
func render(operation string, result any, format OutputFormat) (string, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(Output{Operation: operation, Result: result}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode JSON: %w", err)
		}
		return string(data), nil
	case YAML:
		data, err := yaml.Marshal(Output{Operation: operation, Result: result})
		if err != nil {
			return "", fmt.Errorf("failed to encode YAML: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return renderText(result), nil
	}
}

func renderText(result any) string {
	switch v := result.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case []int:
		return joinLines(v, strconv.Itoa)
	case []uint16:
		return joinLines(v, func(u uint16) string { return strconv.Itoa(int(u)) })
	case []index.Range:
		return joinLines(v, func(r index.Range) string { return fmt.Sprintf("%d %d", r.Start, r.End) })
	default:
		return fmt.Sprint(v)
	}
}

func joinLines[T any](items []T, format func(T) string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = format(item)
	}
	return strings.Join(lines, "\n")
}
