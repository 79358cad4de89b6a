package formatters

import "strings"

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatMermaid OutputFormat = "mermaid"
)

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat converts a user supplied format name to an OutputFormat.
func ParseOutputFormat(format string) (OutputFormat, bool) {
	switch OutputFormat(strings.ToLower(format)) {
	case OutputFormatDOT:
		return OutputFormatDOT, true
	case OutputFormatMermaid:
		return OutputFormatMermaid, true
	default:
		return "", false
	}
}

// SupportedFormats returns the graph formats as a comma-separated list.
func SupportedFormats() string {
	return strings.Join([]string{OutputFormatDOT.String(), OutputFormatMermaid.String()}, ", ")
}
