package nu

import "strings"

// Format reindents generated Nushell text. Indentation is keyed purely on
// brace and bracket characters: a line starting with `}` or `]` dedents
// before printing, a line ending with `{` or `[` indents after. Blank lines
// are kept but never indented. Every line comes out newline terminated.
func Format(script string) string {
	if script == "" {
		return ""
	}

	var out strings.Builder
	indent := 0

	// A trailing newline delimits the last line rather than starting a new
	// one.
	lines := strings.Split(strings.TrimSuffix(script, "\n"), "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, "]") {
			if indent > 0 {
				indent--
			}
		}

		if trimmed != "" {
			out.WriteString(strings.Repeat("  ", indent))
			out.WriteString(trimmed)
		}
		out.WriteByte('\n')

		if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "[") {
			indent++
		}
	}

	return out.String()
}
