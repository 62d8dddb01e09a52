package strings

import "strings"

// Indent prefixes each line with spaces.
func Indent(lines []string, spaces int) []string {
	prefix := strings.Repeat(" ", max(spaces, 0))
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = prefix + line
	}
	return indented
}

// IndentJoin indents lines and joins them with newlines.
func IndentJoin(lines []string, spaces int) string {
	return strings.Join(Indent(lines, spaces), "\n")
}

// IndentBlock indents every line of a multi-line value.
func IndentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	return IndentJoin(strings.Split(value, "\n"), spaces)
}
