package session

import (
	"strings"

	"github.com/amonks/skid/class"
	internalstrings "github.com/amonks/skid/internal/strings"
)

// Args is one tokenized input line.
type Args struct {
	// Command is the first word, lowercased.
	Command string

	// List holds the remaining words.
	List []string
}

// ParseArgs splits line on whitespace into a command and its arguments.
func ParseArgs(line string) Args {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Args{}
	}
	return Args{
		Command: internalstrings.NormalizeLower(fields[0]),
		List:    fields[1:],
	}
}

// Check returns MissingArguments when fewer than min arguments were given.
func (a Args) Check(min int) error {
	if len(a.List) < min {
		return class.MissingArguments(min, len(a.List))
	}
	return nil
}

// Has reports whether the argument at index was given.
func (a Args) Has(index int) bool {
	return index < len(a.List)
}

// From joins the arguments starting at offset with single spaces.
func (a Args) From(offset int) string {
	if offset >= len(a.List) {
		return ""
	}
	return strings.Join(a.List[offset:], " ")
}

// ID returns the first argument as a class id.
func (a Args) ID() string {
	if len(a.List) == 0 {
		return ""
	}
	return internalstrings.NormalizeLower(a.List[0])
}
