package class

import (
	"fmt"
	"strings"
)

// Decoder parses the persisted document format.
//
// The zero Decoder is strict. With Today set, an assignment whose due date
// cannot be parsed is kept with the date Today returns, and the parse error
// is passed to Warn.
type Decoder struct {
	Today func() Date
	Warn  func(error)
}

// Assignment parses a [name;DD-MM-YYYY] token.
func (d Decoder) Assignment(token string) (Assignment, error) {
	name, rawDate, err := splitAssignmentToken(token)
	if err != nil {
		return Assignment{}, err
	}
	due, err := ParseDate(rawDate)
	if err != nil {
		if d.Today == nil {
			return Assignment{}, err
		}
		d.warn(fmt.Errorf("assignment '%s': %w", name, err))
		due = d.Today()
	}
	return Assignment{Name: name, DueDate: due}, nil
}

// Class parses one encoded class line. Fields after id, name and period are
// assignments when they start with '[' and completed names otherwise.
func (d Decoder) Class(line string) (*Class, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return nil, InvalidFormat("class", line, fmt.Errorf("expected id,name,period, got %d fields", len(fields)))
	}

	period, err := ParsePeriod(fields[2])
	if err != nil {
		return nil, fmt.Errorf("class '%s': %w", fields[0], err)
	}

	c := New(fields[0], fields[1], period)
	for _, field := range fields[3:] {
		if strings.HasPrefix(strings.TrimSpace(field), "[") {
			a, err := d.Assignment(field)
			if err != nil {
				return nil, fmt.Errorf("class '%s': %w", c.ID, err)
			}
			c.Assignments = append(c.Assignments, a)
			continue
		}
		c.Completed = append(c.Completed, field)
	}
	return c, nil
}

// Document parses a newline-separated list of classes. Empty lines are
// skipped. A later line with a duplicate id replaces the earlier one.
func (d Decoder) Document(text string) (*Store, error) {
	store := NewStore()
	for number, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		c, err := d.Class(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", number+1, err)
		}
		store.Add(c)
	}
	return store, nil
}

func (d Decoder) warn(err error) {
	if d.Warn != nil {
		d.Warn(err)
	}
}

// DecodeDocument parses a document, failing on any malformed part.
func DecodeDocument(text string) (*Store, error) {
	return Decoder{}.Document(text)
}
