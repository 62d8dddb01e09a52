package class

import (
	"strconv"
	"strings"

	internalstrings "github.com/amonks/skid/internal/strings"
)

// Class is a course with its pending and completed assignments.
type Class struct {
	// ID is the unique, lowercase key of the class. It never changes.
	ID string

	// Name is the display name.
	Name string

	// Period is a display field and sort key.
	Period int

	// Assignments are pending, in insertion order. Positions are 1-based.
	Assignments []Assignment

	// Completed holds the names of completed assignments.
	Completed []string
}

// New returns an empty class.
func New(id, name string, period int) *Class {
	return &Class{ID: id, Name: name, Period: period}
}

// AddAssignment appends a pending assignment.
func (c *Class) AddAssignment(name string, due Date) {
	c.Assignments = append(c.Assignments, Assignment{Name: name, DueDate: due})
}

// RemoveAssignment deletes the assignment at the 1-based index and returns its name.
func (c *Class) RemoveAssignment(index int) (string, error) {
	if index < 1 || index > len(c.Assignments) {
		return "", OutOfRange(index, len(c.Assignments))
	}
	removed := c.Assignments[index-1]
	c.Assignments = append(c.Assignments[:index-1:index-1], c.Assignments[index:]...)
	return removed.Name, nil
}

// CompleteAssignment moves the assignment at the 1-based index to Completed.
// The due date is discarded.
func (c *Class) CompleteAssignment(index int) (string, error) {
	name, err := c.RemoveAssignment(index)
	if err != nil {
		return "", err
	}
	c.Completed = append(c.Completed, name)
	return name, nil
}

// Modify sets the name or period. Property names match case-insensitively.
func (c *Class) Modify(property, value string) error {
	switch internalstrings.NormalizeLower(property) {
	case "name":
		c.Name = value
		return nil
	case "period":
		period, err := ParsePeriod(value)
		if err != nil {
			return err
		}
		c.Period = period
		return nil
	default:
		return UnknownProperty(property)
	}
}

// Clean clears the completed list.
func (c *Class) Clean() {
	c.Completed = nil
}

// Late returns the names of assignments due before today.
func (c *Class) Late(today Date) []string {
	var names []string
	for _, a := range c.Assignments {
		if a.Late(today) {
			names = append(names, a.Name)
		}
	}
	return names
}

// Clone returns a deep copy of c.
func (c *Class) Clone() *Class {
	clone := *c
	clone.Assignments = append([]Assignment(nil), c.Assignments...)
	clone.Completed = append([]string(nil), c.Completed...)
	return &clone
}

// Encode returns the class as one comma-separated line:
// id,name,period[,assignment tokens...][,completed names...].
func (c *Class) Encode() string {
	fields := make([]string, 0, 3+len(c.Assignments)+len(c.Completed))
	fields = append(fields, c.ID, c.Name, strconv.Itoa(c.Period))
	for _, a := range c.Assignments {
		fields = append(fields, a.Encode())
	}
	fields = append(fields, c.Completed...)
	return strings.Join(fields, ",")
}

// DecodeClass parses an encoded class line, failing on any malformed part.
func DecodeClass(line string) (*Class, error) {
	return Decoder{}.Class(line)
}

// ParsePeriod parses a non-negative period.
func ParsePeriod(value string) (int, error) {
	period, err := strconv.ParseUint(value, 10, 31)
	if err != nil {
		return 0, InvalidValue("period", value, numError(err))
	}
	return int(period), nil
}

// ParseIndex parses a 1-based assignment position. Range is checked by the
// operation that uses it.
func ParseIndex(value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil {
		return 0, InvalidValue("index", value, numError(err))
	}
	return index, nil
}

// ParseHours parses the non-negative hour estimate used by klog exports.
func ParseHours(value string) (uint, error) {
	hours, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, InvalidValue("hours", value, numError(err))
	}
	return uint(hours), nil
}
