package class

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted input form for due dates (day-month-year).
const DateLayout = "2-1-2006"

// Date is a calendar day with no time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, failing if it does not exist.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.valid() {
		return Date{}, InvalidFormat("date", fmt.Sprintf("%d-%d-%d", day, int(month), year), errors.New("no such day"))
	}
	return d, nil
}

// DateOf returns the local calendar day of t.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a DD-MM-YYYY date. Day and month may omit the leading zero.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, InvalidFormat("date", s, parseCause(err))
	}
	return DateOf(t), nil
}

func (d Date) valid() bool {
	if d.Year < 0 || d.Year > 9999 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return DateOf(t) == d
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// ISO returns d as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// String returns d as "Jan  2 2006".
func (d Date) String() string {
	return d.Time().Format("Jan _2 2006")
}

// encode returns d as DD-MM-YYYY.
func (d Date) encode() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// Assignment is a named task with a due date.
type Assignment struct {
	Name    string
	DueDate Date
}

// Late reports whether the assignment was due before today.
func (a Assignment) Late(today Date) bool {
	return a.DueDate.Before(today)
}

// Encode returns the assignment token [name;DD-MM-YYYY].
// The name is not escaped.
func (a Assignment) Encode() string {
	return "[" + a.Name + ";" + a.DueDate.encode() + "]"
}

// DecodeAssignment parses an assignment token, failing on any malformed part.
func DecodeAssignment(token string) (Assignment, error) {
	return Decoder{}.Assignment(token)
}

// splitAssignmentToken returns the name and date fields of [name;date].
func splitAssignmentToken(token string) (string, string, error) {
	trimmed := strings.TrimSpace(token)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return "", "", InvalidFormat("assignment", token, errors.New("expected [name;date]"))
	}
	fields := strings.Split(trimmed[1:len(trimmed)-1], ";")
	if len(fields) != 2 {
		return "", "", InvalidFormat("assignment", token, fmt.Errorf("expected 2 fields, got %d", len(fields)))
	}
	return fields[0], fields[1], nil
}

// parseCause shortens time.ParseError messages to the failing reason.
func parseCause(err error) error {
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) && parseErr.Message != "" {
		return errors.New(strings.TrimPrefix(parseErr.Message, ": "))
	}
	return errors.New("expected day-month-year")
}
