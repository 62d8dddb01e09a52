package class

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/skid/internal/strings"
	"github.com/amonks/skid/internal/validation"
)

// SortMethod selects the key for Sorted.
type SortMethod string

const (
	// SortByID orders classes by id.
	SortByID SortMethod = "id"

	// SortByName orders classes by name.
	SortByName SortMethod = "name"

	// SortByPeriod orders classes by the decimal text of their period,
	// so period 10 sorts before period 2.
	SortByPeriod SortMethod = "period"
)

// ValidSortMethods returns all sort methods.
func ValidSortMethods() []SortMethod {
	return []SortMethod{SortByID, SortByName, SortByPeriod}
}

// ParseSortMethod parses a sort method name case-insensitively.
func ParseSortMethod(value string) (SortMethod, error) {
	method := SortMethod(internalstrings.NormalizeLowerTrimSpace(value))
	for _, valid := range ValidSortMethods() {
		if method == valid {
			return method, nil
		}
	}
	err := InvalidValue("sorting method", value, nil)
	err.Hint = validation.ValidValuesHint(ValidSortMethods())
	return "", err
}

// Store holds every class keyed by id.
type Store struct {
	classes map[string]*Class
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{classes: make(map[string]*Class)}
}

// Len returns the number of classes.
func (s *Store) Len() int {
	return len(s.classes)
}

// Has reports whether a class with id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.classes[id]
	return ok
}

// Add inserts c, replacing any class with the same id.
func (s *Store) Add(c *Class) {
	s.classes[c.ID] = c
}

// Create inserts a new empty class, replacing any class with the same id.
func (s *Store) Create(id, name string, period int) *Class {
	c := New(id, name, period)
	s.Add(c)
	return c
}

// Get returns the class with id for mutation.
func (s *Store) Get(id string) (*Class, error) {
	c, ok := s.classes[id]
	if !ok {
		return nil, NotFound("class", id)
	}
	return c, nil
}

// Remove deletes the class with id and everything it holds.
func (s *Store) Remove(id string) (*Class, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	delete(s.classes, id)
	return c, nil
}

// Sorted returns copies of all classes ordered by method. Ties keep id order.
func (s *Store) Sorted(method SortMethod) []*Class {
	values := make([]*Class, 0, len(s.classes))
	for _, c := range s.classes {
		values = append(values, c.Clone())
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].ID < values[j].ID
	})

	key := func(c *Class) string {
		switch method {
		case SortByID:
			return c.ID
		case SortByName:
			return c.Name
		default:
			return strconv.Itoa(c.Period)
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		return key(values[i]) < key(values[j])
	})
	return values
}

// TaggedName is a name owned by a class.
type TaggedName struct {
	ClassID string
	Name    string
}

// TaggedAssignment is a pending assignment owned by a class.
type TaggedAssignment struct {
	ClassID string
	// Position is the 1-based index within the class.
	Position   int
	Assignment Assignment
}

// Tag returns "name #classid", the form used in klog entries.
func (t TaggedName) Tag() string {
	return t.Name + " #" + t.ClassID
}

// Late returns every assignment due before today, classes in period order.
func (s *Store) Late(today Date) []TaggedName {
	var result []TaggedName
	for _, c := range s.Sorted(SortByPeriod) {
		for _, name := range c.Late(today) {
			result = append(result, TaggedName{ClassID: c.ID, Name: name})
		}
	}
	return result
}

// AllAssignments returns every pending assignment, classes in period order.
func (s *Store) AllAssignments() []TaggedAssignment {
	var result []TaggedAssignment
	for _, c := range s.Sorted(SortByPeriod) {
		for i, a := range c.Assignments {
			result = append(result, TaggedAssignment{ClassID: c.ID, Position: i + 1, Assignment: a})
		}
	}
	return result
}

// AllCompleted returns every completed name, classes in period order.
func (s *Store) AllCompleted() []TaggedName {
	var result []TaggedName
	for _, c := range s.Sorted(SortByPeriod) {
		for _, name := range c.Completed {
			result = append(result, TaggedName{ClassID: c.ID, Name: name})
		}
	}
	return result
}

// DateGroup is the pending assignments due on one day.
type DateGroup struct {
	Date    Date
	Entries []TaggedName
}

// AssignmentsByDueDate groups pending assignments by due date. Groups are
// in order of first appearance when walking classes in period order.
func (s *Store) AssignmentsByDueDate() []DateGroup {
	var groups []DateGroup
	index := make(map[Date]int)
	for _, c := range s.Sorted(SortByPeriod) {
		for _, a := range c.Assignments {
			entry := TaggedName{ClassID: c.ID, Name: a.Name}
			i, ok := index[a.DueDate]
			if !ok {
				i = len(groups)
				index[a.DueDate] = i
				groups = append(groups, DateGroup{Date: a.DueDate})
			}
			groups[i].Entries = append(groups[i].Entries, entry)
		}
	}
	return groups
}

// Klog renders pending assignments in klog format, one block per due date
// in chronological order, each entry estimated at avgHours.
func (s *Store) Klog(avgHours uint) string {
	groups := s.AssignmentsByDueDate()
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})

	blocks := make([]string, 0, len(groups))
	for _, group := range groups {
		var b strings.Builder
		b.WriteString(group.Date.ISO())
		for _, entry := range group.Entries {
			fmt.Fprintf(&b, "\n  %dh %s", avgHours, entry.Tag())
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// Encode returns the document: one encoded class per line in period order.
func (s *Store) Encode() string {
	sorted := s.Sorted(SortByPeriod)
	lines := make([]string, 0, len(sorted))
	for _, c := range sorted {
		lines = append(lines, c.Encode())
	}
	return strings.Join(lines, "\n")
}
