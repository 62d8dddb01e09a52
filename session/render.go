package session

import (
	"strings"

	"github.com/amonks/skid/class"
	internalstrings "github.com/amonks/skid/internal/strings"
	"github.com/amonks/skid/internal/ui"
)

const listIndent = 2

// renderProperties renders the Name, ID and Period lines of c.
func renderProperties(c *class.Class) string {
	return strings.Join([]string{
		ui.Property("Name", c.Name),
		ui.Property("ID", c.ID),
		ui.NumberProperty("Period", c.Period),
	}, "\n")
}

// renderInfo renders the full view of one class.
func renderInfo(c *class.Class) string {
	return renderProperties(c) + "\n\n" + renderSections(
		assignmentLines(c.Assignments, nil),
		completedLines(c.Completed),
	)
}

// renderAllInfo renders the properties of every class in period order.
func renderAllInfo(store *class.Store) string {
	classes := store.Sorted(class.SortByPeriod)
	if len(classes) == 0 {
		return "None"
	}
	blocks := make([]string, 0, len(classes))
	for _, c := range classes {
		blocks = append(blocks, renderProperties(c))
	}
	return strings.Join(blocks, "\n\n")
}

// renderList renders "id: name" per class.
func renderList(store *class.Store, method class.SortMethod) string {
	classes := store.Sorted(method)
	if len(classes) == 0 {
		return "None"
	}
	lines := make([]string, 0, len(classes))
	for _, c := range classes {
		lines = append(lines, ui.Property(c.ID, c.Name))
	}
	return strings.Join(lines, "\n")
}

// renderAll renders pending and completed assignments across classes.
// Positions and alignment are per class.
func renderAll(store *class.Store) string {
	var pending []string
	for _, group := range groupByClass(store.AllAssignments()) {
		assignments := make([]class.Assignment, len(group))
		tags := make([]string, len(group))
		for i, tagged := range group {
			assignments[i] = tagged.Assignment
			tags[i] = tagged.ClassID
		}
		pending = append(pending, assignmentLines(assignments, tags)...)
	}

	return renderSections(pending, taggedLines(store.AllCompleted()))
}

// renderLate renders the startup report, or "" when nothing is late.
func renderLate(late []class.TaggedName) string {
	if len(late) == 0 {
		return ""
	}
	return "You have some late assignments!\n\n" + strings.Join(taggedLines(late), "\n")
}

func renderSections(assignments, completed []string) string {
	return section("Assignments", assignments) + "\n\n" + section("Completed", completed)
}

func section(title string, lines []string) string {
	if len(lines) == 0 {
		return ui.Label(title) + ": None"
	}
	return ui.Label(title) + ":\n" + internalstrings.IndentJoin(lines, listIndent)
}

// assignmentLines renders "n) name - date" with dates aligned. When tags is
// set, each line ends with the matching class tag.
func assignmentLines(assignments []class.Assignment, tags []string) []string {
	width := 0
	for _, a := range assignments {
		width = max(width, ui.DisplayWidth(a.Name))
	}

	lines := make([]string, len(assignments))
	for i, a := range assignments {
		line := ui.Position(i+1) + " " + ui.PadRight(ui.Text(a.Name), width) + " " +
			ui.Muted("-") + " " + ui.DueDate(a.DueDate.String())
		if tags != nil {
			line += " " + ui.Tag(tags[i])
		}
		lines[i] = line
	}
	return lines
}

func completedLines(names []string) []string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = ui.Bullet() + " " + ui.Text(name)
	}
	return lines
}

func taggedLines(names []class.TaggedName) []string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = ui.Bullet() + " " + ui.Text(name.Name) + " " + ui.Tag(name.ClassID)
	}
	return lines
}

// groupByClass splits consecutive runs of the same class.
func groupByClass(assignments []class.TaggedAssignment) [][]class.TaggedAssignment {
	var groups [][]class.TaggedAssignment
	for i, a := range assignments {
		if i == 0 || assignments[i-1].ClassID != a.ClassID {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], a)
	}
	return groups
}
