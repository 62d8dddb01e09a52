package session

import (
	"sort"
	"strings"

	"github.com/amonks/skid/class"
	internalstrings "github.com/amonks/skid/internal/strings"
	"github.com/amonks/skid/internal/ui"
	"github.com/muesli/reflow/wordwrap"
)

const helpWidth = 60

// Command is one entry of the command table.
type Command struct {
	Name    string
	Aliases []string

	// Usage describes the arguments; optional ones are parenthesized.
	Usage string
	Help  string

	// MinArgs is checked before run is called.
	MinArgs int

	run func(s *Session, args Args) error
}

func commandTable() []*Command {
	commands := []*Command{
		{
			Name:    "add",
			Aliases: []string{"a"},
			Usage:   "<class> <date> <name...>",
			Help:    "Adds a dated assignment to a class.\n\nDates should be formatted as 'd-m-y'.\nExample: 31-1-2021",
			MinArgs: 3,
			run:     (*Session).add,
		},
		{
			Name: "all",
			Help: "Displays assignments across all classes.",
			run:  (*Session).all,
		},
		{
			Name:    "clean",
			Usage:   "<class>",
			Help:    "Removes all completed assignments from a class.",
			MinArgs: 1,
			run:     (*Session).clean,
		},
		{
			Name:    "complete",
			Aliases: []string{"c"},
			Usage:   "<class> <index>",
			Help:    "Moves an assignment to a class's completed list.",
			MinArgs: 2,
			run:     (*Session).complete,
		},
		{
			Name:    "create",
			Usage:   "<id> <period> <name...>",
			Help:    "Creates a class with metadata.",
			MinArgs: 3,
			run:     (*Session).create,
		},
		{
			Name:    "delete",
			Usage:   "<id>",
			Help:    "Deletes a class, including all of its assignments.",
			MinArgs: 1,
			run:     (*Session).delete,
		},
		{
			Name: "encode",
			Help: "Displays encoded class data.",
			run:  (*Session).encode,
		},
		{
			Name:    "help",
			Aliases: []string{"h"},
			Usage:   "(<command>)",
			Help:    "Displays help info for a command.\nIf no command is supplied, displays all commands.",
			run:     (*Session).help,
		},
		{
			Name:    "info",
			Aliases: []string{"i"},
			Usage:   "(<id>)",
			Help:    "Displays class info and assignments.\nIf no ID is supplied, displays all class info.",
			run:     (*Session).info,
		},
		{
			Name:  "klog",
			Usage: "<avg> (<path>)",
			Help:  "Displays assignment data in klog format.\n" +
				"This is particularly useful for keeping track of assignments you've completed with date and time.\n\n" +
				"The 'avg' argument is how many hours on average you'd expect to complete the assignments in. " +
				"You can modify these values after writing.\n\n" +
				"Optionally specify a path to write to. '.klg' replaces any extension on the path.\n\n" +
				"Learn more about klog at: https://klog.jotaen.net",
			MinArgs: 1,
			run:     (*Session).klog,
		},
		{
			Name:    "list",
			Aliases: []string{"ls", "l"},
			Usage:   "(<sort>)",
			Help:    "Lists all classes by ID and name.\nYou can sort classes by id, name and period (default).",
			run:     (*Session).list,
		},
		{
			Name:    "modify",
			Aliases: []string{"mod", "m"},
			Usage:   "<id> <property> <value...>",
			Help:    "Modifies class metadata by input.\nThe properties are name and period. Class ID cannot be modified.",
			MinArgs: 3,
			run:     (*Session).modify,
		},
		{
			Name: "panic",
			Help: "Prevents writing to the data file upon exiting the program.\n" +
				"This is useful if you've made an irreversible mistake while editing.",
			run: (*Session).preventWrite,
		},
		{
			Name:    "quit",
			Aliases: []string{"q"},
			Help:    "Exits the program.",
		},
		{
			Name:    "remove",
			Aliases: []string{"r"},
			Usage:   "<id> <index>",
			Help:    "Removes an assignment without completing it.",
			MinArgs: 2,
			run:     (*Session).remove,
		},
		{
			Name:    "write",
			Aliases: []string{"w"},
			Help:    "Writes encoded classes to the data file.\nThis is done automatically upon exit.",
			run:     (*Session).write,
		},
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})
	return commands
}

func commandIndex(commands []*Command) map[string]*Command {
	index := make(map[string]*Command, len(commands)*2)
	for _, cmd := range commands {
		index[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			index[alias] = cmd
		}
	}
	return index
}

// Syntax returns "name usage".
func (c *Command) Syntax() string {
	return strings.TrimSpace(c.Name + " " + c.Usage)
}

// Summary returns the first line of the help text.
func (c *Command) Summary() string {
	return internalstrings.FirstLine(c.Help)
}

func renderCommandTable(commands []*Command) string {
	builder := ui.NewTableBuilder([]string{"COMMAND", "ALIASES", "DESCRIPTION"}, len(commands))
	for _, cmd := range commands {
		aliases := strings.Join(cmd.Aliases, ", ")
		if aliases == "" {
			aliases = "-"
		}
		builder.AddRow(cmd.Name, aliases, cmd.Summary())
	}
	return strings.TrimRight(builder.String(), "\n")
}

func renderCommandHelp(cmd *Command) string {
	var b strings.Builder
	b.WriteString(ui.Property("Syntax", cmd.Syntax()))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(cmd.Help, helpWidth))
	if len(cmd.Aliases) > 0 {
		b.WriteString("\n\n")
		b.WriteString(ui.Property("Aliases", strings.Join(cmd.Aliases, ", ")))
	}
	return b.String()
}

func (s *Session) lookup(name string) (*Command, error) {
	cmd, ok := s.index[internalstrings.NormalizeLower(name)]
	if !ok {
		err := class.NotFound("command", name)
		err.Hint = "Run 'help' for a list of commands"
		return nil, err
	}
	return cmd, nil
}
