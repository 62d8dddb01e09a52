// Package session runs the command loop over a class store: it tokenizes
// input lines, dispatches them through the command table and renders
// results for the console.
package session

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/amonks/skid/class"
	"github.com/amonks/skid/internal/console"
	"github.com/amonks/skid/internal/datafile"
	"github.com/amonks/skid/internal/lineinput"
)

// Storage persists the store on request.
type Storage interface {
	Path() string
	Save(store *class.Store) error
}

// Options configures a session.
type Options struct {
	Store   *class.Store
	Input   lineinput.Reader
	Console *console.Console
	Storage Storage

	// Now defaults to time.Now.
	Now func() time.Time

	// Logger defaults to discarding.
	Logger *log.Logger

	// DefaultSort is used by a bare list. Defaults to period.
	DefaultSort class.SortMethod

	// WriteFile writes klog exports. Defaults to datafile.WriteFile.
	WriteFile func(path string, data []byte) error

	// NoPersist starts the session with saving on exit disabled.
	NoPersist bool
}

// Session is the command loop over one store.
type Session struct {
	store       *class.Store
	input       lineinput.Reader
	console     *console.Console
	storage     Storage
	now         func() time.Time
	logger      *log.Logger
	defaultSort class.SortMethod
	writeFile   func(path string, data []byte) error
	persist     bool

	commands []*Command
	index    map[string]*Command
}

// New returns a session. A nil Store starts empty.
func New(opts Options) *Session {
	store := opts.Store
	if store == nil {
		store = class.NewStore()
	}
	out := opts.Console
	if out == nil {
		out = console.New(nil, nil)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	defaultSort := opts.DefaultSort
	if defaultSort == "" {
		defaultSort = class.SortByPeriod
	}
	writeFile := opts.WriteFile
	if writeFile == nil {
		writeFile = datafile.WriteFile
	}

	commands := commandTable()
	return &Session{
		store:       store,
		input:       opts.Input,
		console:     out,
		storage:     opts.Storage,
		now:         now,
		logger:      logger,
		defaultSort: defaultSort,
		writeFile:   writeFile,
		persist:     !opts.NoPersist,
		commands:    commands,
		index:       commandIndex(commands),
	}
}

// Store returns the session's store.
func (s *Session) Store() *class.Store {
	return s.store
}

// Persist reports whether the store should be saved when the session ends.
func (s *Session) Persist() bool {
	return s.persist
}

// Commands returns the command table sorted by name.
func (s *Session) Commands() []*Command {
	return s.commands
}

// Run reports late assignments, then executes lines until quit or end of
// input. It returns whether the store should be saved.
func (s *Session) Run() bool {
	s.console.Println()
	s.ReportLate()

	for {
		if s.input == nil {
			s.console.Printf("Exiting... ")
			return s.persist
		}
		line, err := s.input.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.console.Error(err)
			}
			s.logger.Printf("input ended: %v", err)
			s.console.Printf("Exiting... ")
			return s.persist
		}
		if s.Execute(line) {
			return s.persist
		}
	}
}

// ReportLate prints the late assignment report when anything is late.
func (s *Session) ReportLate() {
	if report := renderLate(s.store.Late(s.today())); report != "" {
		s.console.Println(report)
		s.console.Println()
	}
}

// Execute runs one input line and reports whether it ended the session.
// Errors are printed and never end the session.
func (s *Session) Execute(line string) bool {
	args := ParseArgs(line)
	if args.Command == "" {
		return false
	}

	cmd, err := s.lookup(args.Command)
	if err == nil && cmd.Name == "quit" {
		s.logger.Printf("quit")
		s.console.Printf("Exiting... ")
		return true
	}
	if err == nil {
		err = args.Check(cmd.MinArgs)
	}
	if err == nil {
		s.logger.Printf("run %s %q", cmd.Name, args.List)
		err = cmd.run(s, args)
	}
	if err != nil {
		s.logger.Printf("%s failed: %v", args.Command, err)
		s.console.Error(err)
	}
	s.console.Println()
	return false
}

func (s *Session) today() class.Date {
	return class.DateOf(s.now())
}

// Save writes the store to storage.
func (s *Session) Save() error {
	if s.storage == nil {
		return class.IOFailure("write", "", errors.New("no data file"))
	}
	if err := s.storage.Save(s.store); err != nil {
		return err
	}
	s.logger.Printf("saved %d classes to %s", s.store.Len(), s.storage.Path())
	return nil
}
