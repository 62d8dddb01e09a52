package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/amonks/skid/class"
	"github.com/amonks/skid/internal/config"
	"github.com/amonks/skid/internal/console"
	"github.com/amonks/skid/internal/datafile"
	"github.com/amonks/skid/internal/lineinput"
	"github.com/amonks/skid/internal/markdown"
	"github.com/amonks/skid/internal/paths"
	"github.com/amonks/skid/internal/ui"
	"github.com/amonks/skid/session"
)

const introWidth = 60

const intro = `# skid

Class assignment scheduler.

Run ` + "`help`" + ` for a list of commands. Specify a command to view extra
help for that command.

Get started by creating some classes and adding any assignments you have.

Run ` + "`quit`" + ` or press Ctrl+C to exit.
`

type appOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Args, when set, are run as one command line instead of reading input.
	Args []string

	DataFile string
	Config   string
	Color    string
	Verbose  bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func run(opts appOptions) error {
	logger := log.New(io.Discard, "skid: ", log.LstdFlags)
	if opts.Verbose {
		logger.SetOutput(opts.Stderr)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := ui.SetColorMode(cfg.Display.Color); err != nil {
		return err
	}
	var defaultSort class.SortMethod
	if cfg.Display.DefaultSort != "" {
		if defaultSort, err = class.ParseSortMethod(cfg.Display.DefaultSort); err != nil {
			return err
		}
	}
	dataPath, err := dataFilePath(cfg)
	if err != nil {
		return err
	}
	logger.Printf("data file %s", dataPath)

	out := console.New(opts.Stdout, opts.Stderr)
	file := datafile.New(dataPath)

	exists, err := file.Exists()
	if err != nil {
		out.Error(err)
	} else if !exists {
		out.Println(string(markdown.SafeRender(introWidth, 0, []byte(intro))))
		if err := file.Create(); err != nil {
			out.Error(err)
		}
	}

	decoder := class.Decoder{
		Today: func() class.Date { return class.DateOf(now()) },
		Warn: func(err error) {
			logger.Printf("decode: %v", err)
			out.Error(err)
		},
	}
	store, err := file.Load(decoder)
	noPersist := false
	if err != nil {
		logger.Printf("load %s: %v", dataPath, err)
		out.Error(err)
		out.Println("Starting with no classes. Run 'write' to replace the data file.")
		store = class.NewStore()
		noPersist = true
	} else {
		logger.Printf("loaded %d classes", store.Len())
	}

	sessionOpts := session.Options{
		Store:       store,
		Console:     out,
		Storage:     file,
		Now:         now,
		Logger:      logger,
		DefaultSort: defaultSort,
		NoPersist:   noPersist,
	}

	if len(opts.Args) > 0 {
		s := session.New(sessionOpts)
		s.Execute(strings.Join(opts.Args, " "))
		if s.Persist() {
			if err := s.Save(); err != nil {
				out.Error(err)
			}
		}
		return nil
	}

	input, err := openInput(opts)
	if err != nil {
		return err
	}
	sessionOpts.Input = input
	s := session.New(sessionOpts)

	if !s.Run() {
		out.Println()
		return nil
	}
	if err := s.Save(); err != nil {
		out.Println()
		out.Error(err)
		return nil
	}
	out.Success("wrote to '%s'", file.Path())
	return nil
}

func loadConfig(opts appOptions) (*config.Config, error) {
	path := opts.Config
	if path == "" {
		defaultPath, err := paths.DefaultSettingsFile()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return config.Merge(cfg, config.Overrides{DataFile: opts.DataFile, Color: opts.Color}), nil
}

func dataFilePath(cfg *config.Config) (string, error) {
	if cfg.Storage.DataFile == "" {
		return paths.DefaultDataFile()
	}
	return paths.Abs(cfg.Storage.DataFile)
}

// openInput returns a line editor when stdin is a terminal and a plain
// line scanner otherwise.
func openInput(opts appOptions) (lineinput.Reader, error) {
	if opts.Stdin == nil {
		return lineinput.NewScanner(strings.NewReader("")), nil
	}
	if f, ok := opts.Stdin.(*os.File); ok && lineinput.IsInteractive(f) {
		return lineinput.OpenTerminal(f, opts.Stdout, ui.Prompt("=>")+" ")
	}
	return lineinput.NewScanner(opts.Stdin), nil
}
