package session

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/amonks/skid/class"
)

var errClassExists = errors.New("class already exists")

const klogExtension = ".klg"

func (s *Session) add(args Args) error {
	c, err := s.store.Get(args.ID())
	if err != nil {
		return err
	}
	due, err := class.ParseDate(args.List[1])
	if err != nil {
		return err
	}
	c.AddAssignment(args.From(2), due)
	s.console.Block(renderInfo(c))
	return nil
}

func (s *Session) all(Args) error {
	s.console.Block(renderAll(s.store))
	return nil
}

func (s *Session) clean(args Args) error {
	c, err := s.store.Get(args.ID())
	if err != nil {
		return err
	}
	c.Clean()
	s.console.Block(renderInfo(c))
	return nil
}

func (s *Session) complete(args Args) error {
	c, err := s.store.Get(args.ID())
	if err != nil {
		return err
	}
	index, err := class.ParseIndex(args.List[1])
	if err != nil {
		return err
	}
	if _, err := c.CompleteAssignment(index); err != nil {
		return err
	}
	s.console.Block(renderInfo(c))
	return nil
}

func (s *Session) create(args Args) error {
	id := args.ID()
	if s.store.Has(id) {
		return class.InvalidValue("class ID", id, errClassExists)
	}
	period, err := class.ParsePeriod(args.List[1])
	if err != nil {
		return err
	}
	c := s.store.Create(id, args.From(2), period)
	s.console.Success("created class '%s'", id)
	s.console.Block(renderInfo(c))
	return nil
}

func (s *Session) delete(args Args) error {
	c, err := s.store.Remove(args.ID())
	if err != nil {
		return err
	}
	s.console.Success("deleted class '%s'", c.Name)
	return nil
}

func (s *Session) encode(Args) error {
	s.console.Block(s.store.Encode())
	return nil
}

func (s *Session) help(args Args) error {
	if !args.Has(0) {
		s.console.Block(renderCommandTable(s.commands))
		return nil
	}
	cmd, err := s.lookup(args.List[0])
	if err != nil {
		return err
	}
	s.console.Block(renderCommandHelp(cmd))
	return nil
}

func (s *Session) info(args Args) error {
	if !args.Has(0) {
		s.console.Block(renderAllInfo(s.store))
		return nil
	}
	c, err := s.store.Get(args.ID())
	if err != nil {
		return err
	}
	s.console.Block(renderInfo(c))
	return nil
}

func (s *Session) klog(args Args) error {
	hours, err := class.ParseHours(args.List[0])
	if err != nil {
		return err
	}
	data := s.store.Klog(hours)
	if !args.Has(1) {
		s.console.Block(data)
		return nil
	}

	path := klogPath(args.List[1])
	if data != "" {
		data += "\n"
	}
	if err := s.writeFile(path, []byte(data)); err != nil {
		return err
	}
	s.logger.Printf("wrote klog export to %s", path)
	s.console.Success("wrote to '%s'", path)
	return nil
}

// klogPath replaces any extension on path with .klg.
func klogPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + klogExtension
}

func (s *Session) list(args Args) error {
	method := s.defaultSort
	if args.Has(0) {
		parsed, err := class.ParseSortMethod(args.List[0])
		if err != nil {
			return err
		}
		method = parsed
	}
	s.console.Block(renderList(s.store, method))
	return nil
}

func (s *Session) modify(args Args) error {
	c, err := s.store.Get(args.ID())
	if err != nil {
		return err
	}
	if err := c.Modify(args.List[1], args.From(2)); err != nil {
		return err
	}
	s.console.Success("modified '%s'", c.Name)
	s.console.Block(renderInfo(c))
	return nil
}

func (s *Session) preventWrite(Args) error {
	s.persist = false
	s.console.Success("prevented write on shutdown. " +
		"None of the changes made during this session will be saved.\n" +
		"To view the encoded version of the changes you've made, run 'encode'.")
	return nil
}

func (s *Session) remove(args Args) error {
	c, err := s.store.Get(args.ID())
	if err != nil {
		return err
	}
	index, err := class.ParseIndex(args.List[1])
	if err != nil {
		return err
	}
	if _, err := c.RemoveAssignment(index); err != nil {
		return err
	}
	s.console.Block(renderInfo(c))
	return nil
}

func (s *Session) write(Args) error {
	if err := s.Save(); err != nil {
		return err
	}
	s.console.Success("wrote to '%s'", s.storage.Path())
	return nil
}
