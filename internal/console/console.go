// Package console writes user-facing messages for an interactive session.
package console

import (
	"fmt"
	"io"

	"github.com/amonks/skid/internal/ui"
)

// Console writes command output, confirmations and errors.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a console writing output to out and errors to errOut.
// Nil writers discard.
func New(out, errOut io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Console{out: out, errOut: errOut}
}

// Println writes a line of output.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Block writes value preceded by a blank line.
func (c *Console) Block(value string) {
	fmt.Fprintf(c.out, "\n%s\n", value)
}

// Success writes "Successfully <message>".
func (c *Console) Success(format string, a ...any) {
	fmt.Fprintf(c.out, "Successfully %s\n", fmt.Sprintf(format, a...))
}

// Error writes "ERR! <err>" to the error writer.
func (c *Console) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(c.errOut, "%s %s\n", ui.ErrorMark("ERR!"), err)
}
