// Package cmdline dispatches "prog COMMAND [ARGS]" command lines to
// go-arg parsed handlers.
package cmdline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	arg "github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

// Command represents an action that can be run from the command line
type Command struct {
	Name     string
	Synopsis string
	Args     Handler
}

// Handler represents a function that gets called for an action
type Handler interface {
	Handle() error
}

// Validator is the interface for custom validation of command line arguments
type Validator interface {
	Validate() error
}

// ErrUsage is returned by Dispatch when the command line could not be parsed.
// Usage or help text has already been written when it is returned.
var ErrUsage = errors.New("usage error")

// ErrHelp is returned by Dispatch after help was written on request.
var ErrHelp = errors.New("help requested")

// Prog returns the base name of the running program.
func Prog() string {
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "program"
}

// WriteUsage lists the commands.
func WriteUsage(w io.Writer, prog string, cmds ...Command) {
	fmt.Fprintf(w, "Usage: %s COMMAND [ARGS]\n", prog)
	fmt.Fprintf(w, "Command can be one of:\n")
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-20s %s\n", cmd.Name, cmd.Synopsis)
	}
	fmt.Fprintf(w, "  %-20s %s\n", "help", "display this help and exit")
	fmt.Fprintf(w, "  %-20s %s\n", "help COMMAND", "display help for command and exit")
}

// Dispatch parses args (without the program name), validates them and runs
// the selected handler. Usage and help go to w.
func Dispatch(w io.Writer, prog string, args []string, cmds ...Command) error {
	if len(args) < 1 {
		WriteUsage(w, prog, cmds...)
		fmt.Fprintln(w, "\nError: no command provided")
		return ErrUsage
	}

	var help bool
	action := args[0]
	if action == "help" {
		if len(args) < 2 {
			WriteUsage(w, prog, cmds...)
			return ErrHelp
		}
		help = true
		action = args[1]
	}

	var cmd *Command
	for i := range cmds {
		if cmds[i].Name == action {
			cmd = &cmds[i]
			break
		}
	}
	if cmd == nil {
		WriteUsage(w, prog, cmds...)
		fmt.Fprintln(w, "\nError: unknown command", action)
		return ErrUsage
	}

	parser, err := arg.NewParser(arg.Config{Program: prog + " " + action}, cmd.Args)
	if err != nil {
		return errors.Wrapf(err, "building parser for %s", action)
	}
	if help {
		parser.WriteHelp(w)
		return ErrHelp
	}

	if err := parser.Parse(args[1:]); err != nil {
		if err == arg.ErrHelp {
			parser.WriteHelp(w)
			return ErrHelp
		}
		parser.WriteUsage(w)
		fmt.Fprintln(w, "error:", err)
		return ErrUsage
	}

	if v, ok := cmd.Args.(Validator); ok {
		if err := v.Validate(); err != nil {
			parser.WriteUsage(w)
			fmt.Fprintln(w, "error:", err)
			return ErrUsage
		}
	}

	return cmd.Args.Handle()
}

// MustDispatch dispatches os.Args and exits non-zero on any failure.
func MustDispatch(cmds ...Command) {
	err := Dispatch(os.Stdout, Prog(), os.Args[1:], cmds...)
	switch {
	case err == nil, err == ErrHelp:
		return
	case err == ErrUsage:
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "Failed:", err)
		os.Exit(1)
	}
}
