package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// NoExecError is returned when a command has no execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.Name)
}

// Command describes a program's single command.
type Command struct {
	// Name is a single word identifying the command in usage and error messages.
	Name string

	// Usage is the full usage pattern, e.g. "fix-reqs [flag ...]". When empty, one is derived from
	// the name and flags.
	Usage string

	// ShortHelp is a brief description shown at the top of the usage text.
	ShortHelp string

	// UsageFunc, if set, replaces [DefaultUsage].
	UsageFunc func(*Command) string

	// Flags holds the command's flag definitions. Ignored when RawArgs is set.
	Flags *flag.FlagSet
	// FlagsMetadata extends Flags with additional information, such as required flags.
	FlagsMetadata []FlagMetadata

	// RawArgs disables flag parsing. Every argument, including ones that look like flags, help
	// requests or "--", is passed through verbatim in [State.Args].
	RawArgs bool

	// Exec runs the command. It receives the parsed [State].
	Exec func(ctx context.Context, s *State) error

	state *State
}

// FlagMetadata holds additional metadata for a flag.
type FlagMetadata struct {
	// Name must match the flag name in the flag set.
	Name string

	// Required indicates the flag must be given explicitly.
	Required bool
}

// FlagsFunc creates a new [flag.FlagSet] and applies fn to it. Example usage:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("verbose", false, "enable verbose output")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

func (c *Command) showHelp(w io.Writer) error {
	fmt.Fprintln(w, DefaultUsage(c))
	return flag.ErrHelp
}
