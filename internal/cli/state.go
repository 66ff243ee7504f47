package cli

import (
	"flag"
	"fmt"
	"io"
)

// State is the parsed state passed to a command's Exec function.
type State struct {
	// Args contains the arguments left after flag parsing, or every argument for a
	// [Command.RawArgs] command.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	flags *flag.FlagSet
	cmd   *Command
}

// GetFlag retrieves a flag value by name, with type inference. Example usage:
//
//	verbose := GetFlag[bool](state, "verbose")
//	path := GetFlag[string](state, "path")
//
// It panics if the flag is not registered or has a different type. Both are programming errors
// and should fail loud and early.
func GetFlag[T any](s *State, name string) T {
	cmdName := ""
	if s.cmd != nil {
		cmdName = s.cmd.Name
	}
	f := s.flags.Lookup(name)
	if f == nil {
		panic(fmt.Errorf("internal error: flag %q not found in command %q flag set", formatFlagName(name), cmdName))
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		panic(fmt.Errorf("internal error: flag %q in command %q does not implement flag.Getter", formatFlagName(name), cmdName))
	}
	value := getter.Get()
	v, ok := value.(T)
	if !ok {
		panic(fmt.Errorf("internal error: type mismatch for flag %q in command %q: registered %T, requested %T",
			formatFlagName(name), cmdName, value, *new(T)))
	}
	return v
}
