package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mfridman/xflag"
)

// Parse parses args, typically os.Args[1:], for cmd. Once parsing succeeds, cmd is ready to be
// executed with [Run].
//
// For flag-based commands a help request (-h, -help, --h, --help) anywhere before "--" prints the
// usage to the flag set's output and returns [flag.ErrHelp].
func Parse(cmd *Command, args []string) error {
	if cmd == nil {
		return errors.New("failed to parse: command is nil")
	}
	if err := validateCommand(cmd); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if cmd.Flags == nil {
		cmd.Flags = flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	}
	cmd.state = &State{
		flags: cmd.Flags,
		cmd:   cmd,
	}

	if cmd.RawArgs {
		cmd.state.Args = slices.Clone(args)
		return nil
	}

	// Split args at the -- delimiter if present
	argsToParse, remainingArgs := args, []string(nil)
	if i := slices.Index(args, "--"); i >= 0 {
		argsToParse, remainingArgs = args[:i], args[i+1:]
	}

	for _, arg := range argsToParse {
		if isHelpFlag(arg) {
			return cmd.showHelp(cmd.Flags.Output())
		}
	}

	// Parse into a private flag set so errors are not printed twice.
	fset := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	cmd.Flags.VisitAll(func(f *flag.Flag) {
		fset.Var(f.Value, f.Name, f.Usage)
	})
	if err := xflag.ParseToEnd(fset, argsToParse); err != nil {
		return fmt.Errorf("command %q: %w", cmd.Name, err)
	}

	if err := checkRequired(cmd, fset); err != nil {
		return err
	}

	cmd.state.Args = append(slices.Clone(fset.Args()), remainingArgs...)
	return nil
}

func checkRequired(cmd *Command, fset *flag.FlagSet) error {
	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	var missing []string
	for _, md := range cmd.FlagsMetadata {
		if !md.Required {
			continue
		}
		if fset.Lookup(md.Name) == nil {
			return fmt.Errorf("command %q: internal error: required flag %s not found in flag set", cmd.Name, formatFlagName(md.Name))
		}
		if !set[md.Name] {
			missing = append(missing, formatFlagName(md.Name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("command %q: required flags %q not set", cmd.Name, strings.Join(missing, ", "))
	}
	return nil
}

func validateCommand(cmd *Command) error {
	if cmd.Name == "" {
		return errors.New("command has no name")
	}
	if strings.Contains(cmd.Name, " ") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", cmd.Name)
	}
	return nil
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--h", "-help", "--help":
		return true
	}
	return false
}

func formatFlagName(name string) string {
	return "-" + name
}
