package cli

import (
	"context"
	"errors"
	"io"
	"os"
)

// ParseAndRun is a convenience function that combines [Parse] and [Run].
func ParseAndRun(ctx context.Context, cmd *Command, args []string, options *RunOptions) error {
	if err := Parse(cmd, args); err != nil {
		return err
	}
	return Run(ctx, cmd, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard streams for the command. Nil streams default to
	// [os.Stdin], [os.Stdout] and [os.Stderr].
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes a parsed command. It returns an error if the command has not been parsed or has no
// execution function. options may be nil.
//
// If Exec returns an [*Error] with code [ErrShowHelp], the usage is printed to Stderr before the
// error is returned.
func Run(ctx context.Context, cmd *Command, options *RunOptions) error {
	if cmd == nil || cmd.state == nil {
		return errors.New("command has not been parsed")
	}
	if cmd.Exec == nil {
		return &NoExecError{Command: cmd}
	}
	options = checkAndSetRunOptions(options)
	s := cmd.state
	s.Stdin, s.Stdout, s.Stderr = options.Stdin, options.Stdout, options.Stderr

	err := cmd.Exec(ctx, s)
	if cliErr := (*Error)(nil); errors.As(err, &cliErr) && cliErr.Code() == ErrShowHelp {
		_ = cmd.showHelp(s.Stderr)
	}
	return err
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
