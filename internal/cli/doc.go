// Package cli is a small framework for single-command programs. A [Command] either parses its
// arguments with a [flag.FlagSet] (flags may appear anywhere, "--" ends option parsing) or, when
// [Command.RawArgs] is set, hands every argument to its Exec function untouched.
package cli
