// Command fix-reqs filters requirement lines read from standard input by their trailing "#tag".
//
//	fix-reqs [flag ...] < requirements.txt
//
// Every argument is a filter flag. "no-<tag>" drops lines tagged <tag>; "only" drops every tagged
// line whose tag is not itself given as an argument. Untagged lines are always printed.
//
// Set FIXREQS_LOG_LEVEL=debug to get a summary and hints about flags that matched nothing on
// standard error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mfridman/fixreqs/internal/cli"
	"github.com/mfridman/fixreqs/internal/ctxlog"
)

func main() {
	logger := newLogger(os.Stderr, os.Getenv(logLevelEnv))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if err := cli.ParseAndRun(ctx, newRootCommand(), os.Args[1:], nil); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
