package main

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/mfridman/fixreqs"
	"github.com/mfridman/fixreqs/internal/cli"
	"github.com/mfridman/fixreqs/internal/ctxlog"
	"github.com/mfridman/fixreqs/pkg/suggest"
)

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "fix-reqs",
		Usage:     "fix-reqs [flag ...] < input",
		ShortHelp: "Print the lines of standard input whose #tag is not excluded by the given flags.",
		// Arguments are tag flags, not options: "-x" or "--help" are taken literally.
		RawArgs: true,
		Exec:    execFilter,
	}
}

func execFilter(ctx context.Context, s *cli.State) error {
	logger := ctxlog.FromContext(ctx)
	flags := fixreqs.NewFlagSet(s.Args)

	res, err := fixreqs.Filter(ctx, s.Stdin, s.Stdout, flags)
	if err != nil {
		return err
	}

	logger.Debug("filtered input",
		slog.Int("read", res.Read),
		slog.Int("kept", res.Kept),
		slog.Int("dropped", res.Dropped),
		slog.Any("flags", flags.Values()),
	)
	for _, u := range unmatchedFlags(flags, res) {
		logger.Debug("flag matched no tagged line",
			slog.String("flag", u.flag),
			slog.String("tag", u.tag),
			slog.Any("similar", u.similar),
		)
	}
	return nil
}

type unmatched struct {
	flag    string
	tag     string
	similar []string
}

// unmatchedFlags returns the flags naming a tag that no input line carried. A "no-<tag>" flag
// always names a tag; a plain flag only does in allow-list mode.
func unmatchedFlags(flags fixreqs.FlagSet, res fixreqs.Result) []unmatched {
	seen := make([]string, 0, len(res.Tags))
	for tag := range res.Tags {
		seen = append(seen, tag)
	}
	slices.Sort(seen)

	var out []unmatched
	for _, f := range flags.Values() {
		if f == fixreqs.OnlyFlag {
			continue
		}
		tag, ok := strings.CutPrefix(f, fixreqs.ExcludePrefix)
		if !ok {
			if !flags.Only() {
				continue
			}
			tag = f
		}
		if res.Tags[tag] > 0 {
			continue
		}
		out = append(out, unmatched{
			flag:    f,
			tag:     tag,
			similar: suggest.FindSimilar(tag, seen, 3),
		})
	}
	return out
}
