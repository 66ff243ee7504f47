package fixreqs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Tag returns the tag of line: everything after the first '#' of the trimmed line, trimmed again.
// ok is false when the line has no '#'.
func Tag(line string) (code string, ok bool) {
	_, after, found := strings.Cut(strings.TrimSpace(line), "#")
	if !found {
		return "", false
	}
	return strings.TrimSpace(after), true
}

// Keep reports whether line survives the filter. Untagged lines are always kept.
func Keep(flags FlagSet, line string) bool {
	code, ok := Tag(line)
	if !ok {
		return true
	}
	return !flags.Excludes(code)
}

// Result summarizes a single filtering pass.
type Result struct {
	Read, Kept, Dropped int

	// Tags counts how many lines carried each tag, whether kept or not.
	Tags map[string]int
}

// Filter copies the lines of r that survive flags to w, in order, each followed by a single
// newline. The original line content is written, not the trimmed copy used to find the tag.
//
// Cancellation is checked between lines. Output is flushed before Filter returns.
func Filter(ctx context.Context, r io.Reader, w io.Writer, flags FlagSet) (_ Result, retErr error) {
	res := Result{Tags: make(map[string]int)}
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	defer func() {
		if err := bw.Flush(); err != nil && retErr == nil {
			retErr = fmt.Errorf("write output: %w", err)
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return res, fmt.Errorf("read input: %w", err)
		}
		atEOF := err != nil
		if atEOF && line == "" {
			return res, nil
		}
		line = strings.TrimSuffix(line, "\n")
		res.Read++

		code, tagged := Tag(line)
		if tagged {
			res.Tags[code]++
		}
		if tagged && flags.Excludes(code) {
			res.Dropped++
		} else {
			if _, err := bw.WriteString(line); err != nil {
				return res, fmt.Errorf("write output: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return res, fmt.Errorf("write output: %w", err)
			}
			res.Kept++
		}
		if atEOF {
			return res, nil
		}
	}
}
