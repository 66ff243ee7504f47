package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mfridman/fixreqs/pkg/textutil"
)

const usageWidth = 80

// DefaultUsage renders the usage text for c: short help, usage pattern and flags.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	if c.UsageFunc != nil {
		return c.UsageFunc(c)
	}

	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n  ")
	if c.Usage != "" {
		b.WriteString(c.Usage)
	} else {
		b.WriteString(c.Name)
		if hasFlags(c) {
			b.WriteString(" [flags]")
		}
	}
	b.WriteString("\n\n")

	if hasFlags(c) {
		required := make(map[string]bool)
		for _, md := range c.FlagsMetadata {
			required[md.Name] = md.Required
		}
		var flags []flagInfo
		maxLen := 0
		// VisitAll walks flags in lexicographical order.
		c.Flags.VisitAll(func(f *flag.Flag) {
			info := flagInfo{
				name:     formatFlagName(f.Name),
				usage:    f.Usage,
				defval:   f.DefValue,
				required: required[f.Name],
			}
			maxLen = max(maxLen, len(info.name))
			flags = append(flags, info)
		})
		b.WriteString("Flags:\n")
		writeFlagSection(&b, flags, maxLen)
	}

	return strings.TrimRight(b.String(), "\n")
}

func hasFlags(c *Command) bool {
	if c.RawArgs || c.Flags == nil {
		return false
	}
	n := 0
	c.Flags.VisitAll(func(*flag.Flag) { n++ })
	return n > 0
}

func writeFlagSection(b *strings.Builder, flags []flagInfo, maxLen int) {
	nameWidth := maxLen + 4
	wrapWidth := usageWidth - nameWidth

	for _, f := range flags {
		description := f.usage
		if f.required {
			description += " (required)"
		} else if f.defval != "" && f.defval != "false" {
			description += fmt.Sprintf(" (default: %s)", f.defval)
		}

		lines := textutil.Wrap(description, wrapWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		padding := strings.Repeat(" ", nameWidth-len(f.name))
		fmt.Fprintf(b, "  %s%s%s\n", f.name, padding, lines[0])

		indent := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}

type flagInfo struct {
	name     string
	usage    string
	defval   string
	required bool
}
