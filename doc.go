// Package fixreqs filters requirement lines by their trailing tag.
//
// A line may carry a tag after its first '#'. Lines without a tag always pass through. Tagged
// lines are dropped when the flag set contains "no-<tag>", or when it contains "only" but not the
// tag itself. Everything else is reprinted unchanged, in input order.
package fixreqs
