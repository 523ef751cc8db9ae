// Package balance checks delimiter nesting of (), {} and [] in raw text.
// The scan is literal-unaware: delimiters inside strings or comments count.
package balance

import (
	"fmt"
	"strings"
)

// MaxListed is the maximum number of unmatched openers reported.
const MaxListed = 10

// pairs maps each opener to the closer it requires.
var pairs = map[rune]rune{
	'(': ')',
	'{': '}',
	'[': ']',
}

// Kind identifies the outcome of a check.
type Kind int

const (
	// Balanced means every opener was closed by the right kind, in order.
	Balanced Kind = iota
	// Mismatched means a closer did not match the most recent open delimiter.
	Mismatched
	// UnmatchedCloser means a closer appeared with nothing open.
	UnmatchedCloser
	// UnmatchedOpeners means the text ended with delimiters still open.
	UnmatchedOpeners
)

// String returns a short name for the outcome kind.
func (k Kind) String() string {
	switch k {
	case Balanced:
		return "balanced"
	case Mismatched:
		return "mismatched"
	case UnmatchedCloser:
		return "unmatched closer"
	case UnmatchedOpeners:
		return "unmatched openers"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Delimiter is a delimiter character and its 1-based position in the text.
type Delimiter struct {
	Char rune
	Pos  int
}

// Result is the outcome of a single check.
type Result struct {
	Kind Kind
	// Opener is the popped opener for Mismatched.
	Opener Delimiter
	// Closer is the offending closer for Mismatched and UnmatchedCloser.
	Closer Delimiter
	// Open lists the oldest unmatched openers, at most MaxListed of them.
	Open []Delimiter
}

// IsOpener reports whether r is one of ( { [.
func IsOpener(r rune) bool {
	_, ok := pairs[r]
	return ok
}

// IsCloser reports whether r is one of ) } ].
func IsCloser(r rune) bool {
	return r == ')' || r == '}' || r == ']'
}

// CloserFor returns the closer required by opener, or 0 if r is not an opener.
func CloserFor(opener rune) rune {
	return pairs[opener]
}

// Check scans text once from left to right and returns the first fault found,
// or the final state of the open-delimiter stack. Positions count runes.
func Check(text string) Result {
	var stack []Delimiter

	pos := 0
	for _, ch := range text {
		pos++

		switch {
		case IsOpener(ch):
			stack = append(stack, Delimiter{Char: ch, Pos: pos})
		case IsCloser(ch):
			if len(stack) == 0 {
				return Result{Kind: UnmatchedCloser, Closer: Delimiter{Char: ch, Pos: pos}}
			}
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if CloserFor(last.Char) != ch {
				return Result{Kind: Mismatched, Opener: last, Closer: Delimiter{Char: ch, Pos: pos}}
			}
		}
	}

	if len(stack) == 0 {
		return Result{Kind: Balanced}
	}

	n := min(len(stack), MaxListed)
	open := make([]Delimiter, n)
	copy(open, stack[:n])
	return Result{Kind: UnmatchedOpeners, Open: open}
}

// OK reports whether the text was balanced.
func (r Result) OK() bool {
	return r.Kind == Balanced
}

// String renders the single diagnostic line for the result.
func (r Result) String() string {
	switch r.Kind {
	case Mismatched:
		return fmt.Sprintf("Mismatched %c at %d with %c at %d", r.Opener.Char, r.Opener.Pos, r.Closer.Char, r.Closer.Pos)
	case UnmatchedCloser:
		return fmt.Sprintf("Unmatched closer %c at %d", r.Closer.Char, r.Closer.Pos)
	case UnmatchedOpeners:
		return "Unmatched openers remain: " + formatOpen(r.Open)
	default:
		return "All braces/paren/brackets match"
	}
}

// formatOpen renders entries as a tuple list, e.g. [('(', 1), ('{', 4)].
func formatOpen(open []Delimiter) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, d := range open {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "('%c', %d)", d.Char, d.Pos)
	}
	sb.WriteByte(']')
	return sb.String()
}
