package steps

import (
	"strconv"
	"strings"
)

// Target is the raw fast-forward flag value: an ordinal when it parses as
// an integer, else a case-insensitive substring matched against
// documentation text. Empty means no fast-forwarding.
type Target string

// FastForward decides whether the current snippet runs silently. One
// target is active per run, set at start.
type FastForward struct {
	ordinal int
	substr  string
	current int // 1-based ordinal of the current segment
	passed  bool
	active  bool
}

func NewFastForward(target Target) *FastForward {
	ff := &FastForward{
		current: 1,
	}
	if target == "" {
		return ff
	}
	ff.active = true
	if n, err := strconv.Atoi(string(target)); err == nil {
		ff.ordinal = n
	} else {
		ff.substr = strings.ToLower(string(target))
	}
	return ff
}

// OnDocumentation feeds documentation text to a substring target. Once the
// target is passed it never reverts.
func (f *FastForward) OnDocumentation(text string) {
	if !f.active || f.substr == "" || f.passed {
		return
	}
	if strings.Contains(strings.ToLower(text), f.substr) {
		f.passed = true
	}
}

// Forwarding reports whether the current segment runs silently. The driver
// captures this once at segment start, before OnDocumentation, so that the
// segment carrying the matched text is itself still forwarded.
func (f *FastForward) Forwarding() bool {
	if !f.active {
		return false
	}
	if f.substr != "" {
		return !f.passed
	}
	return f.current <= f.ordinal
}

// Advance moves to the next segment. Called exactly once per segment,
// regardless of targeting mode.
func (f *FastForward) Advance() {
	f.current++
}
