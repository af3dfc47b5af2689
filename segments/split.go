package segments

import (
	"iter"
	"strings"
)

// string-prefix decorations that may precede a triple-quote delimiter,
// e.g. r"""...""", rb'''...'''
const prefixChars = "rbfuRBFU"

var delimiters = []string{`"""`, `'''`}

// Split classifies content into an alternating sequence of documentation
// and code segments. The sequence is lazy and finite; re-invoke Split to
// restart it.
//
// Concatenating the Text of every segment reproduces the input, except for
// the characters consumed as markers: a documentation block's opening
// delimiter with its string-prefix decoration and leading whitespace, its
// closing delimiter, and the whole opening line when that line is only the
// delimiter.
func Split(content string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		cur := newCursor(content)
		for {
			line, ok := cur.peek()
			if !ok {
				return
			}
			if delim, rest, isDoc := docOpen(line); isDoc {
				cur.next()
				if !yield(Segment{
					Text: readDocBlock(cur, delim, rest),
					Kind: KindDocumentation,
				}) {
					return
				}
			} else {
				if !yield(Segment{
					Text: readCodeBlock(cur),
					Kind: KindCode,
				}) {
					return
				}
			}
		}
	}
}

// docOpen reports whether line opens a documentation block. Leading
// whitespace and at most one string-prefix decoration (length 1 to 3) are
// stripped before looking for the delimiter. rest is the remainder of the
// line after the delimiter.
func docOpen(line string) (delim string, rest string, ok bool) {
	s := strings.TrimLeft(line, " \t")
	n := 0
	for n < len(s) && n < 3 && strings.IndexByte(prefixChars, s[n]) >= 0 {
		n++
	}
	for _, d := range delimiters {
		if strings.HasPrefix(s[n:], d) {
			return d, s[n+len(d):], true
		}
	}
	return "", "", false
}

// readDocBlock accumulates a documentation block whose opening delimiter was
// already consumed. rest is the opening line's remainder after the delimiter.
func readDocBlock(cur *cursor, delim string, rest string) string {
	// single line block
	if text, ok := strings.CutSuffix(rest, delim+"\n"); ok {
		return text + "\n"
	}
	if text, ok := strings.CutSuffix(rest, delim); ok {
		// single line block at end of file, without trailing newline
		return text + "\n"
	}

	var b strings.Builder
	// an opening line that is only the delimiter is discarded whole
	if rest != "\n" && rest != "" {
		b.WriteString(rest)
	}
	for {
		line, ok := cur.next()
		if !ok {
			// unterminated block closes with whatever was accumulated
			break
		}
		if content, closed := docClose(line, delim); closed {
			if content != "" {
				b.WriteString(content)
				b.WriteString("\n")
			}
			break
		}
		b.WriteString(line)
	}
	return b.String()
}

// docClose reports whether line ends a documentation block, returning the
// content before the closing delimiter.
func docClose(line string, delim string) (string, bool) {
	line = strings.TrimSuffix(line, "\n")
	content, ok := strings.CutSuffix(line, delim)
	return content, ok
}

// readCodeBlock accumulates code lines until end of input or a line opening
// a documentation block that is not a docstring. The disambiguation only
// inspects the immediately preceding non-empty line: a docstring preceded by
// a decorator or a blank line, or following a multi-line signature, is
// misclassified as a section boundary. Known limitation, kept as is.
func readCodeBlock(cur *cursor) string {
	var b strings.Builder
	var lastNonEmpty string
	for {
		line, ok := cur.peek()
		if !ok {
			break
		}
		if delim, rest, isDoc := docOpen(line); isDoc {
			if !defHeader(lastNonEmpty) {
				// section boundary: leave the line for the next segment
				break
			}
			// docstring: absorb it, uninterpreted, into the code text
			cur.next()
			b.WriteString(line)
			lastNonEmpty = line
			if _, closed := docClose(rest, delim); !closed {
				for {
					inner, ok := cur.next()
					if !ok {
						break
					}
					b.WriteString(inner)
					lastNonEmpty = inner
					if _, closed := docClose(inner, delim); closed {
						break
					}
				}
			}
			continue
		}
		cur.next()
		b.WriteString(line)
		if strings.TrimSpace(line) != "" {
			lastNonEmpty = line
		}
	}
	return b.String()
}

// defHeader reports whether line looks like a function or class definition
// header, making a following triple-quote line a docstring.
func defHeader(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasSuffix(line, ":") {
		return false
	}
	return strings.HasPrefix(line, "def ") ||
		strings.HasPrefix(line, "class ")
}
