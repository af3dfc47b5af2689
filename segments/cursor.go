package segments

import "strings"

// cursor iterates content line by line. Each line keeps its trailing
// newline; the final line may lack one.
type cursor struct {
	rest   string
	line   string
	peeked bool
}

func newCursor(content string) *cursor {
	return &cursor{
		rest: content,
	}
}

// peek returns the next line without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.peeked {
		return c.line, true
	}
	if c.rest == "" {
		return "", false
	}
	if i := strings.IndexByte(c.rest, '\n'); i >= 0 {
		c.line = c.rest[:i+1]
		c.rest = c.rest[i+1:]
	} else {
		c.line = c.rest
		c.rest = ""
	}
	c.peeked = true
	return c.line, true
}

func (c *cursor) next() (string, bool) {
	line, ok := c.peek()
	c.peeked = false
	return line, ok
}
