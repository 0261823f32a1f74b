package internal

// Cursor is a forward-only, peekable view over a byte buffer. It owns
// no byte data beyond the slice it was given and never re-offers a
// consumed byte.
type Cursor struct {
	src []byte
	off int
}

func NewCursor(src []byte) *Cursor { return &Cursor{src: src} }

// Peek returns the next byte without consuming it. The second return
// is false when the cursor is exhausted.
func (c *Cursor) Peek() (byte, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	return c.src[c.off], true
}

// Next consumes and returns the next byte.
func (c *Cursor) Next() (byte, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	b := c.src[c.off]
	c.off++
	return b, true
}

// Offset reports how many bytes have been consumed so far.
func (c *Cursor) Offset() int64 { return int64(c.off) }

// Len reports how many bytes remain.
func (c *Cursor) Len() int { return len(c.src) - c.off }

// Rest drains the cursor and returns every remaining byte. The
// returned slice aliases the cursor's backing buffer.
func (c *Cursor) Rest() []byte {
	rest := c.src[c.off:]
	c.off = len(c.src)
	return rest
}
