package rpegio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/kmaher/rpegio/internal"
)

// headerMagic is the literal tag line that opens every rpeg container.
var headerMagic = []byte("Compressed image format 2")

// Decoder reads one rpeg container from an io.Reader.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a decoder that reads r to exhaustion on Decode.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Decode consumes the whole stream and parses it as an rpeg container.
// Read errors propagate verbatim; malformed input is reported as *Error.
func (d *Decoder) Decode() (*Image, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes parses an in-memory rpeg container. The returned Image's
// words copy out of data, so data may be reused afterwards.
func DecodeBytes(data []byte) (*Image, error) {
	cur := internal.NewCursor(data)
	width, height, err := parseHeader(cur)
	if err != nil {
		return nil, err
	}
	words, err := groupWords(cur)
	if err != nil {
		return nil, err
	}
	return &Image{Words: words, Width: width, Height: height}, nil
}

// DecodeFile decodes the named file, or standard input when path is
// empty. The file handle is released before returning.
func DecodeFile(path string) (*Image, error) {
	if path == "" {
		return NewDecoder(os.Stdin).Decode()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewDecoder(f).Decode()
}

// parseHeader validates the two header lines and leaves cur positioned
// at the first payload byte.
func parseHeader(cur *internal.Cursor) (width, height uint32, err error) {
	if err := expect(cur, headerMagic); err != nil {
		return 0, 0, err
	}
	if err := expectNewline(cur); err != nil {
		return 0, 0, err
	}
	width, err = readUint32(cur)
	if err != nil {
		return 0, 0, err
	}
	if err := expect(cur, []byte{' '}); err != nil {
		return 0, 0, err
	}
	height, err = readUint32(cur)
	if err != nil {
		return 0, 0, err
	}
	if err := expectNewline(cur); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// expect consumes len(want) bytes and requires each to match.
func expect(cur *internal.Cursor, want []byte) error {
	for _, wb := range want {
		b, ok := cur.Next()
		if !ok {
			return &Error{
				Offset: cur.Offset(),
				Kind:   ErrTruncatedInput,
				Detail: fmt.Sprintf("ran out of bytes before expected 0x%02X", wb),
			}
		}
		if b != wb {
			return &Error{
				Offset: cur.Offset() - 1,
				Kind:   ErrUnexpectedByte,
				Detail: fmt.Sprintf("expected 0x%02X, found 0x%02X", wb, b),
			}
		}
	}
	return nil
}

// expectNewline consumes a line terminator: LF, or CR with an optional
// following LF. The LF after a CR is consumed when present but never
// required.
func expectNewline(cur *internal.Cursor) error {
	b, ok := cur.Next()
	if !ok {
		return &Error{
			Offset: cur.Offset(),
			Kind:   ErrMalformedNewline,
			Detail: "ran out of bytes before expected newline",
		}
	}
	switch b {
	case '\n':
		return nil
	case '\r':
		if nb, ok := cur.Peek(); ok && nb == '\n' {
			cur.Next()
		}
		return nil
	default:
		return &Error{
			Offset: cur.Offset() - 1,
			Kind:   ErrMalformedNewline,
			Detail: fmt.Sprintf("expected newline byte(s), found 0x%02X", b),
		}
	}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// readUint32 consumes one or more ASCII digits, accumulating in base
// 10. It stops at the first non-digit without consuming it.
func readUint32(cur *internal.Cursor) (uint32, error) {
	b, ok := cur.Peek()
	if !ok || !isDigit(b) {
		detail := "ran out of bytes where a number was expected"
		if ok {
			detail = fmt.Sprintf("found 0x%02X where a number was expected", b)
		}
		return 0, &Error{Offset: cur.Offset(), Kind: ErrExpectedNumber, Detail: detail}
	}
	var n uint64
	for {
		b, ok := cur.Peek()
		if !ok || !isDigit(b) {
			return uint32(n), nil
		}
		cur.Next()
		// n <= MaxUint32 on entry, so this cannot wrap uint64.
		n = n*10 + uint64(b-'0')
		if n > math.MaxUint32 {
			return 0, &Error{
				Offset: cur.Offset() - 1,
				Kind:   ErrIntegerOverflow,
				Detail: "decimal value exceeds 32-bit unsigned range",
			}
		}
	}
}

// groupWords drains the cursor and partitions the remaining payload
// into 4-byte words, in original order.
func groupWords(cur *internal.Cursor) ([]Word, error) {
	headerLen := cur.Offset()
	rest := cur.Rest()
	if len(rest)%WordSize != 0 {
		return nil, &Error{
			Offset: headerLen,
			Kind:   ErrMisalignedPayload,
			Detail: fmt.Sprintf("payload length %d is not a multiple of %d", len(rest), WordSize),
		}
	}
	words := make([]Word, len(rest)/WordSize)
	for i := range words {
		copy(words[i][:], rest[i*WordSize:])
	}
	return words, nil
}
