package rpegio

import (
	"io"
	"strconv"
)

// Encoder writes rpeg containers to an io.Writer.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new streaming encoder.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Encode serializes img: the tag line, the dimensions line, then the
// raw word bytes in order. Line terminators are always a single LF,
// regardless of what the decoder accepts on input. No validation is
// performed between the dimensions and the word count; any combination
// is written as given.
func (e *Encoder) Encode(img *Image) error {
	header := make([]byte, 0, len(headerMagic)+24)
	header = append(header, headerMagic...)
	header = append(header, '\n')
	header = strconv.AppendUint(header, uint64(img.Width), 10)
	header = append(header, ' ')
	header = strconv.AppendUint(header, uint64(img.Height), 10)
	header = append(header, '\n')
	if _, err := e.w.Write(header); err != nil {
		return err
	}
	for i := range img.Words {
		if _, err := e.w.Write(img.Words[i][:]); err != nil {
			return err
		}
	}
	return nil
}
