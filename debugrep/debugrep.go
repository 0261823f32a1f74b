// Package debugrep renders an rpeg image in a human-readable form for
// inspection during development. The output is one-directional: there
// is no corresponding parser and the form is not round-trippable.
package debugrep

import (
	"fmt"
	"io"

	"github.com/kmaher/rpegio"
	"github.com/kmaher/rpegio/internal"
)

const upperhex = "0123456789ABCDEF"

// Fprint writes the debug form of img to w: a tagged header line, the
// dimensions line, then every payload byte as upper-case two-digit hex
// separated by single spaces, with no trailing newline.
func Fprint(w io.Writer, img *rpegio.Image) error {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	fmt.Fprintf(buf, "Compressed image format 2 [DEBUG]\n%d %d\n", img.Width, img.Height)
	first := true
	for _, word := range img.Words {
		for _, b := range word {
			if first {
				first = false
			} else {
				buf.WriteByte(' ')
			}
			buf.WriteByte(upperhex[b>>4])
			buf.WriteByte(upperhex[b&0x0F])
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// String renders img's debug form as a string.
func String(img *rpegio.Image) string {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)
	// Writes to a bytes.Buffer cannot fail.
	_ = Fprint(buf, img)
	return buf.String()
}
