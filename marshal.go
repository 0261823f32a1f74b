package rpegio

import (
	"github.com/kmaher/rpegio/internal"
)

// EncodeBytes serializes img into a freshly allocated byte slice.
func EncodeBytes(img *Image) ([]byte, error) {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)
	if err := NewEncoder(buf).Encode(img); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
