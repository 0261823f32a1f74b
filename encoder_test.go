package rpegio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_Reference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(refImage))
	require.Equal(t, refInput, buf.Bytes())
}

func TestEncode_AlwaysLF(t *testing.T) {
	// Output is normalized to LF regardless of how the source was
	// terminated.
	src := append([]byte("Compressed image format 2\r\n2 1\r\n"), refInput[30:]...)
	img, err := DecodeBytes(src)
	require.NoError(t, err)

	out, err := EncodeBytes(img)
	require.NoError(t, err)
	require.Equal(t, refInput, out)
}

func TestEncode_NoValidation(t *testing.T) {
	// Any dimensions/word-count combination is written as given.
	img := &Image{Words: []Word{{9, 9, 9, 9}}, Width: 4096, Height: 4096}
	out, err := EncodeBytes(img)
	require.NoError(t, err)
	require.Equal(t, append([]byte("Compressed image format 2\n4096 4096\n"), 9, 9, 9, 9), out)
}

func TestEncode_EmptyPayload(t *testing.T) {
	out, err := EncodeBytes(&Image{Width: 0, Height: 0})
	require.NoError(t, err)
	require.Equal(t, []byte("Compressed image format 2\n0 0\n"), out)
}

// failWriter errors after n successful writes.
type failWriter struct {
	n   int
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func TestEncode_WriteErrorPropagates(t *testing.T) {
	werr := errors.New("sink closed")
	for _, n := range []int{0, 1} {
		err := NewEncoder(&failWriter{n: n, err: werr}).Encode(refImage)
		require.ErrorIs(t, err, werr)
	}
}
