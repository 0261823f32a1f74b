package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestIsGzip(t *testing.T) {
	require.True(t, isGzip([]byte{0x1F, 0x8B, 0x08}))
	require.False(t, isGzip([]byte("Compressed image format 2\n")))
	require.False(t, isGzip([]byte{0x1F}))
	require.False(t, isGzip(nil))
}

func TestReadInput_TransparentGzip(t *testing.T) {
	raw := append([]byte("Compressed image format 2\n1 1\n"), 1, 2, 3, 4)

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	_, err := gw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.rpeg")
	compressed := filepath.Join(dir, "compressed.rpeg.gz")
	require.NoError(t, os.WriteFile(plain, raw, 0o644))
	require.NoError(t, os.WriteFile(compressed, gzBuf.Bytes(), 0o644))

	got, err := readInput(plain)
	require.NoError(t, err)
	require.Equal(t, raw, got)

	got, err = readInput(compressed)
	require.NoError(t, err)
	require.Equal(t, raw, got)
}
