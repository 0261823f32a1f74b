// Command rpegtool inspects and rewrites rpeg container files. It
// reads from a file or stdin, decodes, and either reports on the
// container or re-emits it (binary, normalized-LF, or debug form).
// Gzip-compressed input is detected and unwrapped transparently.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/kmaher/rpegio"
	"github.com/kmaher/rpegio/debugrep"
)

func main() {
	in := flag.String("in", "-", "input .rpeg file (or - for stdin)")
	out := flag.String("out", "-", "output file (or - for stdout)")
	debug := flag.Bool("debug", false, "write the human-readable debug form instead of binary")
	info := flag.Bool("info", false, "print dimensions and word count (no output bytes)")
	validate := flag.Bool("validate", false, "parse only; exit 0 on well-formed input")
	gz := flag.Bool("gzip", false, "gzip-compress the written output")
	flag.Parse()

	logger := newLogger()

	data, err := readInput(*in)
	if err != nil {
		logger.Fatal().Err(err).Str("in", *in).Msg("read input")
	}

	img, err := rpegio.DecodeBytes(data)
	if err != nil {
		logger.Fatal().Err(err).Msg("decode")
	}

	if *info {
		fmt.Printf("Size: %dx%d\n", img.Width, img.Height)
		fmt.Printf("Words: %d\n", len(img.Words))
		return
	}
	if *validate {
		return
	}

	w, cleanup, err := openOutput(*out)
	if err != nil {
		logger.Fatal().Err(err).Str("out", *out).Msg("create output")
	}
	defer cleanup()

	if *gz {
		gw := gzip.NewWriter(w)
		defer func() {
			if err := gw.Close(); err != nil {
				logger.Fatal().Err(err).Msg("flush gzip output")
			}
		}()
		w = gw
	}

	if *debug {
		err = debugrep.Fprint(w, img)
	} else {
		err = rpegio.NewEncoder(w).Encode(img)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("write output")
	}
}

func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "rpegtool").Logger()
}

// readInput reads the named file (or stdin for "-") fully, unwrapping
// one layer of gzip when the stream starts with the gzip magic.
func readInput(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if !isGzip(data) {
		return data, nil
	}
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return io.ReadAll(gr)
}

func isGzip(b []byte) bool {
	return len(b) >= 2 && b[0] == 0x1F && b[1] == 0x8B
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
