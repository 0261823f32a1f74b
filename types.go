package rpegio

// WordSize is the fixed width of a payload word in bytes.
const WordSize = 4

// Word is one opaque unit of compressed image payload. The four bytes
// are kept in wire order; this layer never reinterprets them.
type Word [WordSize]byte

// Image is a decoded rpeg container: the payload words plus the two
// dimension fields from the header. The format carries no stride or
// count check, so Width*Height is not required to match len(Words)
// and neither the decoder nor the encoder cross-validates them.
type Image struct {
	Words  []Word
	Width  uint32
	Height uint32
}
