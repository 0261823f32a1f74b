// Package rpegio decodes and encodes the rpeg container format: a
// two-line textual header ("Compressed image format 2" followed by
// "<width> <height>") wrapping an opaque binary payload of 4-byte
// words.
//
// The package exposes streaming Encoder/Decoder types along with
// DecodeBytes/EncodeBytes and DecodeFile convenience helpers. The
// payload words are opaque at this layer; no compression semantics and
// no cross-check between the dimensions and the word count are
// implemented, matching the format itself.
package rpegio
