// Package nulstr packs an ordered list of strings into a single string and
// parses it back.
//
// Each string is written as a record: a NUL byte, the decimal byte length of
// the string, another NUL byte, then the string's bytes:
//
//	"\x005\x00hello"   // encodes the 5-byte string "hello"
//	"\x000\x00"        // encodes the empty string
//
// Records are concatenated with nothing in between, so the encoding of
// []string{"hi", "there"} is "\x002\x00hi\x005\x00there". An empty list
// encodes to the empty string.
//
// # Basic Usage
//
// Encoding never fails:
//
//	s := nulstr.Encode([]string{"hi", "there"})
//
// Decoding runs a three state automaton over the input and fails on the
// first byte that breaks the format:
//
//	strs, err := nulstr.Decode(s)
//	if errors.Is(err, nulstr.ErrTruncated) {
//		// input was cut short
//	}
//
// Decoding is all or nothing. On error no strings are returned, and the
// error is a *DecodeError carrying the offset and record index where the
// violation was detected.
//
// # Limitations
//
// The format is text only: decoded content must be valid UTF-8. The NUL byte
// is reserved for framing and is assumed not to appear inside a string.
// Encode does not check for it. This decoder reads content by its declared
// length and so still recovers such strings, but readers that scan for the
// sentinel will not. Use HasSentinel to detect these strings before encoding.
//
// A record's content is closed as soon as its declared length is reached, so
// a byte other than the sentinel directly after a record means the content
// ran long. Decode reports that as ErrLengthOverflow, not ErrSentinelNotFound;
// ErrSentinelNotFound is only returned when the first byte is wrong.
//
// # Security
//
// The MaxLength option bounds the declared length of a record. Without it
// only arithmetic overflow of the length marker is rejected.
package nulstr
