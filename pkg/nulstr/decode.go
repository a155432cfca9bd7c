package nulstr

import "unicode/utf8"

// state is the decoder's position within a record.
type state uint8

const (
	seekingSentinel state = iota // expecting the sentinel that opens a record
	readingLength                // accumulating length marker digits
	readingString                // accumulating content bytes
)

// Decode parses s and returns the strings it encodes, in order.
//
// An empty s decodes to an empty, non-nil slice. On failure Decode returns a
// nil slice and a *DecodeError.
func (d *Decoder) Decode(s string) ([]string, error) {
	var (
		st           = seekingSentinel
		length       int
		contentStart int
		buf          []byte
		out          = []string{}
	)

	fail := func(offset int, err error) ([]string, error) {
		return nil, &DecodeError{Offset: offset, Record: len(out), Err: err}
	}

	for i := 0; i < len(s); i++ {
		b := s[i]

		switch st {
		case seekingSentinel:
			if b != Sentinel {
				if i == 0 {
					return fail(i, ErrSentinelNotFound)
				}
				// The previous record's content ended where its length said
				// it would, yet more content follows.
				return nil, &DecodeError{Offset: i, Record: len(out) - 1, Err: ErrLengthOverflow}
			}
			st = readingLength

		case readingLength:
			if b == Sentinel {
				if length == 0 {
					out = append(out, "")
					st = seekingSentinel
					continue
				}
				// Never reserve more than the input can still supply.
				if n := min(length, len(s)-i-1); cap(buf) < n {
					buf = make([]byte, 0, n)
				}
				contentStart = i + 1
				st = readingString
				continue
			}

			if b < '0' || b > '9' {
				return fail(i, ErrNonDigitInLengthMarker)
			}

			digit := int(b - '0')
			if length > d.maxLength/10 || length*10 > d.maxLength-digit {
				return fail(i, ErrLengthMarkerCorrupt)
			}
			length = length*10 + digit

		case readingString:
			buf = append(buf, b)

			if len(buf) > length {
				return fail(i, ErrLengthOverflow)
			}
			if len(buf) < length {
				continue
			}

			if n, ok := validUTF8Prefix(buf); !ok {
				return nil, &DecodeError{
					Offset: contentStart + n,
					Record: len(out),
					Err:    ErrInvalidUTF8,
					Cause:  &UTF8Error{ValidUpTo: n},
				}
			}
			out = append(out, string(buf))

			buf = buf[:0]
			length = 0
			st = seekingSentinel
		}
	}

	switch st {
	case readingLength:
		return fail(len(s), ErrLengthMarkerCorrupt)
	case readingString:
		return fail(len(s), ErrTruncated)
	default:
		return out, nil
	}
}

// validUTF8Prefix returns the length of the longest valid UTF-8 prefix of b
// and whether that prefix is all of b.
func validUTF8Prefix(b []byte) (int, bool) {
	if utf8.Valid(b) {
		return len(b), true
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, false
		}
		i += size
	}
	return len(b), true
}
