package nulstr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per way a stream can be malformed.
var (
	// ErrSentinelNotFound indicates the stream does not start with a sentinel.
	ErrSentinelNotFound = errors.New("nulstr: sentinel not found when expected")

	// ErrLengthMarkerCorrupt indicates the length marker was cut off by the
	// end of input, or declares more than the decoder can hold.
	ErrLengthMarkerCorrupt = errors.New("nulstr: length marker corrupt")

	// ErrNonDigitInLengthMarker indicates a byte other than '0'-'9' inside a
	// length marker.
	ErrNonDigitInLengthMarker = errors.New("nulstr: non-digit in length marker")

	// ErrLengthOverflow indicates record content running past its declared
	// length.
	ErrLengthOverflow = errors.New("nulstr: content overflows declared length")

	// ErrTruncated indicates the input ended before a record's content was
	// complete.
	ErrTruncated = errors.New("nulstr: content truncated before declared length")

	// ErrInvalidUTF8 indicates record content that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("nulstr: content is not valid UTF-8")
)

// DecodeError describes where and why decoding failed.
type DecodeError struct {
	Offset int   // Byte offset in the input where the error was detected
	Record int   // Zero-based index of the record being parsed
	Err    error // One of the sentinel errors above
	Cause  error // Underlying error, set for ErrInvalidUTF8
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: record %d at offset %d: %v", e.Err, e.Record, e.Offset, e.Cause)
	}
	return fmt.Sprintf("%v: record %d at offset %d", e.Err, e.Record, e.Offset)
}

func (e *DecodeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// UTF8Error reports the position of the first invalid byte in a record's
// content.
type UTF8Error struct {
	ValidUpTo int // Length of the longest valid UTF-8 prefix
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence after %d valid bytes", e.ValidUpTo)
}
