package nulstr

import (
	"strconv"
	"strings"
)

// Encode returns the encoding of strs.
//
// Example:
//
//	nulstr.Encode([]string{"hi", "there"}) // "\x002\x00hi\x005\x00there"
func Encode(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	return string(Append(make([]byte, 0, EncodedLen(strs)), strs...))
}

// Append appends the encoding of strs to dst and returns the extended
// buffer.
func Append(dst []byte, strs ...string) []byte {
	if n := EncodedLen(strs); cap(dst)-len(dst) < n {
		grown := make([]byte, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}

	for _, s := range strs {
		dst = append(dst, Sentinel)
		dst = strconv.AppendInt(dst, int64(len(s)), 10)
		dst = append(dst, Sentinel)
		dst = append(dst, s...)
	}
	return dst
}

// EncodedLen returns the exact number of bytes Encode produces for strs.
func EncodedLen(strs []string) int {
	total := 0
	for _, s := range strs {
		total += 2 + digits(len(s)) + len(s)
	}
	return total
}

// HasSentinel reports whether s contains the sentinel byte. Such a string
// is still encoded verbatim, but the resulting stream is ambiguous.
func HasSentinel(s string) bool {
	return strings.IndexByte(s, Sentinel) >= 0
}

// digits returns the number of decimal digits needed to write n.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
