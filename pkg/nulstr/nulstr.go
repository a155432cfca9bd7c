package nulstr

import "math"

// Sentinel is the byte that opens a record and separates its length marker
// from its content.
const Sentinel byte = 0

const defaultMaxLength = math.MaxInt

// Decoder parses encoded streams.
//
// A Decoder only holds configuration, so one value may be shared by
// concurrent callers. Every call to Decode owns its own parsing state.
type Decoder struct {
	maxLength int
}

// NewDecoder creates a decoder configured with opts.
//
// Example:
//
//	dec := nulstr.NewDecoder(nulstr.MaxLength(64 * 1024))
func NewDecoder(opts ...Option) *Decoder {
	cfg := &config{
		maxLength: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Decoder{
		maxLength: cfg.maxLength,
	}
}

// Decode parses s with a decoder configured by opts.
func Decode(s string, opts ...Option) ([]string, error) {
	return NewDecoder(opts...).Decode(s)
}
