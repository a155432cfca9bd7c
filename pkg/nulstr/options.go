package nulstr

// config holds decoder configuration.
type config struct {
	maxLength int
}

// Option configures a Decoder.
type Option func(*config)

// MaxLength sets the largest record length, in bytes, the decoder accepts.
// A length marker declaring more than n fails with ErrLengthMarkerCorrupt
// as soon as the offending digit is read.
//
// Values below zero are treated as zero.
//
// Default: no limit beyond the range of int.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = max(n, 0)
	}
}
