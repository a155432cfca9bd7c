// Package anagram groups lowercase words that are anagrams of each other.
package anagram

import (
	"errors"
	"fmt"
)

// MaxWordLength is the longest word, in bytes, Group accepts.
const MaxWordLength = 100

var (
	// ErrStringTooLong indicates a word longer than MaxWordLength.
	ErrStringTooLong = errors.New("anagram: input string too long")

	// ErrCharOutOfRange indicates a byte outside 'a'-'z'.
	ErrCharOutOfRange = errors.New("anagram: char out of range [a-z]")
)

// InputError identifies the word that failed validation.
type InputError struct {
	Index int   // Position of the word in the input
	Err   error // ErrStringTooLong or ErrCharOutOfRange
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: word %d", e.Err, e.Index)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// signature counts each letter of a word.
type signature [26]uint8

// Group partitions strs into groups of anagrams.
//
// Groups are ordered by the first appearance of one of their members, and
// members keep their input order. Duplicated words land in the same group.
func Group(strs []string) ([][]string, error) {
	index := make(map[signature]int, len(strs))
	groups := [][]string{}

	for i, s := range strs {
		sig, err := signatureOf(s)
		if err != nil {
			return nil, &InputError{Index: i, Err: err}
		}

		g, ok := index[sig]
		if !ok {
			g = len(groups)
			index[sig] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], s)
	}
	return groups, nil
}

func signatureOf(s string) (signature, error) {
	var sig signature
	if len(s) > MaxWordLength {
		return sig, ErrStringTooLong
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 'a' || b > 'z' {
			return sig, ErrCharOutOfRange
		}
		sig[b-'a']++
	}
	return sig, nil
}
