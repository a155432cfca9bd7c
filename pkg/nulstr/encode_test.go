package nulstr

import (
	"strings"
	"testing"
)

func TestEncode_Empty(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	if got := Encode([]string{}); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestEncode_EmptyItem(t *testing.T) {
	got := Encode([]string{""})
	if got != "\x000\x00" {
		t.Errorf("got %q, want %q", got, "\x000\x00")
	}
	if len(got) != 3 {
		t.Errorf("expected 3 bytes, got %d", len(got))
	}
}

func TestEncode_Simple(t *testing.T) {
	got := Encode([]string{"hi", "there"})
	want := "\x00" + "2" + "\x00" + "hi" + "\x00" + "5" + "\x00" + "there"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncode_ByteLength(t *testing.T) {
	// length is in bytes, not runes
	got := Encode([]string{"世界"})
	if got != "\x006\x00世界" {
		t.Errorf("got %q", got)
	}
}

func TestEncode_MultiDigitLength(t *testing.T) {
	s := strings.Repeat("x", 1234)
	got := Encode([]string{s})
	if !strings.HasPrefix(got, "\x001234\x00x") {
		t.Errorf("unexpected prefix %q", got[:8])
	}
	if len(got) != 1234+6 {
		t.Errorf("got %d bytes, want %d", len(got), 1234+6)
	}
}

func TestAppend(t *testing.T) {
	dst := []byte("prefix")
	got := Append(dst, "a", "")
	if string(got) != "prefix\x001\x00a\x000\x00" {
		t.Errorf("got %q", got)
	}
	if string(dst) != "prefix" {
		t.Errorf("Append modified the original buffer contents: %q", dst)
	}
}

func TestAppend_ReservesOnce(t *testing.T) {
	strs := []string{"alpha", "beta", "gamma"}
	got := Append(nil, strs...)
	if cap(got) != EncodedLen(strs) {
		t.Errorf("cap %d, want %d", cap(got), EncodedLen(strs))
	}
}

func TestEncodedLen(t *testing.T) {
	tests := [][]string{
		nil,
		{""},
		{"a"},
		{"hi", "there"},
		{strings.Repeat("y", 9), strings.Repeat("y", 10), strings.Repeat("y", 99), strings.Repeat("y", 100)},
	}
	for _, strs := range tests {
		if got, want := EncodedLen(strs), len(Encode(strs)); got != want {
			t.Errorf("EncodedLen(%d strings) = %d, want %d", len(strs), got, want)
		}
	}
}

func TestHasSentinel(t *testing.T) {
	if HasSentinel("plain") {
		t.Error("plain text reported as containing the sentinel")
	}
	if !HasSentinel("a\x00b") {
		t.Error("embedded NUL not detected")
	}
	if HasSentinel("") {
		t.Error("empty string reported as containing the sentinel")
	}
}
