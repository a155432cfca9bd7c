package nulstr_test

import (
	"errors"
	"fmt"

	"github.com/epithet-ssh/nulstr/pkg/nulstr"
)

func ExampleEncode() {
	s := nulstr.Encode([]string{"hi", "there"})
	fmt.Printf("%q\n", s)
	// Output: "\x002\x00hi\x005\x00there"
}

func ExampleDecode() {
	strs, err := nulstr.Decode("\x002\x00hi\x005\x00there")
	if err != nil {
		panic(err)
	}
	for _, s := range strs {
		fmt.Println(s)
	}
	// Output:
	// hi
	// there
}

func ExampleDecode_error() {
	_, err := nulstr.Decode("\x003\x00ab")
	fmt.Println(errors.Is(err, nulstr.ErrTruncated))
	fmt.Println(err)
	// Output:
	// true
	// nulstr: content truncated before declared length: record 0 at offset 5
}

func ExampleAppend() {
	buf := []byte("header:")
	buf = nulstr.Append(buf, "a", "")
	fmt.Printf("%q\n", buf)
	// Output: "header:\x001\x00a\x000\x00"
}
