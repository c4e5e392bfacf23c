package rs1509

import (
	"fmt"
)

func Example() {
	cfg := DefaultConfig()

	data := []byte("hello, world")
	symbols, err := EncodeStream(data, cfg)
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}

	// Simulate a single damaged symbol in transit.
	symbols[2] = fieldAdd(symbols[2], 0x5)

	decoded, _, err := DecodeSequential(symbols)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	fmt.Println(string(decoded[:len(data)]))
	// Output:
	// hello, world
}
