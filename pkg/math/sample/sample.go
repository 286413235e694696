package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ by rejection.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	// compare against a copy, n may be shared with other goroutines
	nNat := n.Nat()
	buf := make([]byte, (n.BitLen()+7)/8)
	// only keep the bits of n, so that a candidate is accepted with probability > 1/2
	mask := byte(0xff >> (8*len(buf) - n.BitLen()))
	for i := 0; i < maxIterations; i++ {
		mustReadBits(rand, buf)
		buf[0] &= mask
		out.SetBytes(buf)
		if _, _, lt := out.Cmp(nNat); lt == 1 {
			return out
		}
	}
	panic(ErrMaxIterations)
}

// Bit returns a uniformly random bit, as a bool.
func Bit(rand io.Reader) bool {
	buf := make([]byte, 1)
	mustReadBits(rand, buf)
	return buf[0]&1 == 1
}
