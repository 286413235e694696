package curve

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/weierstrass/internal/hash"
)

const maxIterations = 255

// ErrMaxIterations is returned by HashToPoint when none of the counter values
// 0, …, maxIterations yields an x coordinate on the curve.
var ErrMaxIterations = fmt.Errorf("curve: failed to find a point after %d attempts", maxIterations+1)

// HashToPoint deterministically maps data to an affine point, using try-and-increment.
//
// The hash state absorbs the curve, the domain and the data. For each counter value,
// the digest of that state and the counter yields a candidate x (with 128 extra bits,
// reduced mod p) and a parity bit. The first candidate that decompresses is returned.
//
// This is not constant time, and should not be used on secret data.
func (c *Curve) HashToPoint(domain string, data []byte) (*Point, error) {
	h := hash.New()
	if err := h.WriteAny(c, hash.BytesWithDomain{TheDomain: domain, Bytes: data}); err != nil {
		return nil, fmt.Errorf("curve.HashToPoint: %w", err)
	}

	buf := make([]byte, 1+c.byteLen()+16)
	x := new(saferith.Nat)
	for ctr := 0; ctr <= maxIterations; ctr++ {
		hCtr := h.Clone()
		if err := hCtr.WriteAny([]byte{byte(ctr)}); err != nil {
			return nil, fmt.Errorf("curve.HashToPoint: %w", err)
		}
		if _, err := io.ReadFull(hCtr.Digest(), buf); err != nil {
			return nil, fmt.Errorf("curve.HashToPoint: internal hash failure: %w", err)
		}
		x.SetBytes(buf[1:])
		x.Mod(x, c.p.Modulus)
		if v, ok := c.Decompress(x, buf[0]&1 == 1); ok {
			return v, nil
		}
	}
	return nil, ErrMaxIterations
}
