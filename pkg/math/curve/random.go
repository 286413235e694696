package curve

import (
	"io"

	"github.com/taurusgroup/weierstrass/pkg/math/sample"
)

// RandomPoint returns a random affine point, sampling x uniformly in 𝔽ₚ until it lies on the curve.
//
// It panics with sample.ErrMaxIterations if no point is found, which only happens
// if rand fails or the curve has almost no affine points.
func (c *Curve) RandomPoint(rand io.Reader) *Point {
	for i := 0; i < maxIterations; i++ {
		x := sample.ModN(rand, c.p.Modulus)
		if v, ok := c.Decompress(x, sample.Bit(rand)); ok {
			return v
		}
	}
	panic(sample.ErrMaxIterations)
}
