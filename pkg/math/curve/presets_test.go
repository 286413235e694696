package curve

import (
	"crypto/elliptic"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/weierstrass/pkg/math/sample"
)

func basePoint(t *testing.T, c *Curve, params *elliptic.CurveParams) {
	v := NewPoint(natFromBig(params.Gx), natFromBig(params.Gy))
	require.True(t, c.IsOnCurve(v))

	cp, ok := c.Compress(v)
	require.True(t, ok)
	assert.Equal(t, params.Gy.Bit(0) == 1, cp.Odd)

	w, ok := c.DecompressPoint(cp)
	require.True(t, ok)
	assert.True(t, v.Equal(w), "expected %v, got %v", v, w)

	negY := new(big.Int).Sub(params.P, params.Gy)
	w, ok = c.Decompress(cp.X, !cp.Odd)
	require.True(t, ok)
	assert.Equal(t, 0, negY.Cmp(w.Y().Big()))
}

func TestSecp256k1_BasePoint(t *testing.T) {
	basePoint(t, Secp256k1(), secp256k1.S256().Params())
}

func TestP224_BasePoint(t *testing.T) {
	basePoint(t, P224(), elliptic.P224().Params())
}

func TestSecp256k1_MatchesDecred(t *testing.T) {
	c := Secp256k1()
	r := mrand.New(mrand.NewSource(0))
	for i := 0; i < 64; i++ {
		x := sample.ModN(r, c.P())
		odd := sample.Bit(r)

		var xBytes [32]byte
		x.Big().FillBytes(xBytes[:])
		var fx, fy secp256k1.FieldVal
		require.False(t, fx.SetByteSlice(xBytes[:]))
		expectedOK := secp256k1.DecompressY(&fx, odd, &fy)

		v, ok := c.Decompress(x, odd)
		require.Equal(t, expectedOK, ok, "x = %v", x.Big())
		if !ok {
			continue
		}
		fy.Normalize()
		var yBytes [32]byte
		v.Y().Big().FillBytes(yBytes[:])
		assert.Equal(t, *fy.Bytes(), yBytes)
	}
}

func TestP224_MatchesElliptic(t *testing.T) {
	c := P224()
	params := elliptic.P224().Params()
	r := mrand.New(mrand.NewSource(1))
	for i := 0; i < 16; i++ {
		v := c.RandomPoint(r)
		assert.True(t, params.IsOnCurve(v.X().Big(), v.Y().Big()))
	}
}

func BenchmarkDecompress(b *testing.B) {
	for name, c := range map[string]*Curve{"secp256k1": Secp256k1(), "P-224": P224()} {
		v := c.RandomPoint(mrand.New(mrand.NewSource(0)))
		cp, _ := c.Compress(v)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.DecompressPoint(cp)
			}
		})
	}
}
