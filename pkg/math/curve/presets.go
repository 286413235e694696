package curve

import (
	"crypto/elliptic"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func natFromBig(x *big.Int) *saferith.Nat {
	return new(saferith.Nat).SetBig(x, x.BitLen())
}

// Secp256k1 returns the curve y² = x³ + 7 over the secp256k1 base field.
//
// Its prime satisfies p ≡ 3 (mod 4).
func Secp256k1() *Curve {
	params := secp256k1.S256().Params()
	return NewCurve(
		new(saferith.Nat).SetUint64(0),
		new(saferith.Nat).SetUint64(7),
		saferith.ModulusFromNat(natFromBig(params.P)),
	)
}

// P224 returns the NIST P-224 curve, y² = x³ - 3x + b.
//
// Its prime satisfies p - 1 = q⋅2⁹⁶, so decompression goes through the full
// Tonelli-Shanks loop.
func P224() *Curve {
	params := elliptic.P224().Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	return NewCurve(natFromBig(a), natFromBig(params.B), saferith.ModulusFromNat(natFromBig(params.P)))
}
