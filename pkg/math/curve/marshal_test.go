package curve

import (
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marshalTester struct {
	P *CompressedPoint
	Q *CompressedPoint
}

func TestCompressedPoint_CBOR(t *testing.T) {
	s := marshalTester{
		P: &CompressedPoint{X: nat(2), Odd: true},
		Q: &CompressedPoint{X: nat(0xDEADBEEF)},
	}
	data, err := cbor.Marshal(s)
	require.NoError(t, err)
	var s2 marshalTester
	err = cbor.Unmarshal(data, &s2)
	require.NoError(t, err)
	assert.True(t, s.P.Equal(s2.P))
	assert.True(t, s.Q.Equal(s2.Q))
}

func TestCompressedPoint_Binary(t *testing.T) {
	cp := &CompressedPoint{X: nat(2), Odd: true}
	data, err := cp.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x02}, data)

	var cp2 CompressedPoint
	require.NoError(t, cp2.UnmarshalBinary(data))
	assert.True(t, cp.Equal(&cp2))

	assert.Error(t, cp2.UnmarshalBinary(nil))
	assert.Error(t, cp2.UnmarshalBinary([]byte{0x02}))
	assert.Error(t, cp2.UnmarshalBinary([]byte{0x03}))
	assert.Error(t, cp2.UnmarshalBinary([]byte{0x04, 0x02}))
	_, err = (&CompressedPoint{}).MarshalBinary()
	assert.Error(t, err)
}

func TestCompressedPoint_BinaryZero(t *testing.T) {
	cp := &CompressedPoint{X: nat(0)}
	data, err := cp.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00}, data)

	var cp2 CompressedPoint
	require.NoError(t, cp2.UnmarshalBinary(data))
	assert.True(t, cp.Equal(&cp2))
}

func TestCurve_MarshalPoint(t *testing.T) {
	c := Secp256k1()
	for i := uint64(1); i < 16; i++ {
		v, ok := c.Decompress(nat(i), i%2 == 0)
		if !ok {
			continue
		}
		data, err := c.MarshalPoint(v)
		require.NoError(t, err)
		assert.Len(t, data, 33)
		w, err := c.UnmarshalPoint(data)
		require.NoError(t, err)
		assert.True(t, v.Equal(w))
	}
}

func TestCurve_MarshalPointToy(t *testing.T) {
	c := toyCurve()
	data, err := c.MarshalPoint(NewPoint(nat(2), nat(5)))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x02}, data)

	_, err = c.MarshalPoint(NewIdentityPoint())
	assert.True(t, errors.Is(err, ErrIdentity))
	_, err = c.MarshalPoint(nil)
	assert.Error(t, err)
}

func TestCurve_UnmarshalPointInvalid(t *testing.T) {
	c := toyCurve()

	_, err := c.UnmarshalPoint([]byte{0x02})
	assert.Error(t, err, "short data")
	_, err = c.UnmarshalPoint([]byte{0x02, 0x02, 0x00})
	assert.Error(t, err, "long data")
	_, err = c.UnmarshalPoint([]byte{0x04, 0x02})
	assert.Error(t, err, "bad format")
	_, err = c.UnmarshalPoint([]byte{0x02, 0x07})
	assert.Error(t, err, "x = p")
	_, err = c.UnmarshalPoint([]byte{0x02, 0x03})
	assert.True(t, errors.Is(err, ErrNotOnCurve))

	v, err := c.UnmarshalPoint([]byte{0x02, 0x02})
	require.NoError(t, err)
	assert.True(t, v.Equal(NewPoint(nat(2), nat(2))))
}
