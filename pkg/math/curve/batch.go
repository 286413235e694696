package curve

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DecompressAll decompresses every element of points concurrently.
//
// The output is in the same order as the input.
// If any element cannot be decompressed, an error naming its index is returned.
func (c *Curve) DecompressAll(points []*CompressedPoint) ([]*Point, error) {
	out := make([]*Point, len(points))

	var errGroup errgroup.Group
	errGroup.SetLimit(runtime.NumCPU())
	for i := range points {
		idx := i
		cp := points[idx]
		errGroup.Go(func() error {
			if cp == nil || cp.X == nil {
				return fmt.Errorf("curve.DecompressAll: point %d is nil", idx)
			}
			v, ok := c.DecompressPoint(cp)
			if !ok {
				return fmt.Errorf("curve.DecompressAll: point %d: %w", idx, ErrNotOnCurve)
			}
			out[idx] = v
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
