package visibility

import (
	"math"

	"github.com/achilleasa/visualmesh/mesh"
)

// IndexRanges converts an Oracle's per-row theta intervals into absolute
// node index ranges within m. A row whose theta interval wraps around 0
// is split into two ranges so every returned range is contiguous.
func IndexRanges(m *mesh.Mesh, o Oracle) ([]mesh.IndexRange, error) {
	var out []mesh.IndexRange

	for _, row := range m.Rows {
		rowSize := row.End - row.Begin
		if rowSize == 0 {
			continue
		}

		limits, err := o.ThetaLimits(row.Phi)
		if err != nil {
			return nil, err
		}

		for _, lim := range limits {
			begin := thetaToIndex(lim[0], rowSize)
			end := thetaToIndex(lim[1], rowSize)

			if begin > rowSize {
				begin = 0
			}
			if end > rowSize {
				end = rowSize
			}
			if begin == end {
				continue
			}
			if begin < end {
				out = append(out, mesh.IndexRange{Begin: row.Begin + begin, End: row.Begin + end})
			} else {
				out = append(out, mesh.IndexRange{Begin: row.Begin, End: row.Begin + end})
				out = append(out, mesh.IndexRange{Begin: row.Begin + begin, End: row.End})
			}
		}
	}

	return out, nil
}

// thetaToIndex converts an azimuthal angle into a row-local node index,
// rounding up as the original lookup table does (a ray exactly on a node's
// theta value is considered the start of visibility, not the end).
func thetaToIndex(theta Scalar, rowSize int) int {
	return int(math.Ceil(float64(rowSize) * theta / (2 * math.Pi)))
}
