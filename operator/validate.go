package operator

import (
	"github.com/achilleasa/visualmesh/visibility"
	"github.com/achilleasa/visualmesh/vmerrors"
)

func (r *Request) validate() error {
	const op = "operator.Run"

	if r.ImageWidth <= 0 || r.ImageHeight <= 0 {
		return vmerrors.New(vmerrors.InvalidInput, op, "image dimensions must be positive, got %dx%d", r.ImageWidth, r.ImageHeight)
	}
	switch r.LensKind {
	case visibility.Equirectangular, visibility.Radial:
	default:
		return vmerrors.New(vmerrors.InvalidInput, op, "unknown lens kind %v", r.LensKind)
	}
	if r.LensKind == visibility.Radial {
		switch r.RadialProjection {
		case visibility.Equidistant, visibility.Equisolid, visibility.Rectilinear:
		default:
			return vmerrors.New(vmerrors.InvalidInput, op, "unknown radial projection %v", r.RadialProjection)
		}
	}
	if r.Geometry != "SPHERE" && r.Geometry != "CIRCLE" {
		return vmerrors.New(vmerrors.InvalidInput, op, "geometry must be SPHERE or CIRCLE, got %q", r.Geometry)
	}
	if r.Radius <= 0 {
		return vmerrors.New(vmerrors.InvalidInput, op, "radius must be positive, got %v", r.Radius)
	}
	if r.Height <= 0 {
		return vmerrors.New(vmerrors.InvalidInput, op, "height must be positive, got %v", r.Height)
	}
	if r.N <= 0 {
		return vmerrors.New(vmerrors.InvalidInput, op, "n must be positive, got %v", r.N)
	}
	if r.CacheCapacity <= 0 {
		return vmerrors.New(vmerrors.InvalidInput, op, "cache capacity must be positive, got %d", r.CacheCapacity)
	}
	if r.Tolerance < 0 {
		return vmerrors.New(vmerrors.InvalidInput, op, "tolerance must be non-negative, got %v", r.Tolerance)
	}
	if r.MaxDistance <= 0 {
		return vmerrors.New(vmerrors.InvalidInput, op, "max distance must be positive, got %v", r.MaxDistance)
	}
	if !isOrthonormal(r.Roc) {
		return vmerrors.New(vmerrors.InvalidInput, op, "Roc is not a valid rotation matrix")
	}
	return nil
}

func isOrthonormal(m [3][3]float64) bool {
	const eps = 1e-3
	for i := 0; i < 3; i++ {
		n2 := m[i][0]*m[i][0] + m[i][1]*m[i][1] + m[i][2]*m[i][2]
		if abs(n2-1) > eps {
			return false
		}
		j := (i + 1) % 3
		if abs(m[i][0]*m[j][0]+m[i][1]*m[j][1]+m[i][2]*m[j][2]) > eps {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
