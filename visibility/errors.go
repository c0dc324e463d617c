package visibility

import "github.com/achilleasa/visualmesh/vmerrors"

var errUnknownLens = vmerrors.New(vmerrors.InvalidInput, "visibility.NewOracle", "unknown lens kind")

// errOddIntersectionCount reports a ring whose edge/cone solve produced an
// odd number of accepted intersections — a case that should be impossible
// by construction, so it's a numerical failure rather than a silently
// malformed interval.
func errOddIntersectionCount() error {
	return vmerrors.New(vmerrors.NumericalFailure, "visibility.ThetaLimits", "odd number of edge intersections with cone")
}
