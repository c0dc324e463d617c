package types

// floatCmpEpsilon is the tolerance used when comparing lengths against zero
// (e.g. deciding whether a vector is degenerate before normalizing it).
const floatCmpEpsilon = 1e-6
