package mesh

// IndexRange is a half-open range of absolute node indices into a Mesh's
// Nodes slice, [Begin, End).
type IndexRange struct {
	Begin, End int
}
