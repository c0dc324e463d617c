package mesh

import "math"

// Neighbour slot offsets within Node.Neighbours.
const (
	nbTL = 0
	nbTR = 1
	nbL  = 2
	nbR  = 3
	nbBL = 4
	nbBR = 5
)

// linkRows fills in every node's six neighbours: L/R within its own row
// (set first, by linkLR, since linkAcross reads them) and TL/TR/BL/BR
// across the rows immediately above and below.
func linkRows(m *Mesh) {
	linkLR(m)

	for r := 1; r < len(m.Rows)-1; r++ {
		prev, cur, next := m.Rows[r-1], m.Rows[r], m.Rows[r+1]
		linkAcross(m, cur, prev, nbTL)
		linkAcross(m, cur, next, nbBL)
	}

	if len(m.Rows) == 0 {
		return
	}

	linkPole(m, m.Rows[0], true)
	if len(m.Rows) > 1 {
		linkAcross(m, m.Rows[0], m.Rows[1], nbBL)
	}

	last := m.Rows[len(m.Rows)-1]
	if len(m.Rows) > 1 {
		linkPole(m, last, false)
		linkAcross(m, last, m.Rows[len(m.Rows)-2], nbTL)
	}
}

// linkLR sets each node's left/right neighbours, which wrap within the
// node's own row. Neighbours are stored as offsets relative to the node's
// own index, not absolute indices.
func linkLR(m *Mesh) {
	for _, row := range m.Rows {
		size := row.End - row.Begin
		for i := row.Begin; i < row.End; i++ {
			pos := i - row.Begin
			l := row.Begin + (pos-1+size)%size
			r := row.Begin + (pos+1)%size
			m.Nodes[i].Neighbours[nbL] = l - i
			m.Nodes[i].Neighbours[nbR] = r - i
		}
	}
}

// linkAcross links every node of row to its two closest neighbours in
// other, writing them into the pair of slots starting at offset (TL/TR or
// BL/BR). It uses the anchor-plus-offset trick from the original
// algorithm: find the closer of the two candidate anchors in other by
// flooring a row-relative position plus a 0/1 bias depending on whether
// that position is past the ring's midpoint, then derive the second
// candidate from the first anchor's own already-computed L/R neighbour
// rather than wrapping the index arithmetically. This keeps every lookup
// inside other's bounds even when row and other have very different
// sizes. Neighbours are stored as offsets relative to the node's own
// index, so the anchor's already-linked L/R offset must be re-based to an
// absolute index before it can be used and before it is re-stored relative
// to i.
func linkAcross(m *Mesh, row, other Row, offset int) {
	otherSize := other.End - other.Begin
	if otherSize == 0 {
		return
	}
	rowSize := row.End - row.Begin
	if rowSize == 0 {
		return
	}

	for i := row.Begin; i < row.End; i++ {
		pos := float64(i-row.Begin) / float64(rowSize)
		left := pos > 0.5

		bump := 0.0
		if left {
			bump = 1
		}
		o1 := other.Begin + int(math.Floor(pos*float64(otherSize)+bump))
		if o1 >= other.End {
			o1 = other.Begin + (o1-other.Begin)%otherSize
		}

		var nbSide int
		if left {
			nbSide = nbL
		} else {
			nbSide = nbR
		}
		o2 := o1 + m.Nodes[o1].Neighbours[nbSide]

		if left {
			m.Nodes[i].Neighbours[offset] = o1 - i
			m.Nodes[i].Neighbours[offset+1] = o2 - i
		} else {
			m.Nodes[i].Neighbours[offset] = o2 - i
			m.Nodes[i].Neighbours[offset+1] = o1 - i
		}
	}
}

// linkPole self-links a polar ring (the first or last row, which has no
// row beyond it in that direction): each node's TL/TR (for the first row)
// or BL/BR (for the last row) point to the two nodes diametrically
// opposite it in the same ring, since all of them converge on the same
// pole. Neighbours are stored relative to the node's own index.
func linkPole(m *Mesh, row Row, isFront bool) {
	size := row.End - row.Begin
	if size == 0 {
		return
	}
	half := size / 2

	var slotA, slotB int
	if isFront {
		slotA, slotB = nbTL, nbTR
	} else {
		slotA, slotB = nbBL, nbBR
	}

	for i := row.Begin; i < row.End; i++ {
		pos := i - row.Begin
		opp := row.Begin + (pos+half)%size
		oppNext := row.Begin + (pos+half+1)%size
		m.Nodes[i].Neighbours[slotA] = opp - i
		m.Nodes[i].Neighbours[slotB] = oppNext - i
	}
}
