package goldensection

// phi is the golden ratio (1 + √5) / 2.
const phi = 1.618033988749895

// invPhi is the inverse golden ratio 1/φ, which equals φ − 1.
const invPhi = phi - 1

// bracket maintains the outer interval [left, right] and two interior
// points positioned by the golden ratio:
//
//	innerLeft  = left + (1 − φ⁻¹) · width
//	innerRight = left + φ⁻¹ · width
//
// The four bounds stay strictly ordered and the sub-interval ratio stays
// golden after every shrink, which is what lets one interior point be
// reused on the next iteration.
type bracket struct {
	left       float64
	right      float64
	innerLeft  float64
	innerRight float64
}

// newBracket positions the interior points for validated outer bounds.
func newBracket(left, right float64) bracket {
	width := right - left
	return bracket{
		left:       left,
		right:      right,
		innerLeft:  left + (1-invPhi)*width,
		innerRight: left + invPhi*width,
	}
}

// width returns the width of the outer bounds.
func (b *bracket) width() float64 {
	return b.right - b.left
}

// newInnerLeft returns the x the new inner-left point would occupy after
// shrinkRight, without mutating the bracket. The pure query lets the
// driver evaluate the candidate before committing any state change.
func (b *bracket) newInnerLeft() float64 {
	newWidth := b.innerRight - b.left
	return b.left + (1-invPhi)*newWidth
}

// newInnerRight returns the x the new inner-right point would occupy
// after shrinkLeft, without mutating the bracket.
func (b *bracket) newInnerRight() float64 {
	newLeft := b.innerLeft
	newWidth := b.right - newLeft
	return newLeft + invPhi*newWidth
}

// shrinkRight commits the bounds to [left, innerRight]. The old
// innerLeft becomes the new innerRight.
func (b *bracket) shrinkRight() {
	b.right = b.innerRight
	b.innerRight = b.innerLeft
	b.innerLeft = b.left + (1-invPhi)*b.width()
}

// shrinkLeft commits the bounds to [innerLeft, right]. The old
// innerRight becomes the new innerLeft.
func (b *bracket) shrinkLeft() {
	b.left = b.innerLeft
	b.innerLeft = b.innerRight
	b.innerRight = b.left + invPhi*b.width()
}
