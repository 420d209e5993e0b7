package goldensection

import (
	"math"
	"testing"
)

func TestNewBracketGoldenRatioPoints(t *testing.T) {
	b := newBracket(0, 1)

	if b.left != 0 || b.right != 1 {
		t.Fatalf("bounds: got [%v, %v], want [0, 1]", b.left, b.right)
	}
	if math.Abs(b.innerLeft-(1-invPhi)) > 1e-12 {
		t.Errorf("innerLeft: got %v, want %v", b.innerLeft, 1-invPhi)
	}
	if math.Abs(b.innerRight-invPhi) > 1e-12 {
		t.Errorf("innerRight: got %v, want %v", b.innerRight, invPhi)
	}

	// The interior points divide the interval in the golden ratio.
	ratio := b.innerLeft / (1 - b.innerLeft)
	if math.Abs(ratio-invPhi) > 1e-12 {
		t.Errorf("interval ratio: got %v, want %v", ratio, invPhi)
	}
}

func TestShrinkRightReusesInnerPoint(t *testing.T) {
	b := newBracket(0, 1)
	oldInnerLeft := b.innerLeft
	predicted := b.newInnerLeft()

	b.shrinkRight()

	if b.left != 0 {
		t.Errorf("left moved: got %v", b.left)
	}
	if math.Abs(b.right-invPhi) > 1e-12 {
		t.Errorf("right: got %v, want %v", b.right, invPhi)
	}
	// Old innerLeft becomes the new innerRight.
	if math.Abs(b.innerRight-oldInnerLeft) > 1e-12 {
		t.Errorf("innerRight: got %v, want reused %v", b.innerRight, oldInnerLeft)
	}
	// The pure query predicted the committed innerLeft.
	if math.Abs(b.innerLeft-predicted) > 1e-12 {
		t.Errorf("innerLeft: got %v, query predicted %v", b.innerLeft, predicted)
	}
	if math.Abs(b.innerLeft-(b.left+(1-invPhi)*b.width())) > 1e-12 {
		t.Errorf("innerLeft no longer at golden offset: %v", b.innerLeft)
	}
}

func TestShrinkLeftReusesInnerPoint(t *testing.T) {
	b := newBracket(0, 1)
	oldInnerRight := b.innerRight
	predicted := b.newInnerRight()

	b.shrinkLeft()

	if math.Abs(b.left-(1-invPhi)) > 1e-12 {
		t.Errorf("left: got %v, want %v", b.left, 1-invPhi)
	}
	if b.right != 1 {
		t.Errorf("right moved: got %v", b.right)
	}
	if math.Abs(b.innerLeft-oldInnerRight) > 1e-12 {
		t.Errorf("innerLeft: got %v, want reused %v", b.innerLeft, oldInnerRight)
	}
	if math.Abs(b.innerRight-predicted) > 1e-12 {
		t.Errorf("innerRight: got %v, query predicted %v", b.innerRight, predicted)
	}
	if math.Abs(b.innerRight-(b.left+invPhi*b.width())) > 1e-12 {
		t.Errorf("innerRight no longer at golden offset: %v", b.innerRight)
	}
}

func TestQueriesDoNotMutate(t *testing.T) {
	b := newBracket(-3, 7)
	before := b

	_ = b.newInnerLeft()
	_ = b.newInnerRight()
	_ = b.width()

	if b != before {
		t.Fatalf("pure query mutated bracket: %+v -> %+v", before, b)
	}
}

func TestWidthShrinksByGoldenFactor(t *testing.T) {
	b := newBracket(0, 1)

	for i := 0; i < 20; i++ {
		before := b.width()
		if i%2 == 0 {
			b.shrinkLeft()
		} else {
			b.shrinkRight()
		}
		ratio := b.width() / before
		if math.Abs(ratio-invPhi) > 1e-9 {
			t.Fatalf("step %d: width ratio %v, want %v", i, ratio, invPhi)
		}
	}
}
