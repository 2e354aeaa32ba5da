package tmpoly

import "testing"

func TestClockwiseSquare(t *testing.T) {
	square := []Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if !Clockwise(square) {
		t.Errorf("square %v: want clockwise, got counter-clockwise", square)
	}
}

func TestClockwiseReversalFlips(t *testing.T) {
	square := []Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	reversed := make([]Vector, len(square))
	for i, v := range square {
		reversed[len(square)-1-i] = v
	}
	if Clockwise(square) == Clockwise(reversed) {
		t.Errorf("reversing vertex order should flip winding: square=%v reversed=%v",
			Clockwise(square), Clockwise(reversed))
	}
}

func TestClockwiseDegenerate(t *testing.T) {
	if !Clockwise(nil) {
		t.Error("empty loop should report clockwise by convention")
	}
	collinear := []Vector{{0, 0}, {1, 0}, {2, 0}}
	if !Clockwise(collinear) {
		t.Error("zero-area collinear loop should report clockwise by convention")
	}
}
