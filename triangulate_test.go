package tmpoly

import "testing"

func TestTriangulateTriangle(t *testing.T) {
	verts := []Vector{{0, 0}, {1, 0}, {0, 1}}
	scratch := make([]Index, len(verts))
	out := make([]Index, 3)

	n := Triangulate(verts, Clockwise(verts), scratch, 0, out)
	if n != 3 {
		t.Fatalf("Triangulate(triangle) wrote %d indices, want 3", n)
	}
	want := []Index{0, 1, 2}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %d, want %d (out=%v)", i, out[i], w, out)
		}
	}
}

func TestTriangulateSquare(t *testing.T) {
	verts := []Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	scratch := make([]Index, len(verts))
	out := make([]Index, 6)

	n := Triangulate(verts, Clockwise(verts), scratch, 0, out)
	if n != 6 {
		t.Fatalf("Triangulate(square) wrote %d indices, want 6", n)
	}
	want := []Index{0, 1, 2, 2, 3, 0}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %d, want %d (out=%v)", i, out[i], w, out)
		}
	}

	area := triangleArea(verts[out[0]], verts[out[1]], verts[out[2]]) +
		triangleArea(verts[out[3]], verts[out[4]], verts[out[5]])
	if diff := area - 1; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("triangulated square area = %v, want 1", area)
	}
}

func TestTriangulateBeginOffset(t *testing.T) {
	verts := []Vector{{0, 0}, {1, 0}, {0, 1}}
	scratch := make([]Index, len(verts))
	out := make([]Index, 3)

	n := Triangulate(verts, Clockwise(verts), scratch, 10, out)
	if n != 3 {
		t.Fatalf("Triangulate wrote %d indices, want 3", n)
	}
	for _, idx := range out {
		if idx < 10 {
			t.Errorf("index %d not offset by begin=10 (out=%v)", idx, out)
		}
	}
}

func TestTriangulateDegenerateInput(t *testing.T) {
	for n := 0; n < 3; n++ {
		verts := make([]Vector, n)
		scratch := make([]Index, n)
		out := make([]Index, 3)
		if written := Triangulate(verts, true, scratch, 0, out); written != 0 {
			t.Errorf("Triangulate with %d vertices wrote %d indices, want 0", n, written)
		}
	}
}

func TestTriangulateOutputTruncation(t *testing.T) {
	verts := []Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	scratch := make([]Index, len(verts))
	out := make([]Index, 3) // room for exactly one triangle

	n := Triangulate(verts, Clockwise(verts), scratch, 0, out)
	if n != 3 {
		t.Fatalf("Triangulate with truncated out wrote %d indices, want 3", n)
	}
}

func TestTriangulateScratchTruncation(t *testing.T) {
	verts := []Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	scratch := make([]Index, 2) // too small to hold a triangle-capable ring
	out := make([]Index, 6)

	n := Triangulate(verts, Clockwise(verts), scratch, 0, out)
	if n != 0 {
		t.Errorf("Triangulate with 2-slot scratch wrote %d indices, want 0", n)
	}
}

func triangleArea(a, b, c Vector) float64 {
	cross := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
	if cross < 0 {
		cross = -cross
	}
	return cross / 2
}
