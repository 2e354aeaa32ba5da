package tmpolyio

import (
	"bytes"
	"testing"

	"github.com/mizrak/go.tmpoly"
)

func TestPolygonRoundTrip(t *testing.T) {
	want := []tmpoly.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	var buf bytes.Buffer
	if err := EncodePolygon(&buf, want); err != nil {
		t.Fatalf("EncodePolygon: %v", err)
	}

	got, err := DecodePolygon(&buf)
	if err != nil {
		t.Fatalf("DecodePolygon: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodePolygonInvalidJSON(t *testing.T) {
	_, err := DecodePolygon(bytes.NewBufferString("not json"))
	if err == nil {
		t.Error("DecodePolygon of invalid JSON should return an error")
	}
}

func TestTriangulationBuffers(t *testing.T) {
	scratch, out := TriangulationBuffers(4)
	if len(scratch) != 4 {
		t.Errorf("scratch length = %d, want 4", len(scratch))
	}
	if len(out) != 6 {
		t.Errorf("out length = %d, want 6 (3*(4-2))", len(out))
	}

	scratch, out = TriangulationBuffers(2)
	if len(scratch) != 2 || len(out) != 0 {
		t.Errorf("TriangulationBuffers(2) = (%d, %d), want (2, 0)", len(scratch), len(out))
	}
}

func TestClipBuffers(t *testing.T) {
	aSlab, bSlab := ClipBuffers(4, 6)
	if len(aSlab) != 4+2*4 {
		t.Errorf("len(aSlab) = %d, want %d", len(aSlab), 4+2*4)
	}
	if len(bSlab) != 6+2*4 {
		t.Errorf("len(bSlab) = %d, want %d", len(bSlab), 6+2*4)
	}
}
