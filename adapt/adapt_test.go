package adapt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mizrak/go.tmpoly"
)

func unitSquare() []tmpoly.Vector {
	return []tmpoly.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestGeomRoundTrip(t *testing.T) {
	verts := unitSquare()
	poly := ToGeomPolygon(verts)
	require.Len(t, poly, 1)

	rings := FromGeomPolygon(poly)
	require.Len(t, rings, 1)
	if diff := cmp.Diff(verts, rings[0]); diff != "" {
		t.Errorf("geom round trip changed vertices:\n%s", diff)
	}
}

func TestOrbRoundTrip(t *testing.T) {
	verts := unitSquare()
	ring := ToOrbRing(verts)
	require.Len(t, ring, len(verts)+1, "ToOrbRing should append a closing point")
	require.Equal(t, ring[0], ring[len(ring)-1])

	got := FromOrbRing(ring)
	if diff := cmp.Diff(verts, got); diff != "" {
		t.Errorf("orb round trip changed vertices:\n%s", diff)
	}
}

func TestOrbPolygonRoundTrip(t *testing.T) {
	verts := unitSquare()
	poly := ToOrbPolygon(verts)
	rings := FromOrbPolygon(poly)
	require.Len(t, rings, 1)
	if diff := cmp.Diff(verts, rings[0]); diff != "" {
		t.Errorf("orb polygon round trip changed vertices:\n%s", diff)
	}
}

func TestCrossCheckTriangulationSquare(t *testing.T) {
	result := CrossCheckTriangulation(unitSquare())
	require.Equal(t, 2, result.TmpolyTriangles)
	require.True(t, result.AreaMatches(1e-6), "tmpoly area %v vs poly2tri area %v", result.TmpolyArea, result.Poly2triArea)
}
