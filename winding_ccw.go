//go:build tmpoly_ccw

// +build tmpoly_ccw

package tmpoly

// emissionClockwise is the compile-time winding order Triangulate emits
// triangles in. This build emits counter-clockwise triangles.
const emissionClockwise = false
