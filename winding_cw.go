//go:build !tmpoly_ccw

// +build !tmpoly_ccw

package tmpoly

// emissionClockwise is the compile-time winding order Triangulate emits
// triangles in. This build emits clockwise triangles (the original
// implementation's default, TMPO_CLOCKWISE_TRIANGLES). Build with
// -tags tmpoly_ccw to emit counter-clockwise triangles instead.
const emissionClockwise = true
