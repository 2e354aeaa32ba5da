//go:build tmpoly_vec64

// +build tmpoly_vec64

package tmpoly

// Scalar is the floating-point type used for vector components. This build
// selects float64 for callers that need extra precision at the cost of
// doubling the size of every Vector.
type Scalar = float64
