//go:build tmpoly_noassert

// +build tmpoly_noassert

package tmpoly

// assertf is a no-op in release builds; see assert.go.
func assertf(cond bool, format string, args ...interface{}) {}
