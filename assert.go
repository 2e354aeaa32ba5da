//go:build !tmpoly_noassert

// +build !tmpoly_noassert

package tmpoly

import "fmt"

// assertf panics with a formatted message when cond is false. It guards
// caller preconditions such as buffer capacity, mirroring the original
// implementation's TMPO_ASSERT. Build with -tags tmpoly_noassert to compile
// these checks out of a release build entirely.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
