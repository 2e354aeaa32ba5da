//go:build tmpoly_index32

// +build tmpoly_index32

package tmpoly

// Index is the integer type used to address slots within a clip ring or
// triangulator scratch ring. This build selects uint32 for large meshes.
type Index = uint32

// IndexMax is the largest ring size representable by Index.
const IndexMax = 1<<32 - 1
