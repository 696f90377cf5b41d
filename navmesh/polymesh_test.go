package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateContourSquare(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tris, ok := triangulateContour(square)
	require.True(t, ok)
	assert.Len(t, tris, 2, "a quad ear-clips into exactly two triangles")
}

func TestTriangulateContourTriangle(t *testing.T) {
	tri := []Point{{0, 0}, {10, 0}, {5, 10}}
	tris, ok := triangulateContour(tri)
	require.True(t, ok)
	require.Len(t, tris, 1)
	assert.Equal(t, [3]int32{0, 1, 2}, tris[0])
}

func TestTriangulateContourTooFewVerts(t *testing.T) {
	_, ok := triangulateContour([]Point{{0, 0}, {10, 0}})
	assert.False(t, ok)
}

func TestMergeTrianglesRebuildsConvexQuad(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tris, ok := triangulateContour(square)
	require.True(t, ok)

	polys := mergeTriangles(tris, square, 16)
	require.Len(t, polys, 1, "two triangles sharing a diagonal remerge into a single quad")
	assert.Len(t, polys[0].idx, 4)
}

func TestMergeTrianglesRespectsVertexCap(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tris, ok := triangulateContour(square)
	require.True(t, ok)

	polys := mergeTriangles(tris, square, 3)
	assert.Len(t, polys, 2, "a vertex cap of 3 keeps the two triangles unmerged")
}

func TestDecomposeContourSquare(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	cpts := []ContourPoint{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}}
	polys := b.decomposeContour(cpts)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0], 4)
}
