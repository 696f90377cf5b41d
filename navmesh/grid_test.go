package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridRoundTrip(t *testing.T) {
	g := newGrid(0, 0, 800, 600, 10, 1)
	for _, w := range []Vec2{{0, 0}, {400, 300}, {799, 599}, {123.5, 456.25}} {
		got := g.ConvertFromGridBasis(g.ConvertToGridBasis(w))
		assert.InDelta(t, w.X, got.X, 1e-3, "round trip X")
		assert.InDelta(t, w.Y, got.Y, 1e-3, "round trip Y")
	}
}

func TestGridBorderIsPermanentObstacle(t *testing.T) {
	g := newGrid(0, 0, 100, 100, 10, 1)
	for x := int32(0); x < g.dimX; x++ {
		assert.Equal(t, int32(0), g.get(x, 0).DistanceToObstacle, "top border row is obstacle")
		assert.Equal(t, int32(0), g.get(x, g.dimY-1).DistanceToObstacle, "bottom border row is obstacle")
	}
	for y := int32(0); y < g.dimY; y++ {
		assert.Equal(t, int32(0), g.get(0, y).DistanceToObstacle, "left border column is obstacle")
		assert.Equal(t, int32(0), g.get(g.dimX-1, y).DistanceToObstacle, "right border column is obstacle")
	}

	// Clear must re-mark the border, since Build calls it on every
	// invocation to let a Builder be reused.
	g.get(5, 5).DistanceToObstacle = 0
	g.Clear()
	assert.NotEqual(t, int32(0), g.get(5, 5).DistanceToObstacle, "interior cells reset to unreached")
	assert.Equal(t, int32(0), g.get(0, 0).DistanceToObstacle, "border obstacle survives Clear")
}

func TestGridIsometricRatioIncreasesRowCount(t *testing.T) {
	g1 := newGrid(0, 0, 800, 600, 10, 1)
	g2 := newGrid(0, 0, 800, 600, 10, 2)
	assert.Greater(t, g2.dimY, g1.dimY, "a finer isometric ratio means more rows for the same world extent")
	assert.Equal(t, g1.dimX, g2.dimX, "isometric ratio only affects the vertical resolution")
}
