package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceFieldGrowsAwayFromBorder(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	maxDist := b.buildDistanceField()
	assert.Greater(t, maxDist, int32(0), "an open area has cells strictly farther than the border")

	center := b.grid.get(b.grid.dimX/2, b.grid.dimY/2)
	edge := b.grid.get(1, b.grid.dimY/2)
	assert.Greater(t, center.DistanceToObstacle, edge.DistanceToObstacle, "the center is farther from the border obstacle than a cell next to it")
}

func TestDistanceFieldZeroAtObstacle(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	square := NewSlicePointSeq([]Vec2{{30, 30}, {60, 30}, {60, 60}, {30, 60}})
	b.rasterizeObstacle(square)
	b.buildDistanceField()

	assert.Equal(t, int32(0), b.grid.get(5, 5).DistanceToObstacle, "an obstacle cell has zero distance to itself")
}
