package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T, left, top, right, bottom, cellSize, isoRatio float32) *Builder {
	cfg := DefaultConfig()
	cfg.AreaLeftBound, cfg.AreaTopBound = left, top
	cfg.AreaRightBound, cfg.AreaBottomBound = right, bottom
	cfg.RasterizationCellSize = cellSize
	cfg.IsometricRatio = isoRatio
	b, err := NewBuilder(cfg)
	require.NoError(t, err)
	return b
}

func TestRasterizeSquareObstacle(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	square := NewSlicePointSeq([]Vec2{{30, 30}, {60, 30}, {60, 60}, {30, 60}})
	b.rasterizeObstacle(square)

	inside := b.grid.get(5, 5) // grid coords for world (50,50)-ish
	assert.Equal(t, int32(0), inside.DistanceToObstacle, "a cell deep inside the obstacle is marked")

	outsideCell := b.grid.get(1, 1)
	assert.NotEqual(t, int32(0), outsideCell.DistanceToObstacle, "a cell far outside the obstacle stays untouched")
}

func TestRasterizeThinObstacleFallback(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	// A one-cell-wide vertical sliver: width 1 world unit, far thinner
	// than the 10-unit cell size, would vanish under a naive scan-line
	// fill unless the thin-obstacle fallback passes kick in.
	thin := NewSlicePointSeq([]Vec2{{50, 10}, {51, 10}, {51, 90}, {50, 90}})
	b.rasterizeObstacle(thin)

	// World x 50..51 maps to grid x 6.0..6.1 (the origin sits one cell
	// left of the area), so the sliver lies in grid column 6.
	found := false
	for y := int32(1); y < b.grid.dimY-1; y++ {
		if b.grid.get(6, y).DistanceToObstacle == 0 {
			found = true
			break
		}
	}
	assert.True(t, found, "the thin-obstacle fallback should mark at least one cell along the sliver")
}
