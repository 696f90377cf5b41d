package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmptyArea(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	result, err := b.Build(NewSliceObstacleSeq(nil), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Polygons, "an open area with no obstacles still meshes to at least one polygon")
	assert.Equal(t, int32(0), result.DiscardedIslands)
}

func TestBuildSingleCentralObstacle(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	obstacles := [][]Vec2{{{40, 40}, {60, 40}, {60, 60}, {40, 60}}}
	result, err := b.Build(NewSliceObstacleSeq(obstacles), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Polygons, "a central obstacle still leaves a navigable ring around it")
}

func TestBuildThinObstacleSplitsArea(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	obstacles := [][]Vec2{{{50, 5}, {51, 5}, {51, 95}, {50, 95}}}
	result, err := b.Build(NewSliceObstacleSeq(obstacles), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Polygons, "a thin dividing obstacle still yields a mesh on both sides")
}

func TestBuildIsometricRatioScalesOutputY(t *testing.T) {
	b1 := newTestBuilder(t, 0, 0, 100, 400, 10, 1)
	r1, err := b1.Build(NewSliceObstacleSeq(nil), 0)
	require.NoError(t, err)

	b2 := newTestBuilder(t, 0, 0, 100, 400, 10, 2)
	r2, err := b2.Build(NewSliceObstacleSeq(nil), 0)
	require.NoError(t, err)

	maxY := func(polys []Polygon) float32 {
		var m float32
		for _, p := range polys {
			for _, pt := range p.Points {
				if pt.Y > m {
					m = pt.Y
				}
			}
		}
		return m
	}

	require.NotEmpty(t, r1.Polygons)
	require.NotEmpty(t, r2.Polygons)
	assert.InDelta(t, 2*maxY(r1.Polygons), maxY(r2.Polygons), 1e-2, "an isometric ratio of 2 stretches the output y-axis back by a factor of 2")
}

func TestBuildObstaclePaddingShrinksNavigableArea(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	result, err := b.Build(NewSliceObstacleSeq(nil), 4)
	require.NoError(t, err)
	require.NotEmpty(t, result.Polygons, "the cells beyond the padding still form a region")
	for _, p := range result.Polygons {
		for _, pt := range p.Points {
			assert.True(t, pt.X >= 40 && pt.X <= 60 && pt.Y >= 40 && pt.Y <= 60, "a padding of 4 cells keeps the mesh 4 cells (40 units) away from the area border")
		}
	}
}

func TestBuildRejectsNegativePadding(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	_, err := b.Build(NewSliceObstacleSeq(nil), -1)
	assert.ErrorIs(t, err, ErrNegativePadding)
}

func TestBuildIsReusable(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	_, err := b.Build(NewSliceObstacleSeq(nil), 0)
	require.NoError(t, err)

	obstacles := [][]Vec2{{{40, 40}, {60, 40}, {60, 60}, {40, 60}}}
	result, err := b.Build(NewSliceObstacleSeq(obstacles), 0)
	require.NoError(t, err, "a Builder must be safely reusable across independent Build calls")
	assert.NotEmpty(t, result.Polygons)
}
