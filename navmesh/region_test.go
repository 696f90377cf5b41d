package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloodRegionsAssignsOpenArea(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	maxDist := b.buildDistanceField()
	b.floodRegions(maxDist, 0)

	center := b.grid.get(b.grid.dimX/2, b.grid.dimY/2)
	assert.NotEqual(t, int32(0), center.RegionID, "an open area with no padding should all belong to a region")
	assert.Equal(t, int32(1), b.grid.regionCount, "a single open area yields exactly one region")
}

func TestFloodRegionsSplitsOnObstacle(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 200, 100, 10, 1)
	wall := NewSlicePointSeq([]Vec2{{95, 0}, {105, 0}, {105, 100}, {95, 100}})
	b.rasterizeObstacle(wall)
	maxDist := b.buildDistanceField()
	b.floodRegions(maxDist, 0)

	left := b.grid.get(3, b.grid.dimY/2)
	right := b.grid.get(b.grid.dimX-4, b.grid.dimY/2)
	assert.NotEqual(t, int32(0), left.RegionID)
	assert.NotEqual(t, int32(0), right.RegionID)
	assert.NotEqual(t, left.RegionID, right.RegionID, "a dividing wall should split the area into two distinct regions")
}

func TestFloodRegionsPaddingLeavesCellsUnassigned(t *testing.T) {
	b := newTestBuilder(t, 0, 0, 100, 100, 10, 1)
	maxDist := b.buildDistanceField()
	b.floodRegions(maxDist, maxDist/2+1)

	edge := b.grid.get(1, b.grid.dimY/2)
	assert.Equal(t, int32(0), edge.RegionID, "cells within the padding floor of the border stay unassigned")
}
