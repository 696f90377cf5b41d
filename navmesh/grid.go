package navmesh

import "github.com/arl/math32"

const maxDistance int32 = 1 << 30

// n4dx/n4dy give the four orthogonal neighbor offsets in the fixed order
// west, south, east, north, matching the direction-bit convention used by
// the contour walk (recast.go's GetDirOffsetX/GetDirOffsetY generalized to
// 2D).
var n4dx = [4]int32{-1, 0, 1, 0}
var n4dy = [4]int32{0, 1, 0, -1}

// n8dx/n8dy extend n4 with the four diagonal neighbors.
var n8dx = [8]int32{-1, 0, 1, 0, 1, -1, -1, 1}
var n8dy = [8]int32{0, 1, 0, -1, 1, 1, -1, -1}

// cornerDelta gives, for each of the four N4 directions, the offset from a
// cell's own grid coordinate to the corner of its border facing that
// direction. Taken directly from the teacher's cornerHeight per-direction
// offsets ((0,1),(1,1),(1,0),(0,0)) for the same direction order.
var cornerDelta = [4]Point{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Cell is one element of a Grid. X and Y are immutable grid coordinates;
// the rest is mutated in place across the build pipeline and reset by
// Grid.Clear.
type Cell struct {
	X, Y int32

	// DistanceToObstacle is 0 for an obstacle (or sentinel border) cell,
	// otherwise the chamfer distance to the nearest one, counting 2 per
	// orthogonal cell step and 3 per diagonal one.
	DistanceToObstacle int32

	// RegionID is 0 for obstacle and unreachable/padded-out cells, else
	// the id (>=1) of the region this cell was flooded into.
	RegionID int32

	// ContourFlags has bit d set iff the N4 neighbor in direction d
	// belongs to a different region than this cell.
	ContourFlags uint8
}

func (c *Cell) clear() {
	c.DistanceToObstacle = maxDistance
	c.RegionID = 0
	c.ContourFlags = 0
}

// Grid is a rectangular array of Cells plus a one-cell sentinel border that
// is permanently treated as obstacle, and the affine mapping between grid
// and world space.
type Grid struct {
	cells []Cell
	dimX  int32
	dimY  int32

	originX, originY       float32
	cellWidth, cellHeight  float32

	regionCount int32
}

func newGrid(left, top, right, bottom, cellSize, isoRatio float32) *Grid {
	cw := cellSize
	ch := cellSize / isoRatio
	dimX := 2 + int32(math32.Ceil((right-left)/cw))
	dimY := 2 + int32(math32.Ceil((bottom-top)/ch))

	g := &Grid{
		dimX:       dimX,
		dimY:       dimY,
		originX:    left - cw,
		originY:    top - ch,
		cellWidth:  cw,
		cellHeight: ch,
	}
	g.cells = make([]Cell, dimX*dimY)
	for y := int32(0); y < dimY; y++ {
		for x := int32(0); x < dimX; x++ {
			g.cells[x+y*dimX] = Cell{X: x, Y: y}
		}
	}
	g.Clear()
	return g
}

// Clear resets every cell to its initial state and re-marks the sentinel
// border as permanently obstacle, so a Grid (and the Builder owning it) can
// be reused across Build calls without reallocating.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].clear()
	}
	g.regionCount = 0
	for x := int32(0); x < g.dimX; x++ {
		g.get(x, 0).DistanceToObstacle = 0
		g.get(x, g.dimY-1).DistanceToObstacle = 0
	}
	for y := int32(0); y < g.dimY; y++ {
		g.get(0, y).DistanceToObstacle = 0
		g.get(g.dimX-1, y).DistanceToObstacle = 0
	}
}

func (g *Grid) inBounds(x, y int32) bool {
	return x >= 0 && x < g.dimX && y >= 0 && y < g.dimY
}

func (g *Grid) get(x, y int32) *Cell {
	return &g.cells[x+y*g.dimX]
}

// neighbor returns c's N4 neighbor in direction dir (0..3).
func (g *Grid) neighbor(c *Cell, dir int32) *Cell {
	return g.get(c.X+n4dx[dir], c.Y+n4dy[dir])
}

// neighbor8 returns c's N8 neighbor in direction dir (0..7).
func (g *Grid) neighbor8(c *Cell, dir int32) *Cell {
	return g.get(c.X+n8dx[dir], c.Y+n8dy[dir])
}

func (g *Grid) markObstacle(x, y int32) {
	g.get(x, y).DistanceToObstacle = 0
}

// ConvertToGridBasis maps a world-space point to fractional grid-space
// coordinates.
func (g *Grid) ConvertToGridBasis(p Vec2) Vec2 {
	return Vec2{
		X: (p.X - g.originX) / g.cellWidth,
		Y: (p.Y - g.originY) / g.cellHeight,
	}
}

// ConvertFromGridBasis is the exact inverse of ConvertToGridBasis.
func (g *Grid) ConvertFromGridBasis(p Vec2) Vec2 {
	return Vec2{
		X: p.X*g.cellWidth + g.originX,
		Y: p.Y*g.cellHeight + g.originY,
	}
}
