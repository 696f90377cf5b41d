package navmesh

// Chamfer distance transform weights: 2 for an orthogonal step, 3 for a
// diagonal one, the usual integer approximation of Euclidean distance used
// by two-pass chamfer transforms.
const (
	orthogonalStep int32 = 2
	diagonalStep   int32 = 3
)

// buildDistanceField computes, for every non-obstacle interior cell, its
// chamfer distance to the nearest obstacle cell, and returns the maximum
// distance found. No surviving teacher file implements this (only called,
// commented out, from sample/solomesh/builder.go), so it is built from
// this package's own two-pass description, kept in the surrounding
// package's plain-integer-buffer style (recast/region.go's sweep
// bookkeeping).
func (b *Builder) buildDistanceField() int32 {
	g := b.grid

	for y := int32(1); y < g.dimY-1; y++ {
		for x := int32(1); x < g.dimX-1; x++ {
			c := g.get(x, y)
			if c.DistanceToObstacle != 0 {
				c.DistanceToObstacle = maxDistance
			}
		}
	}

	// Forward pass: top-left to bottom-right, examining the four
	// neighbors already visited by this pass (left, up-left, up,
	// up-right).
	for y := int32(1); y < g.dimY-1; y++ {
		for x := int32(1); x < g.dimX-1; x++ {
			c := g.get(x, y)
			if c.DistanceToObstacle == 0 {
				continue
			}
			d := c.DistanceToObstacle
			if v := g.get(x-1, y).DistanceToObstacle + orthogonalStep; v < d {
				d = v
			}
			if v := g.get(x-1, y-1).DistanceToObstacle + diagonalStep; v < d {
				d = v
			}
			if v := g.get(x, y-1).DistanceToObstacle + orthogonalStep; v < d {
				d = v
			}
			if v := g.get(x+1, y-1).DistanceToObstacle + diagonalStep; v < d {
				d = v
			}
			c.DistanceToObstacle = d
		}
	}

	// Backward pass: bottom-right to top-left, examining the other four
	// neighbors (right, down-right, down, down-left).
	for y := g.dimY - 2; y >= 1; y-- {
		for x := g.dimX - 2; x >= 1; x-- {
			c := g.get(x, y)
			if c.DistanceToObstacle == 0 {
				continue
			}
			d := c.DistanceToObstacle
			if v := g.get(x+1, y).DistanceToObstacle + orthogonalStep; v < d {
				d = v
			}
			if v := g.get(x+1, y+1).DistanceToObstacle + diagonalStep; v < d {
				d = v
			}
			if v := g.get(x, y+1).DistanceToObstacle + orthogonalStep; v < d {
				d = v
			}
			if v := g.get(x-1, y+1).DistanceToObstacle + diagonalStep; v < d {
				d = v
			}
			c.DistanceToObstacle = d
		}
	}

	var maxDist int32
	for y := int32(1); y < g.dimY-1; y++ {
		for x := int32(1); x < g.dimX-1; x++ {
			if d := g.get(x, y).DistanceToObstacle; d > maxDist {
				maxDist = d
			}
		}
	}
	return maxDist
}
