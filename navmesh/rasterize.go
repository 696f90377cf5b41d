package navmesh

// rasterizeObstacle marks every grid cell covered by one obstacle polygon
// as DistanceToObstacle=0. It generalizes recast/rasterization.go's
// triangle scan-line fill (rasterizeTri's row clipping) from a 3D triangle
// to a 2D polygon, with a conservative two-pass fallback (thin horizontal
// pass, then thin vertical pass) for obstacles too thin to be caught by a
// single Y-axis sweep — there is no teacher equivalent for that fallback,
// since a 3D triangle can never degenerate into a one-cell-wide sliver the
// way a thin 2D polygon can.
func (b *Builder) rasterizeObstacle(obstacle PointSeq) {
	verts := b.scratchVerts[:0]
	for {
		p, ok := obstacle.Next()
		if !ok {
			break
		}
		verts = append(verts, b.grid.ConvertToGridBasis(p))
	}
	b.scratchVerts = verts
	if len(verts) < 3 {
		return
	}

	minX, minY, maxX, maxY := gridBBox(verts, b.grid)
	if minX > maxX || minY > maxY {
		return
	}

	filled := false
	for y := minY; y <= maxY; y++ {
		if b.fillRowY(verts, y, minX, maxX, false) {
			filled = true
		}
	}
	if filled {
		return
	}
	for y := minY; y <= maxY; y++ {
		b.fillRowY(verts, y, minX, maxX, true)
	}
	for x := minX; x <= maxX; x++ {
		b.fillColX(verts, x, minY, maxY, true)
	}
}

// gridBBox returns the obstacle's bounding box in integer grid coordinates,
// clipped to the grid's interior (the one-cell sentinel border is never
// rasterized into, since it is already permanently obstacle).
func gridBBox(verts []Vec2, g *Grid) (minX, minY, maxX, maxY int32) {
	minXf, minYf := verts[0].X, verts[0].Y
	maxXf, maxYf := verts[0].X, verts[0].Y
	for _, v := range verts[1:] {
		if v.X < minXf {
			minXf = v.X
		}
		if v.X > maxXf {
			maxXf = v.X
		}
		if v.Y < minYf {
			minYf = v.Y
		}
		if v.Y > maxYf {
			maxYf = v.Y
		}
	}
	minX = int32(minXf)
	minY = int32(minYf)
	maxX = int32(maxXf)
	maxY = int32(maxYf)
	if minX < 1 {
		minX = 1
	}
	if minY < 1 {
		minY = 1
	}
	if maxX > g.dimX-2 {
		maxX = g.dimX - 2
	}
	if maxY > g.dimY-2 {
		maxY = g.dimY - 2
	}
	return
}

// fillRowY scans row y at its vertical center, collects edge crossings
// under the half-open rule, and fills the resulting spans. thinMode also
// fills single-cell-wide spans that would otherwise round away to nothing.
func (b *Builder) fillRowY(verts []Vec2, y, minX, maxX int32, thinMode bool) bool {
	cy := float32(y) + 0.5
	nodes := b.scratchNodes[:0]
	n := len(verts)
	for i := 0; i < n; i++ {
		v := verts[i]
		prev := verts[(i-1+n)%n]
		if (v.Y <= cy && cy < prev.Y) || (prev.Y < cy && cy <= v.Y) {
			t := (cy - prev.Y) / (v.Y - prev.Y)
			nodes = append(nodes, prev.X+t*(v.X-prev.X))
		}
	}
	b.scratchNodes = nodes
	if len(nodes) == 0 {
		return false
	}
	bubbleSortF32(nodes)
	filled := false
	for i := 0; i+1 < len(nodes); i += 2 {
		x0 := roundToInt32(nodes[i])
		x1 := roundToInt32(nodes[i+1])
		if x0 > maxX || x1 < minX {
			continue
		}
		if x0 < minX {
			x0 = minX
		}
		if x1 > maxX {
			x1 = maxX
		}
		if x0 == x1 {
			if thinMode {
				b.grid.markObstacle(x0, y)
				filled = true
			}
			continue
		}
		for x := x0; x < x1; x++ {
			b.grid.markObstacle(x, y)
			filled = true
		}
	}
	return filled
}

// fillColX is fillRowY's transpose, used only by the thin-obstacle
// fallback to catch obstacles too thin in Y for any row center to cross.
func (b *Builder) fillColX(verts []Vec2, x, minY, maxY int32, thinMode bool) bool {
	cx := float32(x) + 0.5
	nodes := b.scratchNodes[:0]
	n := len(verts)
	for i := 0; i < n; i++ {
		v := verts[i]
		prev := verts[(i-1+n)%n]
		if (v.X <= cx && cx < prev.X) || (prev.X < cx && cx <= v.X) {
			t := (cx - prev.X) / (v.X - prev.X)
			nodes = append(nodes, prev.Y+t*(v.Y-prev.Y))
		}
	}
	b.scratchNodes = nodes
	if len(nodes) == 0 {
		return false
	}
	bubbleSortF32(nodes)
	filled := false
	for i := 0; i+1 < len(nodes); i += 2 {
		y0 := roundToInt32(nodes[i])
		y1 := roundToInt32(nodes[i+1])
		if y0 > maxY || y1 < minY {
			continue
		}
		if y0 < minY {
			y0 = minY
		}
		if y1 > maxY {
			y1 = maxY
		}
		if y0 == y1 {
			if thinMode {
				b.grid.markObstacle(x, y0)
				filled = true
			}
			continue
		}
		for y := y0; y < y1; y++ {
			b.grid.markObstacle(x, y)
			filled = true
		}
	}
	return filled
}

func roundToInt32(v float32) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return -int32(-v + 0.5)
}

func bubbleSortF32(s []float32) {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(s)-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}
