package navmesh

import "github.com/arl/assertgo"

const (
	maxContourWalkSteps        = 65535
	maxCrossRegionFilterSweeps = 64
	simplifyMaxDeviation       = 1 // library default, not exposed in Config
)

// ContourPoint is one vertex of a region's boundary. Region is the id of
// the region on the outward side of the edge leaving this vertex, or 0 if
// that edge borders an obstacle (or the padded-out unreachable area).
type ContourPoint struct {
	X, Y   int32
	Region int32
}

// Contour is one region's simplified, closed boundary loop, clockwise in
// grid space.
type Contour struct {
	Points []ContourPoint
	Region int32
}

// buildContours flags every region-boundary cell, walks and simplifies one
// raw contour per connected boundary component, applies the cross-region
// vertex filter across all of them at once, and returns the result along
// with the two diagnostic counters callers can inspect instead of
// scraping log text.
func (b *Builder) buildContours() ([]*Contour, int32, bool) {
	g := b.grid
	var discarded int32

	for y := int32(1); y < g.dimY-1; y++ {
		for x := int32(1); x < g.dimX-1; x++ {
			c := g.get(x, y)
			if c.RegionID == 0 {
				continue
			}
			var flags uint8
			for dir := int32(0); dir < 4; dir++ {
				if g.neighbor(c, dir).RegionID != c.RegionID {
					flags |= 1 << uint(dir)
				}
			}
			if flags == 0x0F {
				discarded++
				continue // island: a cell surrounded by four differing regions
			}
			c.ContourFlags = flags
		}
	}

	var contours []*Contour
	for y := int32(1); y < g.dimY-1; y++ {
		for x := int32(1); x < g.dimX-1; x++ {
			c := g.get(x, y)
			if c.RegionID == 0 || c.ContourFlags == 0 {
				continue
			}
			startDir := int32(-1)
			for dir := int32(0); dir < 4; dir++ {
				if c.ContourFlags&(1<<uint(dir)) != 0 {
					startDir = dir
					break
				}
			}
			raw := b.walkContour(x, y, startDir)
			contours = append(contours, &Contour{
				Points: simplifyContour(raw),
				Region: c.RegionID,
			})
		}
	}

	b.filterCrossRegionVertices(contours)

	for _, c := range contours {
		c.Points = dedupContour(c.Points)
	}

	mismatch := int32(len(contours))+discarded != g.regionCount-1
	if mismatch {
		b.ctx.Warningf("navmesh: contour count mismatch: %d contours + %d discarded islands != %d regions - 1",
			len(contours), discarded, g.regionCount)
	}

	return contours, discarded, mismatch
}

// walkContour walks clockwise around the boundary of the region owning
// the cell at (x,y), starting from the flagged direction startDir, clearing
// each flag bit as it is consumed so no other walk can retrace the same
// edge. Grounded on recast/contour.go's walkContour2, with its rotation
// directions mirrored to this package's Y-down grid space: rotate back
// into the previous border direction after emitting a corner, or step into
// the neighbor cell and rotate forward when the current direction isn't a
// border. Without the mirroring, the raw contour comes out wound
// counterclockwise instead of the clockwise winding the rest of the
// package assumes.
func (b *Builder) walkContour(startX, startY, startDir int32) []ContourPoint {
	g := b.grid
	x, y, dir := startX, startY, startDir
	var points []ContourPoint

	for steps := 0; ; steps++ {
		if steps > maxContourWalkSteps {
			b.ctx.Warningf("navmesh: contour walk exceeded %d steps near (%d,%d), truncating", maxContourWalkSteps, startX, startY)
			break
		}
		c := g.get(x, y)
		if c.ContourFlags&(1<<uint(dir)) != 0 {
			delta := cornerDelta[dir]
			nb := g.neighbor(c, dir)
			points = append(points, ContourPoint{X: x + delta.X, Y: y + delta.Y, Region: nb.RegionID})
			c.ContourFlags &^= 1 << uint(dir)
			dir = (dir + 3) & 3
		} else {
			nb := g.neighbor(c, dir)
			x, y = nb.X, nb.Y
			dir = (dir + 1) & 3
		}
		if x == startX && y == startY && dir == startDir {
			break
		}
	}
	return points
}

// simplifyContour reduces a raw, per-cell contour down to its corner
// vertices. Contours entirely bordering obstacle seed from the
// lexicographically lowest-left and highest-right raw vertices; contours
// touching other regions seed a "portal" at every raw vertex where the
// outward region changes. Either way, obstacle-bordering edges are then
// iteratively tessellated by inserting the farthest-deviating raw vertex
// until no remaining deviation exceeds simplifyMaxDeviation. Grounded on
// recast/contour.go's simplifyContour.
func simplifyContour(raw []ContourPoint) []ContourPoint {
	n := int32(len(raw))
	if n == 0 {
		return nil
	}

	allObstacle := true
	for _, p := range raw {
		if p.Region != 0 {
			allObstacle = false
			break
		}
	}

	var rawIdx []int32
	if allObstacle {
		rawIdx = lowerLeftUpperRightSeed(raw)
	} else {
		for i := int32(0); i < n; i++ {
			j := (i + 1) % n
			if raw[i].Region != raw[j].Region {
				rawIdx = append(rawIdx, i)
			}
		}
		if len(rawIdx) == 0 {
			rawIdx = lowerLeftUpperRightSeed(raw)
		}
	}

	for {
		inserted := false
		m := int32(len(rawIdx))
		for i := int32(0); i < m; i++ {
			ii := (i + 1) % m
			ai, bi := rawIdx[i], rawIdx[ii]
			nextA := (ai + 1) % n
			if raw[nextA].Region != 0 {
				continue
			}
			a, bp := pointOf(raw[ai]), pointOf(raw[bi])
			var maxD float64 = -1
			var maxIdx int32 = -1
			for k := nextA; k != bi; k = (k + 1) % n {
				d := distPtSegSq(pointOf(raw[k]), a, bp)
				if d > maxD {
					maxD = d
					maxIdx = k
				}
			}
			if maxIdx != -1 && maxD > float64(simplifyMaxDeviation*simplifyMaxDeviation) {
				next := make([]int32, 0, m+1)
				next = append(next, rawIdx[:i+1]...)
				next = append(next, maxIdx)
				next = append(next, rawIdx[i+1:]...)
				rawIdx = next
				inserted = true
				break
			}
		}
		if !inserted {
			break
		}
	}

	out := make([]ContourPoint, len(rawIdx))
	for i, ri := range rawIdx {
		out[i] = raw[ri]
	}
	return out
}

func pointOf(p ContourPoint) Point { return Point{X: p.X, Y: p.Y} }

func lowerLeftUpperRightSeed(raw []ContourPoint) []int32 {
	lli, uri := int32(0), int32(0)
	for i := int32(1); i < int32(len(raw)); i++ {
		if lessLex(raw[i], raw[lli]) {
			lli = i
		}
		if lessLex(raw[uri], raw[i]) {
			uri = i
		}
	}
	if lli == uri {
		return []int32{lli}
	}
	return []int32{lli, uri}
}

func lessLex(a, b ContourPoint) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// filterCrossRegionVertices collapses every vertex shared by three or more
// region contours down to the shortest obstacle-adjacent edge's far
// endpoint. This pass has no teacher equivalent (the teacher solves the
// related-but-different problem of merging region holes into an outline,
// mergeRegionHoles); it is built fresh per the spec's own description,
// reusing the package's coordinate-keyed lookup idiom.
func (b *Builder) filterCrossRegionVertices(contours []*Contour) {
	skip := make(map[[2]int32]bool)
	stuckSweeps := 0
	for {
		ci, vi, found := findCrossRegionVertex(contours, skip)
		if !found {
			return
		}
		v := contours[ci].Points[vi]
		if resolveCrossRegionVertex(b, contours, ci, vi) {
			skip = make(map[[2]int32]bool)
			stuckSweeps = 0
			continue
		}
		skip[[2]int32{v.X, v.Y}] = true
		stuckSweeps++
		if stuckSweeps > maxCrossRegionFilterSweeps {
			b.ctx.Warningf("navmesh: cross-region vertex filter hit its safety cap of %d stuck sweeps", maxCrossRegionFilterSweeps)
			return
		}
	}
}

func findCrossRegionVertex(contours []*Contour, skip map[[2]int32]bool) (ci, vi int32, found bool) {
	for c := range contours {
		pts := contours[c].Points
		n := len(pts)
		if n == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			prev := (i - 1 + n) % n
			p := pts[i]
			if p.Region == 0 || pts[prev].Region == 0 {
				continue
			}
			if skip[[2]int32{p.X, p.Y}] {
				continue
			}
			return int32(c), int32(i), true
		}
	}
	return 0, 0, false
}

type cycleEntry struct {
	c, i int32
}

// resolveCrossRegionVertex implements one step of the filter for the
// vertex at contours[ci].Points[vi]: it walks the ring of contours meeting
// at that coordinate, picks the shortest obstacle-adjacent incident edge,
// and collapses the vertex onto that edge's far endpoint everywhere else
// it appears. Returns false (leaving contours untouched) when no
// obstacle-adjacent incident edge exists yet, so a later sweep can retry
// once other vertices have been resolved.
func resolveCrossRegionVertex(b *Builder, contours []*Contour, ci, vi int32) bool {
	v := contours[ci].Points[vi]
	cycle := []cycleEntry{{ci, vi}}
	curC, curI := ci, vi
	for {
		reg := contours[curC].Points[curI].Region
		nextC, nextI, ok := findContourVertex(contours, reg, v.X, v.Y)
		if !ok {
			b.ctx.Warningf("navmesh: cross-region filter could not find region %d's contour at (%d,%d)", reg, v.X, v.Y)
			return false
		}
		if nextC == ci && nextI == vi {
			break
		}
		cycle = append(cycle, cycleEntry{nextC, nextI})
		curC, curI = nextC, nextI
		if len(cycle) > len(contours)+1 {
			b.ctx.Warningf("navmesh: cross-region filter cycle at (%d,%d) did not close", v.X, v.Y)
			return false
		}
	}
	if len(cycle) < 3 {
		b.ctx.Warningf("navmesh: cross-region filter expected >=3 contours meeting at (%d,%d), found %d", v.X, v.Y, len(cycle))
	}
	assert.True(cycle[0].c == ci && cycle[0].i == vi, "cross-region filter cycle must start at the vertex it was built from")

	winner := -1
	var winnerLen int64 = -1
	for idx, e := range cycle {
		pts := contours[e.c].Points
		prevI := (e.i - 1 + int32(len(pts))) % int32(len(pts))
		prev := pts[prevI]
		if prev.Region != 0 {
			continue
		}
		d := distSq(Point{prev.X, prev.Y}, Point{v.X, v.Y})
		if winner == -1 || d < winnerLen {
			winner = idx
			winnerLen = d
		}
	}
	if winner == -1 {
		return false
	}

	we := cycle[winner]
	wpts := contours[we.c].Points
	wPrevI := (we.i - 1 + int32(len(wpts))) % int32(len(wpts))
	e := wpts[wPrevI]

	partner := -1
	for idx, ce := range cycle {
		if idx == winner {
			continue
		}
		pts := contours[ce.c].Points
		prevI := (ce.i - 1 + int32(len(pts))) % int32(len(pts))
		prev := pts[prevI]
		if prev.X == e.X && prev.Y == e.Y {
			partner = idx
			break
		}
	}

	for idx, ce := range cycle {
		if idx == winner || idx == partner {
			continue
		}
		p := &contours[ce.c].Points[ce.i]
		p.X, p.Y, p.Region = e.X, e.Y, 0
	}

	removeEntry(contours, we.c, we.i)
	if partner != -1 {
		pe := cycle[partner]
		// pe.i shifts down by one if pe and we share a contour with pe.i > we.i
		if pe.c == we.c && pe.i > we.i {
			removeEntry(contours, pe.c, pe.i-1)
		} else {
			removeEntry(contours, pe.c, pe.i)
		}
	}
	return true
}

func removeEntry(contours []*Contour, c, i int32) {
	pts := contours[c].Points
	contours[c].Points = append(pts[:i], pts[i+1:]...)
}

func findContourVertex(contours []*Contour, region, x, y int32) (int32, int32, bool) {
	if region == 0 {
		return 0, 0, false
	}
	for ci, c := range contours {
		if c.Region != region {
			continue
		}
		for vi, p := range c.Points {
			if p.X == x && p.Y == y {
				return int32(ci), int32(vi), true
			}
		}
	}
	return 0, 0, false
}

func dedupContour(pts []ContourPoint) []ContourPoint {
	if len(pts) == 0 {
		return pts
	}
	out := make([]ContourPoint, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 {
			last := out[len(out)-1]
			if last.X == p.X && last.Y == p.Y {
				continue
			}
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].X == out[len(out)-1].X && out[0].Y == out[len(out)-1].Y {
		out = out[:len(out)-1]
	}
	return out
}
