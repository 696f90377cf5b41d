package navmesh

// floodRegions runs the watershed flood described by spec §4.D: cells at
// or below the padding floor are left unreachable (RegionID stays 0); the
// threshold sweeps down from maxDist by 2, at each level expanding
// existing regions one cell at a time into adjacent eligible cells (ties
// broken by lowest region id) until they stop growing, then seeding fresh
// regions from whatever eligible cells remain unclaimed, so no unassigned
// eligible cell remains at that level.
// Grounded on recast/region.go's BuildRegions/expandRegions/floodRegion
// family.
func (b *Builder) floodRegions(maxDist, padding int32) {
	floor := 2 * padding

	for threshold := maxDist; threshold > floor; threshold -= 2 {
		for b.expandRegionsOnce(threshold) {
		}
		b.seedNewRegions(threshold)
	}

	b.assignLeftoverCells(floor)
}

// expandRegionsOnce grows every already-assigned region by one cell layer
// into eligible, still-unassigned neighbors. Assignments are computed
// against a snapshot and applied afterward so a single call only ever
// expands one cell deep, matching "expand existing regions by one cell".
func (b *Builder) expandRegionsOnce(threshold int32) bool {
	g := b.grid
	pending := b.scratchAssign[:0]
	for y := int32(1); y < g.dimY-1; y++ {
		for x := int32(1); x < g.dimX-1; x++ {
			c := g.get(x, y)
			if c.RegionID != 0 || c.DistanceToObstacle == 0 || c.DistanceToObstacle < threshold {
				continue
			}
			var best int32
			for dir := int32(0); dir < 4; dir++ {
				nb := g.neighbor(c, dir)
				if nb.RegionID > 0 && (best == 0 || nb.RegionID < best) {
					best = nb.RegionID
				}
			}
			if best != 0 {
				pending = append(pending, cellAssign{x: x, y: y, region: best})
			}
		}
	}
	b.scratchAssign = pending
	if len(pending) == 0 {
		return false
	}
	for _, a := range pending {
		g.get(a.x, a.y).RegionID = a.region
	}
	return true
}

type cellAssign struct {
	x, y   int32
	region int32
}

// seedNewRegions finds connected components of still-unassigned eligible
// cells (4-connected, fenced by threshold) and gives each a fresh region
// id, via a BFS that marks cells visited as it goes so no two seeds in the
// same call ever claim the same cell (the fix for the "snake-like region"
// bug: without this, two seeds racing along a thin corridor could each
// claim half of it non-deterministically).
func (b *Builder) seedNewRegions(threshold int32) bool {
	g := b.grid
	visited := b.scratchVisited
	for i := range visited {
		visited[i] = false
	}
	seededAny := false
	for y := int32(1); y < g.dimY-1; y++ {
		for x := int32(1); x < g.dimX-1; x++ {
			idx := x + y*g.dimX
			c := g.get(x, y)
			if c.RegionID != 0 || c.DistanceToObstacle == 0 || c.DistanceToObstacle < threshold || visited[idx] {
				continue
			}
			g.regionCount++
			newID := g.regionCount
			queue := b.scratchQueue[:0]
			queue = append(queue, Point{X: x, Y: y})
			visited[idx] = true
			for head := 0; head < len(queue); head++ {
				p := queue[head]
				cc := g.get(p.X, p.Y)
				cc.RegionID = newID
				for dir := int32(0); dir < 4; dir++ {
					nx, ny := p.X+n4dx[dir], p.Y+n4dy[dir]
					if !g.inBounds(nx, ny) {
						continue
					}
					ni := nx + ny*g.dimX
					nc := g.get(nx, ny)
					if nc.RegionID == 0 && nc.DistanceToObstacle != 0 && nc.DistanceToObstacle >= threshold && !visited[ni] {
						visited[ni] = true
						queue = append(queue, Point{X: nx, Y: ny})
					}
				}
			}
			b.scratchQueue = queue
			seededAny = true
		}
	}
	return seededAny
}

// assignLeftoverCells hands any still-unassigned, non-obstacle,
// above-floor cell to its strongest (greatest DistanceToObstacle) assigned
// N8 neighbor's region, repeating until a pass makes no change. Grounded
// on mergeAndFilterRegions's neighbor-counting approach to leftover cells;
// this is the spec's own "supplemented feature" rather than a literal
// teacher transcription.
func (b *Builder) assignLeftoverCells(floor int32) {
	g := b.grid
	for {
		changed := false
		for y := int32(1); y < g.dimY-1; y++ {
			for x := int32(1); x < g.dimX-1; x++ {
				c := g.get(x, y)
				if c.RegionID != 0 || c.DistanceToObstacle == 0 || c.DistanceToObstacle <= floor {
					continue
				}
				var bestReg int32
				var bestDist int32 = -1
				for dir := int32(0); dir < 8; dir++ {
					nb := g.neighbor8(c, dir)
					if nb.RegionID > 0 && nb.DistanceToObstacle > bestDist {
						bestDist = nb.DistanceToObstacle
						bestReg = nb.RegionID
					}
				}
				if bestReg != 0 {
					c.RegionID = bestReg
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
}
