package navmesh

import "github.com/arl/assertgo"

// workPoly is a polygon under construction during the merge loop: indices
// into the owning contour's Point slice, clockwise.
type workPoly struct {
	idx []int32
}

// decomposeContour triangulates a simplified contour by ear clipping, then
// greedily merges adjacent triangles into convex polygons under the
// configured vertex cap. Grounded on recast/mesh.go's triangulate/
// getPolyMergeValue/mergePolyVerts and recast/polymesh.go's BuildPolyMesh
// merge loop.
func (b *Builder) decomposeContour(cpts []ContourPoint) [][]Point {
	pts := make([]Point, len(cpts))
	for i, p := range cpts {
		pts[i] = Point{X: p.X, Y: p.Y}
	}

	tris, ok := triangulateContour(pts)
	if !ok {
		b.ctx.Warningf("navmesh: triangulation failed for a %d-vertex contour, skipping it", len(pts))
		return nil
	}
	if len(tris) == 0 {
		return nil
	}

	polys := mergeTriangles(tris, pts, b.cfg.MaxVerticesPerPolygon)

	out := make([][]Point, 0, len(polys))
	for _, wp := range polys {
		if len(wp.idx) < 3 {
			continue
		}
		poly := make([]Point, len(wp.idx))
		for i, idx := range wp.idx {
			poly[i] = pts[idx]
		}
		out = append(out, poly)
	}
	return out
}

// triangulateContour ear-clips a simple clockwise polygon into triangles,
// each triangle choosing the candidate ear with the shortest diagonal so
// slivers are preferred over near-degenerate splits. Falls back to
// reporting failure (rather than panicking) if no ear can be found, the
// way recast/mesh.go's triangulate returns a negative count on total
// failure.
func triangulateContour(pts []Point) ([][3]int32, bool) {
	n := int32(len(pts))
	if n < 3 {
		return nil, false
	}
	if n == 3 {
		return [][3]int32{{0, 1, 2}}, true
	}

	active := make([]int32, n)
	for i := range active {
		active[i] = int32(i)
	}
	earFlags := make([]bool, n)
	for i := int32(0); i < n; i++ {
		earFlags[i] = isEar(pts, active, i, n)
	}

	var tris [][3]int32
	m := n
	for m > 3 {
		besti := int32(-1)
		var bestLen int64 = -1
		for i := int32(0); i < m; i++ {
			if !earFlags[i] {
				continue
			}
			prev := active[(i-1+m)%m]
			next := active[(i+1)%m]
			d := distSq(pts[prev], pts[next])
			if besti == -1 || d < bestLen {
				besti = i
				bestLen = d
			}
		}
		if besti == -1 {
			return tris, false
		}

		i := besti
		prevPos := (i - 1 + m) % m
		nextPos := (i + 1) % m
		tris = append(tris, [3]int32{active[prevPos], active[i], active[nextPos]})

		active = append(active[:i], active[i+1:]...)
		earFlags = append(earFlags[:i], earFlags[i+1:]...)
		m--
		if m <= 3 {
			break
		}
		pPos := (i - 1 + m) % m
		nPos := i % m
		earFlags[pPos] = isEar(pts, active, pPos, m)
		earFlags[nPos] = isEar(pts, active, nPos, m)
	}
	tris = append(tris, [3]int32{active[0], active[1], active[2]})
	return tris, true
}

// isEar reports whether active[i] is a valid ear: the diagonal joining its
// neighbors lies inside the polygon's internal angle there (a convex turn)
// and does not cross any other edge of the polygon.
func isEar(pts []Point, active []int32, i, n int32) bool {
	prev := active[(i-1+n)%n]
	cur := active[i]
	next := active[(i+1)%n]
	a, bpt, c := pts[prev], pts[cur], pts[next]
	if !isLeft(a, bpt, c) {
		return false
	}
	for k := int32(0); k < n; k++ {
		k1 := (k + 1) % n
		if k == (i-1+n)%n || k1 == (i-1+n)%n || k == (i+1)%n || k1 == (i+1)%n {
			continue
		}
		p0, p1 := pts[active[k]], pts[active[k1]]
		if p0 == a || p0 == c || p1 == a || p1 == c {
			continue
		}
		if segmentsIntersect(a, c, p0, p1) {
			return false
		}
	}
	return true
}

// getMergeValue reports whether pa and pb share exactly one edge (by
// index, since both already index into the same contour's Point slice),
// whether merging across it stays convex and within maxVerts, and if so
// the squared length of that edge as the merge's priority (longer shared
// edges merge first, matching recast/mesh.go's getPolyMergeValue).
func getMergeValue(pa, pb *workPoly, pts []Point, maxVerts int32) (value int64, ea, eb int, ok bool) {
	na, nb := len(pa.idx), len(pb.idx)
	assert.True(na >= 3 && nb >= 3, "merge candidates must already be valid polygons, got %d and %d verts", na, nb)
	if na+nb-2 > int(maxVerts) {
		return 0, 0, 0, false
	}
	for i := 0; i < na; i++ {
		va0, va1 := pa.idx[i], pa.idx[(i+1)%na]
		for j := 0; j < nb; j++ {
			vb0, vb1 := pb.idx[j], pb.idx[(j+1)%nb]
			if va0 == vb1 && va1 == vb0 {
				paPrev := pa.idx[(i-1+na)%na]
				pbNext := pb.idx[(j+2)%nb]
				if !isLeft(pts[paPrev], pts[va0], pts[pbNext]) {
					continue
				}
				pbPrev := pb.idx[(j-1+nb)%nb]
				paNext := pa.idx[(i+2)%na]
				if !isLeft(pts[pbPrev], pts[vb0], pts[paNext]) {
					continue
				}
				return distSq(pts[va0], pts[va1]), i, j, true
			}
		}
	}
	return 0, 0, 0, false
}

// mergePolyVerts concatenates pa (starting after its shared edge, omitting
// the shared-edge start vertex) with pb likewise, producing one polygon
// with na+nb-2 vertices.
func mergePolyVerts(pa, pb *workPoly, ea, eb int) []int32 {
	na, nb := len(pa.idx), len(pb.idx)
	out := make([]int32, 0, na+nb-2)
	for i := 0; i < na-1; i++ {
		out = append(out, pa.idx[(ea+1+i)%na])
	}
	for i := 0; i < nb-1; i++ {
		out = append(out, pb.idx[(eb+1+i)%nb])
	}
	return out
}

// mergeTriangles repeatedly merges the pair of polygons with the best
// (longest, convex, within-cap) shared edge until no pair qualifies,
// mirroring BuildPolyMesh's merge loop.
func mergeTriangles(tris [][3]int32, pts []Point, maxVerts int32) []*workPoly {
	polys := make([]*workPoly, len(tris))
	for i, t := range tris {
		polys[i] = &workPoly{idx: []int32{t[0], t[1], t[2]}}
	}

	for {
		bestVal := int64(-1)
		bestA, bestB, bestEa, bestEb := -1, -1, 0, 0
		for i := 0; i < len(polys); i++ {
			for j := i + 1; j < len(polys); j++ {
				val, ea, eb, ok := getMergeValue(polys[i], polys[j], pts, maxVerts)
				if ok && val > bestVal {
					bestVal, bestA, bestB, bestEa, bestEb = val, i, j, ea, eb
				}
			}
		}
		if bestA == -1 {
			break
		}
		merged := mergePolyVerts(polys[bestA], polys[bestB], bestEa, bestEb)
		polys[bestA] = &workPoly{idx: merged}
		polys = append(polys[:bestB], polys[bestB+1:]...)
	}
	return polys
}
