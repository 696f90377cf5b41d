package navmesh

// Point is an integer grid-space coordinate: a cell corner, not a cell
// index. Contours and polygons are built entirely in this space and only
// converted to world-space Vec2 at the very end of Build.
type Point struct {
	X, Y int32
}

// Vec2 is a world-space coordinate.
type Vec2 struct {
	X, Y float32
}

// signedArea2 returns twice the signed area of triangle (a,b,c). Its sign
// encodes the turn direction of a->b->c in this package's grid-space
// winding convention (mirrors the teacher's uleft/area2 pair).
func signedArea2(a, b, c Point) int64 {
	return int64(b.X-a.X)*int64(c.Y-a.Y) - int64(c.X-a.X)*int64(b.Y-a.Y)
}

// isLeft reports whether c is strictly on the left of a->b. Grid space has
// Y increasing downward, so a clockwise-wound polygon (spec.md's mandated
// winding) turns left at every convex vertex exactly when signedArea2 is
// positive — the mirror of the teacher's own Y-up uleft.
func isLeft(a, b, c Point) bool { return signedArea2(a, b, c) > 0 }

// isLeftOn reports whether c is on or to the left of a->b.
func isLeftOn(a, b, c Point) bool { return signedArea2(a, b, c) >= 0 }

// collinear reports whether a, b and c lie on a common line.
func collinear(a, b, c Point) bool { return signedArea2(a, b, c) == 0 }

func distSq(a, b Point) int64 {
	dx := int64(a.X - b.X)
	dy := int64(a.Y - b.Y)
	return dx*dx + dy*dy
}

// distPtSegSq returns the squared distance from p to the closest point of
// segment [a,b], following the parametric-projection-and-clamp approach of
// recast/contour.go's distancePtSeg.
func distPtSegSq(p, a, b Point) float64 {
	pqx := float64(b.X - a.X)
	pqy := float64(b.Y - a.Y)
	dx := float64(p.X - a.X)
	dy := float64(p.Y - a.Y)
	d := pqx*pqx + pqy*pqy
	t := 0.0
	if d > 0 {
		t = (pqx*dx + pqy*dy) / d
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	ex := float64(a.X) + t*pqx - float64(p.X)
	ey := float64(a.Y) + t*pqy - float64(p.Y)
	return ex*ex + ey*ey
}

// segmentsIntersect reports whether segments [a,b] and [c,d] properly
// cross, or whether an endpoint of one lies on the other. Grounded on
// recast/contour.go's intersect/intersectProp/between trio.
func segmentsIntersect(a, b, c, d Point) bool {
	if intersectProp(a, b, c, d) {
		return true
	}
	if isOnSegment(a, c, d) || isOnSegment(b, c, d) || isOnSegment(c, a, b) || isOnSegment(d, a, b) {
		return true
	}
	return false
}

func intersectProp(a, b, c, d Point) bool {
	if collinear(a, b, c) || collinear(a, b, d) || collinear(c, d, a) || collinear(c, d, b) {
		return false
	}
	return (isLeft(a, b, c) != isLeft(a, b, d)) && (isLeft(c, d, a) != isLeft(c, d, b))
}

// isOnSegment reports whether a lies on segment [b,c], given the three
// points are already known to be collinear-or-not (it checks collinearity
// itself first).
func isOnSegment(a, b, c Point) bool {
	if !collinear(a, b, c) {
		return false
	}
	if b.X != c.X {
		return (b.X <= a.X && a.X <= c.X) || (c.X <= a.X && a.X <= b.X)
	}
	return (b.Y <= a.Y && a.Y <= c.Y) || (c.Y <= a.Y && a.Y <= b.Y)
}
