package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLeft(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	c := Point{5, 5}
	assert.True(t, isLeft(a, b, c) || isLeft(b, a, c), "one of the two windings should see c as a left turn")
	assert.False(t, collinear(a, b, c), "c is not on line a-b")
}

func TestCollinear(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	c := Point{5, 0}
	assert.True(t, collinear(a, b, c), "c lies on segment a-b")
}

func TestDistPtSegSq(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	assert.InDelta(t, 0.0, distPtSegSq(Point{5, 0}, a, b), 1e-9, "point on the segment has zero distance")
	assert.InDelta(t, 25.0, distPtSegSq(Point{5, 5}, a, b), 1e-9, "perpendicular distance to the segment")
	assert.InDelta(t, 125.0, distPtSegSq(Point{-5, -10}, a, b), 1e-9, "distance clamps to segment endpoint a")
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, segmentsIntersect(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0}), "crossing diagonals intersect")
	assert.False(t, segmentsIntersect(Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5}), "parallel segments do not intersect")
	assert.True(t, segmentsIntersect(Point{0, 0}, Point{10, 0}, Point{5, -5}, Point{5, 5}), "a segment crossing another at its midpoint")
}
