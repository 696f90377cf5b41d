package navmesh

// PointSeq is a pull-based, lazy sequence of world-space points describing
// one obstacle's boundary. Next returns false once exhausted.
type PointSeq interface {
	Next() (Vec2, bool)
}

// ObstacleSeq is a pull-based, lazy sequence of obstacles, each itself a
// PointSeq. Generalizes the teacher's eager MeshLoaderObj/InputGeom loader
// shape to a streaming pull interface.
type ObstacleSeq interface {
	Next() (PointSeq, bool)
}

// SlicePointSeq adapts a pre-built []Vec2 slice to PointSeq.
type SlicePointSeq struct {
	points []Vec2
	i      int
}

// NewSlicePointSeq wraps points for one-pass iteration.
func NewSlicePointSeq(points []Vec2) *SlicePointSeq {
	return &SlicePointSeq{points: points}
}

func (s *SlicePointSeq) Next() (Vec2, bool) {
	if s.i >= len(s.points) {
		return Vec2{}, false
	}
	p := s.points[s.i]
	s.i++
	return p, true
}

// SliceObstacleSeq adapts a [][]Vec2 slice of obstacle polygons to
// ObstacleSeq. It reuses a single internal SlicePointSeq across calls to
// Next, so iterating the whole sequence allocates no per-obstacle
// PointSeq.
type SliceObstacleSeq struct {
	obstacles [][]Vec2
	i         int
	cur       SlicePointSeq
}

// NewSliceObstacleSeq wraps obstacles for one-pass iteration.
func NewSliceObstacleSeq(obstacles [][]Vec2) *SliceObstacleSeq {
	return &SliceObstacleSeq{obstacles: obstacles}
}

func (s *SliceObstacleSeq) Next() (PointSeq, bool) {
	if s.i >= len(s.obstacles) {
		return nil, false
	}
	s.cur = SlicePointSeq{points: s.obstacles[s.i]}
	s.i++
	return &s.cur, true
}
