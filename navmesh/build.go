package navmesh

// Builder generates navigation meshes for one fixed Config. It owns a Grid
// and a set of scratch buffers that are reused across Build calls rather
// than reallocated, matching the teacher's per-call buffer allocation
// inside BuildPolyMesh but hoisted to struct fields since this spec calls
// for reuse across builds, not just within one.
type Builder struct {
	cfg  Config
	grid *Grid
	ctx  *BuildContext

	scratchVerts   []Vec2
	scratchNodes   []float32
	scratchVisited []bool
	scratchQueue   []Point
	scratchAssign  []cellAssign
}

// NewBuilder validates cfg and allocates the Grid (including its one-cell
// sentinel obstacle border).
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = NewBuildContext(true)
	}
	g := newGrid(cfg.AreaLeftBound, cfg.AreaTopBound, cfg.AreaRightBound, cfg.AreaBottomBound,
		cfg.RasterizationCellSize, cfg.IsometricRatio)
	return &Builder{
		cfg:            cfg,
		grid:           g,
		ctx:            ctx,
		scratchVisited: make([]bool, g.dimX*g.dimY),
	}, nil
}

// Polygon is one convex, clockwise, world-space polygon of a generated
// mesh.
type Polygon struct {
	Points []Vec2
}

// MeshResult is the outcome of one Build call.
type MeshResult struct {
	Polygons []Polygon

	// DiscardedIslands counts single-cell regions whose four neighbors
	// all differed from its own region; such cells are unreachable by
	// any path-relevant polygon and are dropped rather than meshed.
	DiscardedIslands int32

	// ContourCountMismatch reports whether the number of surviving
	// contours plus discarded islands didn't equal regionCount-1, the
	// invariant violation spec.md calls out as "log, don't fail".
	ContourCountMismatch bool
}

// Build rasterizes obstacles, computes the distance field, floods regions,
// extracts and simplifies contours, and decomposes them into convex
// polygons. The Builder (and its Grid) may be reused for another Build
// call afterward; Build always clears the grid first. Grounded on
// sample/solomesh/builder.go's Build: step-bracketed timers and progress
// logging around each pipeline stage.
func (b *Builder) Build(obstacles ObstacleSeq, obstacleCellPadding int32) (*MeshResult, error) {
	if obstacleCellPadding < 0 {
		return nil, ErrNegativePadding
	}

	b.grid.Clear()
	b.ctx.ResetLog()
	b.ctx.ResetTimers()
	b.ctx.StartTimer(TimerTotal)
	defer b.ctx.StopTimer(TimerTotal)

	b.ctx.StartTimer(TimerRasterize)
	for {
		obstacle, ok := obstacles.Next()
		if !ok {
			break
		}
		b.rasterizeObstacle(obstacle)
	}
	b.ctx.StopTimer(TimerRasterize)

	b.ctx.StartTimer(TimerDistanceField)
	maxDist := b.buildDistanceField()
	b.ctx.StopTimer(TimerDistanceField)

	b.ctx.StartTimer(TimerRegions)
	b.floodRegions(maxDist, obstacleCellPadding)
	b.ctx.StopTimer(TimerRegions)

	b.ctx.StartTimer(TimerContours)
	contours, discarded, mismatch := b.buildContours()
	b.ctx.StopTimer(TimerContours)

	b.ctx.StartTimer(TimerPolyMesh)
	var polys []Polygon
	for _, c := range contours {
		if len(c.Points) < 3 {
			continue
		}
		for _, gridPoly := range b.decomposeContour(c.Points) {
			polys = append(polys, Polygon{Points: b.toWorldSpace(gridPoly)})
		}
	}
	b.ctx.StopTimer(TimerPolyMesh)

	b.ctx.Progressf("navmesh: built %d polygons from %d contours (%d islands discarded)", len(polys), len(contours), discarded)

	return &MeshResult{
		Polygons:             polys,
		DiscardedIslands:     discarded,
		ContourCountMismatch: mismatch,
	}, nil
}

// toWorldSpace converts grid-space polygon points to world space, applying
// the isometric y-axis stretch-back described in spec.md §6 on top of the
// Grid's own (fully symmetric) basis conversion.
func (b *Builder) toWorldSpace(gridPoly []Point) []Vec2 {
	pts := make([]Vec2, len(gridPoly))
	for i, p := range gridPoly {
		w := b.grid.ConvertFromGridBasis(Vec2{X: float32(p.X), Y: float32(p.Y)})
		w.Y *= b.cfg.IsometricRatio
		pts[i] = w
	}
	return pts
}
