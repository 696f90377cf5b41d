package navmesh

// Config holds the parameters of a Builder. Field doc comments follow the
// teacher's recast.Config convention of stating units and limits.
type Config struct {
	// AreaLeftBound, AreaTopBound, AreaRightBound, AreaBottomBound
	// delimit the walkable area in world units. [Limit: left < right,
	// top < bottom]
	AreaLeftBound   float32
	AreaTopBound    float32
	AreaRightBound  float32
	AreaBottomBound float32

	// RasterizationCellSize is the world-unit width (and, absent an
	// isometric ratio, height) of one grid cell. [Limit: > 0]
	RasterizationCellSize float32

	// IsometricRatio stretches the grid's vertical resolution relative
	// to its horizontal one, so cells drawn in an isometric projection
	// appear square on screen. 1 means no stretch. [Limit: > 0]
	IsometricRatio float32

	// MaxVerticesPerPolygon caps how many vertices the convex polygon
	// generator may merge triangles into. [Limit: >= 3]
	MaxVerticesPerPolygon int32

	// Context, if non-nil, is used in place of an internally allocated
	// BuildContext. Lets callers share one logger/timer set across
	// multiple Builders.
	Context *BuildContext
}

// DefaultConfig returns a Config with IsometricRatio and
// MaxVerticesPerPolygon set to their library defaults; area bounds and
// cell size are left zero and must still be filled in by the caller.
func DefaultConfig() Config {
	return Config{
		IsometricRatio:        1,
		MaxVerticesPerPolygon: 16,
	}
}

// Validate checks the configuration for the invariants Build relies on.
func (c Config) Validate() error {
	if !(c.AreaLeftBound < c.AreaRightBound) || !(c.AreaTopBound < c.AreaBottomBound) {
		return ErrInvertedBounds
	}
	if c.RasterizationCellSize <= 0 {
		return ErrNonPositiveCellSize
	}
	if c.IsometricRatio <= 0 {
		return ErrNonPositiveIsometricRatio
	}
	if c.MaxVerticesPerPolygon < 3 {
		return ErrNonPositiveMaxVertices
	}
	return nil
}
