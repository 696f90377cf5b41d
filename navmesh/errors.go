package navmesh

import "errors"

var (
	// ErrInvertedBounds is returned when the configured area's left/top
	// bound does not lie strictly before its right/bottom bound.
	ErrInvertedBounds = errors.New("navmesh: area bounds are inverted or degenerate")

	// ErrNonPositiveCellSize is returned when RasterizationCellSize <= 0.
	ErrNonPositiveCellSize = errors.New("navmesh: rasterization cell size must be positive")

	// ErrNonPositiveIsometricRatio is returned when IsometricRatio <= 0.
	ErrNonPositiveIsometricRatio = errors.New("navmesh: isometric ratio must be positive")

	// ErrNonPositiveMaxVertices is returned when MaxVerticesPerPolygon < 3.
	ErrNonPositiveMaxVertices = errors.New("navmesh: max vertices per polygon must be at least 3")

	// ErrNegativePadding is returned by Build when obstacleCellPadding < 0.
	ErrNegativePadding = errors.New("navmesh: obstacle cell padding must not be negative")
)
