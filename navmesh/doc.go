// Package navmesh generates a 2D navigation mesh — a set of convex,
// clockwise-wound polygons tiling a rectangular walkable area minus a set of
// polygonal obstacles.
//
// The pipeline rasterizes obstacles onto a Grid, computes a distance field,
// floods regions with a watershed algorithm, walks and simplifies region
// contours, and decomposes each contour into convex polygons. It is a 2D,
// pixel-grid generalization of the voxel-based Recast pipeline.
package navmesh
