package cmd

import "github.com/D8H/NavMeshGenerator/navmesh"

// buildSettings is the YAML-serializable counterpart of navmesh.Config,
// generalized from sample/solomesh/settings.go's Settings/NewSettings
// default-value constructor pattern (that file also keeps a plain,
// serialization-friendly struct separate from the package's runtime type).
type buildSettings struct {
	AreaLeftBound         float32 `yaml:"areaLeftBound"`
	AreaTopBound          float32 `yaml:"areaTopBound"`
	AreaRightBound        float32 `yaml:"areaRightBound"`
	AreaBottomBound       float32 `yaml:"areaBottomBound"`
	RasterizationCellSize float32 `yaml:"rasterizationCellSize"`
	IsometricRatio        float32 `yaml:"isometricRatio"`
	MaxVerticesPerPolygon int32   `yaml:"maxVerticesPerPolygon"`
	ObstacleCellPadding   int32   `yaml:"obstacleCellPadding"`
}

func defaultBuildSettings() buildSettings {
	def := navmesh.DefaultConfig()
	return buildSettings{
		AreaLeftBound:         0,
		AreaTopBound:          0,
		AreaRightBound:        800,
		AreaBottomBound:       600,
		RasterizationCellSize: 10,
		IsometricRatio:        def.IsometricRatio,
		MaxVerticesPerPolygon: def.MaxVerticesPerPolygon,
		ObstacleCellPadding:   1,
	}
}

func (s buildSettings) toConfig() navmesh.Config {
	return navmesh.Config{
		AreaLeftBound:         s.AreaLeftBound,
		AreaTopBound:          s.AreaTopBound,
		AreaRightBound:        s.AreaRightBound,
		AreaBottomBound:       s.AreaBottomBound,
		RasterizationCellSize: s.RasterizationCellSize,
		IsometricRatio:        s.IsometricRatio,
		MaxVerticesPerPolygon: s.MaxVerticesPerPolygon,
	}
}
