package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/D8H/NavMeshGenerator/navmesh"
)

// obstacleFile is the on-disk YAML shape accepted by --input: a list of
// obstacles, each a list of {x,y} points.
type obstacleFile struct {
	Obstacles [][]navmesh.Vec2 `yaml:"obstacles"`
}

var (
	cfgVal   string
	inputVal string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "build a navigation mesh from an obstacle file",
	Long: `Build a navigation mesh from a YAML obstacle file (a list of
polygon obstacles), using the build settings loaded from --config, and
print the resulting polygons to standard output.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := defaultBuildSettings()
		if cfgVal != "" {
			if err := unmarshalYAMLFile(cfgVal, &settings); err != nil {
				fmt.Println("could not load settings,", err)
				return
			}
		}

		var obstacles obstacleFile
		if inputVal != "" {
			if err := unmarshalYAMLFile(inputVal, &obstacles); err != nil {
				fmt.Println("could not load obstacles,", err)
				return
			}
		}

		builder, err := navmesh.NewBuilder(settings.toConfig())
		if err != nil {
			fmt.Println("invalid build settings,", err)
			return
		}

		result, err := builder.Build(navmesh.NewSliceObstacleSeq(obstacles.Obstacles), settings.ObstacleCellPadding)
		if err != nil {
			fmt.Println("build failed,", err)
			return
		}

		fmt.Printf("%d polygons (%d islands discarded)\n", len(result.Polygons), result.DiscardedIslands)
		for i, poly := range result.Polygons {
			fmt.Printf("polygon %d:\n", i)
			for _, p := range poly.Points {
				fmt.Printf("  (%f, %f)\n", p.X, p.Y)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&cfgVal, "config", "navmesh.yml", "build settings")
	buildCmd.Flags().StringVar(&inputVal, "input", "", "input obstacles YAML file (no obstacles if omitted)")
}
