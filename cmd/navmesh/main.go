package main

import "github.com/D8H/NavMeshGenerator/cmd/navmesh/cmd"

func main() {
	cmd.Execute()
}
