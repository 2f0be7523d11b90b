package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawWireframe renders the model edges using thin cylinders
func (app *App) drawWireframe() {
	// Dark gray blends better with the filled surface
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	wireframeThickness := app.Camera.distance * 0.0001 // Scale with camera distance for constant screen thickness
	cylinderSegments := int32(8)

	// Track drawn edges to avoid duplicates
	drawnEdges := make(map[string]bool)

	buf := app.Model.buffer
	for f := 0; f < buf.FaceCount(); f++ {
		i := f * 3
		v1 := rl.Vector3{X: float32(buf.Position[i].X), Y: float32(buf.Position[i].Y), Z: float32(buf.Position[i].Z)}
		v2 := rl.Vector3{X: float32(buf.Position[i+1].X), Y: float32(buf.Position[i+1].Y), Z: float32(buf.Position[i+1].Z)}
		v3 := rl.Vector3{X: float32(buf.Position[i+2].X), Y: float32(buf.Position[i+2].Y), Z: float32(buf.Position[i+2].Z)}

		edges := [][2]rl.Vector3{{v1, v2}, {v2, v3}, {v3, v1}}
		for _, edge := range edges {
			edgeKey := fmt.Sprintf("%.6f,%.6f,%.6f-%.6f,%.6f,%.6f", edge[0].X, edge[0].Y, edge[0].Z, edge[1].X, edge[1].Y, edge[1].Z)
			if !drawnEdges[edgeKey] {
				drawnEdges[edgeKey] = true
				rl.DrawCylinderEx(edge[0], edge[1], wireframeThickness, wireframeThickness, cylinderSegments, wireframeColor)
			}
		}
	}
}
