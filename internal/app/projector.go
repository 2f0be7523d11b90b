package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alselawi/castcad/pkg/geometry"
)

// cameraProjector adapts the raylib camera to the brush projector
// interface, so the same brush core drives this frontend and the
// software viewer.
type cameraProjector struct {
	camera rl.Camera3D
}

// Project returns the screen position of a world-space point. A point
// behind the camera is reported as not visible.
func (p cameraProjector) Project(world geometry.Vector3) (geometry.Vector2, bool) {
	pos := rl.Vector3{X: float32(world.X), Y: float32(world.Y), Z: float32(world.Z)}
	screen := rl.GetWorldToScreen(pos, p.camera)

	forward := rl.Vector3Normalize(rl.Vector3Subtract(p.camera.Target, p.camera.Position))
	toPoint := rl.Vector3Subtract(pos, p.camera.Position)
	visible := rl.Vector3DotProduct(forward, toPoint) > 0

	return geometry.Vector2{X: float64(screen.X), Y: float64(screen.Y)}, visible
}

// PickRay returns the world-space ray through a screen position
func (p cameraProjector) PickRay(screen geometry.Vector2) geometry.Ray {
	ray := rl.GetMouseRay(rl.Vector2{X: float32(screen.X), Y: float32(screen.Y)}, p.camera)
	return geometry.NewRay(
		geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
		geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
	)
}

// projector returns the adapter for the current camera
func (app *App) projector() cameraProjector {
	return cameraProjector{camera: app.Camera.camera}
}
