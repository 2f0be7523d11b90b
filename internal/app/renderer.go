package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// rebuildMesh replaces the GPU mesh with one built from the current
// buffer. Called after load, paint and cut; must run on the main thread.
func (app *App) rebuildMesh() {
	newMesh := bufferToRaylibMesh(app.Model.buffer, app.Brush.Base)

	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.rlMesh)
	}
	app.Model.rlMesh = newMesh
	app.Model.hasMesh = true
	app.Model.meshDirty = false
}

// bufferToRaylibMesh converts a triangle buffer to a raylib mesh with
// lighting baked into the vertex colors. Buffer colors modulate the
// diffuse term; faces without a color attribute use the base color.
func bufferToRaylibMesh(buf *mesh.Buffer, base mesh.Color) rl.Mesh {
	triangleCount := buf.FaceCount()
	vertexCount := triangleCount * 3

	rlMesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	for f := 0; f < triangleCount; f++ {
		tri := buf.Face(f)
		normal := tri.Normal
		if normal.Length() == 0 {
			normal = tri.CalculateNormal()
		}

		// Diffuse with a 30% ambient floor
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))

		for v := 0; v < 3; v++ {
			idx := f*3 + v
			pos := buf.Position[idx]

			vertices[idx*3+0] = float32(pos.X)
			vertices[idx*3+1] = float32(pos.Y)
			vertices[idx*3+2] = float32(pos.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = 0
			texcoords[idx*2+1] = 0

			c := base
			if buf.HasColors() {
				c = buf.Color[idx]
			}
			colors[idx*4+0] = shade(c.R, lightIntensity)
			colors[idx*4+1] = shade(c.G, lightIntensity)
			colors[idx*4+2] = shade(c.B, lightIntensity)
			colors[idx*4+3] = 255
		}
	}

	if len(vertices) > 0 {
		rlMesh.Vertices = &vertices[0]
		rlMesh.Normals = &normals[0]
		rlMesh.Texcoords = &texcoords[0]
		rlMesh.Colors = &colors[0]
	}

	rl.UploadMesh(&rlMesh, false)

	return rlMesh
}

// shade converts a 0..1 channel to a lit 0..255 byte
func shade(channel, intensity float64) uint8 {
	v := channel * intensity * 255.0
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
