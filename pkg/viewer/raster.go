package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// RenderOptions controls the software rasterizer
type RenderOptions struct {
	Width      int
	Height     int
	Background color.RGBA
	BaseColor  mesh.Color // used when the buffer has no color attribute
}

// DefaultRenderOptions returns the options used by the render command
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:      1024,
		Height:     768,
		Background: color.RGBA{R: 15, G: 18, B: 25, A: 255},
		BaseColor:  mesh.Color{R: 0.62, G: 0.67, B: 0.78},
	}
}

// RenderImage renders the buffer with flat diffuse shading and a
// z-buffer into an RGBA image. Per-vertex colors, including brush
// highlights, are respected when present.
func RenderImage(buf *mesh.Buffer, cam *Camera, opts RenderOptions) *image.RGBA {
	w, h := opts.Width, opts.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, opts.Background)
		}
	}

	zbuffer := make([]float64, w*h)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	for f := 0; f < buf.FaceCount(); f++ {
		i := f * 3

		var sx, sy, sz [3]float64
		behind := false
		for j := 0; j < 3; j++ {
			x, y, z := cam.Project(buf.Position[i+j], float64(w), float64(h))
			if z <= 0 {
				behind = true
				break
			}
			sx[j], sy[j], sz[j] = x, y, z
		}
		if behind {
			continue
		}

		col := rgbaFor(buf, f, opts.BaseColor, lightDir)
		fillTriangle(img, zbuffer, sx, sy, sz, col)
	}

	return img
}

// rgbaFor shades one face: its buffer color (or the base color) scaled
// by flat diffuse lighting with an ambient floor
func rgbaFor(buf *mesh.Buffer, f int, base mesh.Color, lightDir geometry.Vector3) color.RGBA {
	c := base
	if buf.HasColors() {
		c = buf.Color[f*3]
	}

	normal := buf.Face(f).Normal
	if normal.Length() == 0 {
		normal = buf.Face(f).CalculateNormal()
	}
	intensity := math.Max(0.3, -normal.Dot(lightDir))

	return color.RGBA{
		R: channel(c.R * intensity),
		G: channel(c.G * intensity),
		B: channel(c.B * intensity),
		A: 255,
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// fillTriangle rasterizes one triangle with scanlines and depth testing
func fillTriangle(img *image.RGBA, zbuffer []float64, sx, sy, sz [3]float64, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	minY := int(math.Max(0, math.Floor(math.Min(sy[0], math.Min(sy[1], sy[2])))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(math.Max(sy[0], math.Max(sy[1], sy[2])))))

	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}

	for y := minY; y <= maxY; y++ {
		fy := float64(y)

		// Collect intersections of the scanline with the edges
		var xs, zs [3]float64
		n := 0
		for _, e := range edges {
			y1, y2 := sy[e[0]], sy[e[1]]
			if y1 == y2 {
				continue
			}
			if (fy < y1 && fy < y2) || (fy > y1 && fy > y2) {
				continue
			}
			t := (fy - y1) / (y2 - y1)
			xs[n] = sx[e[0]] + t*(sx[e[1]]-sx[e[0]])
			zs[n] = sz[e[0]] + t*(sz[e[1]]-sz[e[0]])
			n++
			if n == 3 {
				break
			}
		}
		if n < 2 {
			continue
		}

		xStart, zStart := xs[0], zs[0]
		xEnd, zEnd := xs[1], zs[1]
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		x0 := int(math.Max(0, math.Ceil(xStart)))
		x1 := int(math.Min(float64(bounds.Max.X-1), math.Floor(xEnd)))

		for x := x0; x <= x1; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}
