package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/alselawi/castcad/pkg/brush"
	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// ModelViewer renders a triangle buffer as an interactive wireframe
// widget. Dragging orbits the camera; in paint mode dragging drives
// the brush selector instead, and selected faces are drawn highlighted.
type ModelViewer struct {
	widget.BaseWidget
	buffer     *mesh.Buffer
	camera     *Camera
	brush      *brush.Brush
	paintMode  bool
	lines      []*canvas.Line
	dragStart  *fyne.Position
	isDragging bool
	width      float64
	height     float64
	onChange   func()
}

// NewModelViewer creates a viewer for the given buffer
func NewModelViewer(buf *mesh.Buffer) *ModelViewer {
	v := &ModelViewer{
		buffer: buf,
		camera: NewCamera(buf.BoundingBox()),
		brush:  brush.New(),
		lines:  make([]*canvas.Line, 0),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback invoked after the selection or the
// buffer changes
func (v *ModelViewer) SetOnChange(callback func()) {
	v.onChange = callback
}

// Buffer returns the current triangle buffer
func (v *ModelViewer) Buffer() *mesh.Buffer {
	return v.buffer
}

// Brush returns the viewer's brush selector
func (v *ModelViewer) Brush() *brush.Brush {
	return v.brush
}

// SetPaintMode toggles between orbit and paint interaction
func (v *ModelViewer) SetPaintMode(enabled bool) {
	v.paintMode = enabled
	if !enabled {
		v.brush.PointerUp()
	}
}

// PaintMode reports whether drag gestures paint the selection
func (v *ModelViewer) PaintMode() bool {
	return v.paintMode
}

// SetBuffer replaces the buffer, resets the camera and drops the now
// stale selection
func (v *ModelViewer) SetBuffer(buf *mesh.Buffer) {
	v.buffer = buf
	v.camera = NewCamera(buf.BoundingBox())
	v.brush.Invalidate()
	v.Render(v.width, v.height)
	v.notify()
}

// ClearSelection empties the selection and restores the base colors
func (v *ModelViewer) ClearSelection() {
	v.brush.Clear(v.buffer)
	v.Render(v.width, v.height)
	v.notify()
}

// CutSelection removes the selected faces, replacing the buffer. The
// selection is invalidated since its indices refer to the old buffer.
func (v *ModelViewer) CutSelection() error {
	out, err := mesh.Cut(v.buffer, v.brush.Selection())
	if err != nil {
		return err
	}
	v.buffer = out
	v.brush.Invalidate()
	v.Render(v.width, v.height)
	v.notify()
	return nil
}

func (v *ModelViewer) notify() {
	if v.onChange != nil {
		v.onChange()
	}
}

// CreateRenderer creates the renderer for the widget
func (v *ModelViewer) CreateRenderer() fyne.WidgetRenderer {
	return &viewerRenderer{
		viewer:  v,
		objects: []fyne.CanvasObject{},
	}
}

// Render updates the wireframe view
func (v *ModelViewer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height

	v.lines = v.lines[:0]

	highlight := color.RGBA{
		R: uint8(v.brush.Highlight.R * 255),
		G: uint8(v.brush.Highlight.G * 255),
		B: uint8(v.brush.Highlight.B * 255),
		A: 255,
	}

	sel := v.brush.Selection()
	for f := 0; f < v.buffer.FaceCount(); f++ {
		i := f * 3
		selected := sel.Has(f)

		for j := 0; j < 3; j++ {
			v1 := v.buffer.Position[i+j]
			v2 := v.buffer.Position[i+(j+1)%3]

			x1, y1, z1 := v.camera.Project(v1, width, height)
			x2, y2, z2 := v.camera.Project(v2, width, height)
			if z1 <= 0 && z2 <= 0 {
				continue
			}

			var col color.Color
			if selected {
				col = highlight
			} else {
				// Simple depth-based shading
				avgZ := (z1 + z2) / 2
				brightness := uint8(math.Max(50, math.Min(255, 100+avgZ*5)))
				col = color.RGBA{brightness, brightness, brightness, 255}
			}

			line := canvas.NewLine(col)
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			v.lines = append(v.lines, line)
		}
	}

	v.Refresh()
}

func (v *ModelViewer) projector() brush.Projector {
	return ScreenProjector{Camera: v.camera, Width: v.width, Height: v.height}
}

// Dragged orbits the camera, or paints when paint mode is active
func (v *ModelViewer) Dragged(event *fyne.DragEvent) {
	pos := geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y))

	if v.paintMode {
		if !v.brush.Active() && !v.isDragging {
			v.brush.PointerDown(pos, v.projector(), v.buffer)
		} else if v.brush.Active() {
			v.brush.PointerMove(pos, v.projector(), v.buffer)
		}
		v.isDragging = true
		v.Render(v.width, v.height)
		v.notify()
		return
	}

	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y
		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	v.dragStart = &event.Position
	v.isDragging = true
}

// DragEnd ends the gesture; an accumulated paint selection persists
func (v *ModelViewer) DragEnd() {
	v.dragStart = nil
	v.isDragging = false
	v.brush.PointerUp()
}

// Scrolled zooms the camera
func (v *ModelViewer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	v.camera.Zoom(delta)
	v.Render(v.width, v.height)
}

// viewerRenderer implements fyne.WidgetRenderer
type viewerRenderer struct {
	viewer  *ModelViewer
	objects []fyne.CanvasObject
}

func (r *viewerRenderer) Layout(size fyne.Size) {
	r.viewer.Render(float64(size.Width), float64(size.Height))
}

func (r *viewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *viewerRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.viewer.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.viewer)
}

func (r *viewerRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *viewerRenderer) Destroy() {}
