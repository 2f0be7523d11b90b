package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alselawi/castcad/pkg/brush"
	"github.com/alselawi/castcad/pkg/geometry"
)

// handleInput processes user input
func (app *App) handleInput() {
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) || rl.IsKeyPressed(rl.KeyR) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setCameraBottomView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.View.showInfo = !app.View.showInfo
	}

	// Selection actions. Plain C clears; Ctrl+C is the exit shortcut
	// and is handled in the main loop.
	if (rl.IsKeyPressed(rl.KeyC) && !ctrlPressed) || rl.IsKeyPressed(rl.KeyEscape) {
		app.clearSelection()
	}
	if rl.IsKeyPressed(rl.KeyX) || rl.IsKeyPressed(rl.KeyDelete) {
		app.cutSelection()
	}

	mousePos := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mousePos
		app.Interaction.mouseMoved = false
		app.Interaction.isPanning = shiftPressed

		if ctrlPressed && !app.Interaction.isPanning {
			// Ctrl-drag spans a multi-select rectangle
			app.Interaction.isSelectingWithRect = true
			app.Interaction.rectStart = mousePos
			app.Interaction.rectEnd = mousePos
		} else if !app.Interaction.isPanning {
			// Painting activates only when the pick ray hits the mesh;
			// a press off-mesh falls through to camera rotation. The
			// press itself paints nothing, so the mesh stays clean.
			app.Brush.PointerDown(screenVec(mousePos), app.projector(), app.Model.buffer)
		}
	}

	// Camera panning with Shift + drag or middle mouse button
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}
	}

	if app.Interaction.isSelectingWithRect && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.Interaction.rectEnd = mousePos
	} else if app.Brush.Active() && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Brush.PointerMove(screenVec(mousePos), app.projector(), app.Model.buffer)
			app.Model.meshDirty = true
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) && !app.Interaction.isPanning {
		// Camera rotation with mouse drag
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			app.Interaction.mouseMoved = true
		}
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.angleY += delta.X * 0.01
			app.Camera.angleX -= delta.Y * 0.01

			// Clamp vertical rotation
			if app.Camera.angleX > 1.5 {
				app.Camera.angleX = 1.5
			}
			if app.Camera.angleX < -1.5 {
				app.Camera.angleX = -1.5
			}
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if app.Interaction.isSelectingWithRect {
			app.applySelectionRect()
			app.Interaction.isSelectingWithRect = false
		}
		app.Brush.PointerUp()
		app.Interaction.isPanning = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}
}

// clearSelection empties the brush selection and restores base colors
func (app *App) clearSelection() {
	if app.Brush.Selection().Len() == 0 {
		return
	}
	app.Brush.Clear(app.Model.buffer)
	app.Model.meshDirty = true
}

// applySelectionRect selects every face inside the drag rectangle
func (app *App) applySelectionRect() {
	rect := brush.Rect{
		Start: screenVec(app.Interaction.rectStart),
		End:   screenVec(app.Interaction.rectEnd),
	}
	app.Brush.SelectRect(rect, app.projector(), app.Model.buffer)
	app.Model.meshDirty = true
}

func screenVec(v rl.Vector2) geometry.Vector2 {
	return geometry.Vector2{X: float64(v.X), Y: float64(v.Y)}
}
