// Package app implements the interactive raylib editor: orbit viewing,
// brush selection and subtractive cutting of STL models.
package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/alselawi/castcad/internal/config"
	"github.com/alselawi/castcad/internal/logger"
	"github.com/alselawi/castcad/pkg/analysis"
	"github.com/alselawi/castcad/pkg/brush"
	"github.com/alselawi/castcad/pkg/mesh"
)

// Run starts the editor with the given model file
func Run(cfg *config.Config, sourceFile string) error {
	buffer, err := loadBuffer(sourceFile)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "CastCAD")
	rl.SetTargetFPS(60)

	app := &App{
		Config: cfg,
		Model: ModelData{
			buffer: buffer,
		},
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			showInfo:      true,
		},
		FileWatch: FileWatchState{
			sourceFile: sourceFile,
		},
		Brush: newBrush(cfg),
	}

	if cfg.Reload.Enabled {
		if err := app.setupFileWatcher(); err != nil {
			logger.Warn("file watching unavailable, auto-reload disabled", zap.Error(err))
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.Model.material = rl.LoadMaterialDefault()
	app.rebuildMesh()
	app.fitCameraToModel()
	app.Info = analysis.Analyze(app.Model.buffer)

	for {
		// ESC clears the selection instead of closing the window;
		// Ctrl+C or the close button exits.
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadModel()
		}
		app.applyLoadedModel()

		app.handleInput()
		app.updateCamera()

		if app.Model.meshDirty {
			app.rebuildMesh()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled && app.Model.hasMesh {
			rl.DrawMesh(app.Model.rlMesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.rlMesh)
	}
	rl.CloseWindow()
	return nil
}

// newBrush creates the paint brush configured from the config palette
func newBrush(cfg *config.Config) *brush.Brush {
	b := brush.New()
	b.Radius = cfg.Brush.RadiusPx
	b.Base = configColor(cfg.Brush.Base)
	b.Highlight = configColor(cfg.Brush.Highlight)
	return b
}

func configColor(c config.RGB) mesh.Color {
	return mesh.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fitCameraToModel frames the model and saves the view as the reset
// default
func (app *App) fitCameraToModel() {
	bbox := app.Model.buffer.BoundingBox()
	center := bbox.Center()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		maxDim = 1
	}
	distance := float32(maxDim * 2.0)

	app.Model.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Model.size = float32(maxDim)

	app.Camera.target = app.Model.center
	app.Camera.distance = distance
	app.Camera.angleX = 0.3
	app.Camera.angleY = 0.3
	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = 0.3
	app.Camera.defaultAngleY = 0.3

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// cutSelection removes the selected faces and replaces the buffer
func (app *App) cutSelection() {
	sel := app.Brush.Selection()
	if sel.Len() == 0 {
		return
	}

	out, err := mesh.Cut(app.Model.buffer, sel)
	if err != nil {
		logger.Error("cut failed", zap.Error(err))
		return
	}

	logger.Info("cut selection",
		zap.Int("removed_faces", sel.Len()),
		zap.Int("remaining_faces", out.FaceCount()))

	app.Model.buffer = out
	app.Brush.Invalidate()
	app.Model.meshDirty = true
	app.Info = analysis.Analyze(out)
}
