package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/alselawi/castcad/internal/logger"
	"github.com/alselawi/castcad/pkg/analysis"
	"github.com/alselawi/castcad/pkg/mesh"
	"github.com/alselawi/castcad/pkg/stl"
	"github.com/alselawi/castcad/pkg/watcher"
)

// loadBuffer parses an STL file into a triangle buffer, logging any
// decode warnings
func loadBuffer(filePath string) (*mesh.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext != ".stl" {
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl)", ext)
	}

	buffer, warnings, err := stl.Parse(filePath)
	if err != nil {
		return nil, err
	}
	logWarnings(warnings)

	logger.Info("model loaded",
		zap.String("file", filePath),
		zap.Int("triangles", buffer.FaceCount()),
		zap.Int("groups", len(buffer.Groups)))

	return buffer, nil
}

func logWarnings(warnings []stl.Warning) {
	for _, w := range warnings {
		logger.Warn("skipped malformed facet",
			zap.String("solid", w.Solid),
			zap.Int("facet", w.Facet),
			zap.Error(w.Err))
	}
}

// setupFileWatcher watches the source file for changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(app.Config.Reload.Debounce)
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	callback := func(changedFile string) {
		logger.Info("file changed", zap.String("file", changedFile))
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch(app.FileWatch.sourceFile, callback); err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	go func() {
		for err := range fw.Errors() {
			logger.Warn("file watcher error", zap.Error(err))
		}
	}()

	app.FileWatch.fileWatcher = fw
	logger.Info("watching file for changes", zap.String("file", app.FileWatch.sourceFile))

	return nil
}

// reloadModel reloads the model from the source file in the background.
// Mesh upload must happen on the main thread, so the result is parked
// until applyLoadedModel picks it up.
func (app *App) reloadModel() {
	if !app.FileWatch.isLoading.CompareAndSwap(false, true) {
		return
	}

	app.FileWatch.loadingStart = time.Now()
	logger.Info("reloading model")

	go func() {
		buffer, warnings, err := stl.Parse(app.FileWatch.sourceFile)
		if err != nil {
			// Keep showing the previous model on a failed reload
			logger.Error("reload failed, keeping previous model", zap.Error(err))
			app.FileWatch.mu.Lock()
			app.FileWatch.loaded = nil
			app.FileWatch.mu.Unlock()
			app.FileWatch.isLoading.Store(false)
			return
		}

		app.FileWatch.mu.Lock()
		app.FileWatch.loaded = &loadedModel{buffer: buffer, warnings: warnings}
		app.FileWatch.mu.Unlock()
	}()
}

// applyLoadedModel applies a background-loaded model on the main thread
func (app *App) applyLoadedModel() {
	app.FileWatch.mu.Lock()
	loaded := app.FileWatch.loaded
	app.FileWatch.loaded = nil
	app.FileWatch.mu.Unlock()

	if loaded == nil {
		return
	}
	logWarnings(loaded.warnings)

	// Preserve the camera framing across the reload
	savedDistance := app.Camera.distance
	savedAngleX := app.Camera.angleX
	savedAngleY := app.Camera.angleY
	savedTarget := app.Camera.target

	oldCenter := app.Model.center
	app.Model.buffer = loaded.buffer

	// The face indices of the old selection no longer apply
	app.Brush.Invalidate()

	bbox := loaded.buffer.BoundingBox()
	center := bbox.Center()
	size := bbox.Size()
	maxDim := size.X
	if size.Y > maxDim {
		maxDim = size.Y
	}
	if size.Z > maxDim {
		maxDim = size.Z
	}
	if maxDim == 0 {
		maxDim = 1
	}

	app.Model.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Model.size = float32(maxDim)

	app.Camera.distance = savedDistance
	app.Camera.angleX = savedAngleX
	app.Camera.angleY = savedAngleY
	app.Camera.target = rl.Vector3{
		X: savedTarget.X + app.Model.center.X - oldCenter.X,
		Y: savedTarget.Y + app.Model.center.Y - oldCenter.Y,
		Z: savedTarget.Z + app.Model.center.Z - oldCenter.Z,
	}

	app.rebuildMesh()
	app.Info = analysis.Analyze(loaded.buffer)

	elapsed := time.Since(app.FileWatch.loadingStart)
	logger.Info("model reloaded",
		zap.Int("triangles", loaded.buffer.FaceCount()),
		zap.Duration("elapsed", elapsed))

	app.FileWatch.isLoading.Store(false)
}
