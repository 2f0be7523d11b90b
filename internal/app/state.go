package app

import (
	"sync"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alselawi/castcad/internal/config"
	"github.com/alselawi/castcad/pkg/analysis"
	"github.com/alselawi/castcad/pkg/brush"
	"github.com/alselawi/castcad/pkg/mesh"
	"github.com/alselawi/castcad/pkg/stl"
	"github.com/alselawi/castcad/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// ModelData holds the loaded triangle buffer and its GPU mesh
type ModelData struct {
	buffer    *mesh.Buffer
	rlMesh    rl.Mesh
	hasMesh   bool
	material  rl.Material
	center    rl.Vector3 // Model center
	size      float32    // Model size (max dimension)
	meshDirty bool       // Vertex colors changed, GPU mesh needs a rebuild
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showInfo      bool
}

// InteractionState holds mouse and gesture state
type InteractionState struct {
	isPanning    bool
	mouseMoved   bool
	mouseDownPos rl.Vector2
	// Ctrl-drag multi-select rectangle
	isSelectingWithRect bool
	rectStart           rl.Vector2
	rectEnd             rl.Vector2
}

// loadedModel is the result of a background reload, applied on the
// main thread
type loadedModel struct {
	buffer   *mesh.Buffer
	warnings []stl.Warning
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile   string
	fileWatcher  *watcher.FileWatcher
	needsReload  atomic.Bool
	isLoading    atomic.Bool
	loadingStart time.Time

	mu     sync.Mutex
	loaded *loadedModel
}

// App holds the complete editor state
type App struct {
	Config      *config.Config
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	Brush       *brush.Brush
	Info        *analysis.Result
}
