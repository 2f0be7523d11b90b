package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/alselawi/castcad/pkg/analysis"
	"github.com/alselawi/castcad/pkg/stl"
	"github.com/alselawi/castcad/pkg/viewer"
)

type App struct {
	window         fyne.Window
	viewer         *viewer.ModelViewer
	modelInfoLabel *widget.Label
	selectionLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("CastCAD - STL Editor")

	appInstance := &App{
		window: w,
	}

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to CastCAD")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open STL File' to load a 3D model")

	openButton := widget.NewButton("Open STL File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	buffer, warnings, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load STL file: %w", err), a.window)
		return
	}
	if len(warnings) > 0 {
		dialog.ShowInformation("Decode warnings",
			fmt.Sprintf("%d malformed facet(s) were skipped", len(warnings)), a.window)
	}

	if a.viewer == nil {
		a.viewer = viewer.NewModelViewer(buffer)
		a.setupMainUI()
	} else {
		a.viewer.SetBuffer(buffer)
	}
	a.updateInfo()
}

func (a *App) setupMainUI() {
	a.modelInfoLabel = widget.NewLabel("")
	a.selectionLabel = widget.NewLabel("Selected: 0 faces")
	a.selectionLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.viewer.SetOnChange(func() {
		a.updateInfo()
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	paintCheck := widget.NewCheck("Paint Selection", func(checked bool) {
		a.viewer.SetPaintMode(checked)
	})

	clearButton := widget.NewButton("Clear Selection", func() {
		a.viewer.ClearSelection()
	})

	cutButton := widget.NewButton("Cut Selection", func() {
		if err := a.viewer.CutSelection(); err != nil {
			dialog.ShowError(err, a.window)
		}
	})

	// Instructions
	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Enable Paint Selection, then drag\n" +
			"  over the model to select faces\n" +
			"• Cut removes the selected faces",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		a.modelInfoLabel,
		widget.NewSeparator(),
		a.selectionLabel,
		widget.NewSeparator(),
		widget.NewLabel("Tools:"),
		paintCheck,
		clearButton,
		cutButton,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.viewer,   // center
	)

	a.window.SetContent(content)

	a.viewer.Render(800, 600)
}

func (a *App) updateInfo() {
	buffer := a.viewer.Buffer()
	result := analysis.Analyze(buffer)

	modelInfo := fmt.Sprintf(
		"Model: %s\nTriangles: %d\nEdges: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		buffer.Name,
		result.TriangleCount,
		result.EdgeCount,
		result.SurfaceArea,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	)
	a.modelInfoLabel.SetText(modelInfo)
	a.selectionLabel.SetText(fmt.Sprintf("Selected: %d faces", a.viewer.Brush().Selection().Len()))
}
