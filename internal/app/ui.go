package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawUI draws the 2D overlay: info panel, selection state and the
// multi-select rectangle
func (app *App) drawUI() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	if app.View.showInfo {
		app.drawInfoPanel()
	}

	// Selection status (bottom-left corner)
	selected := app.Brush.Selection().Len()
	if selected > 0 {
		statusText := fmt.Sprintf("%d face(s) selected  [X] cut  [C/ESC] clear", selected)
		rl.DrawRectangle(10, screenHeight-40, int32(rl.MeasureText(statusText, 16))+20, 30, rl.NewColor(0, 0, 0, 200))
		rl.DrawText(statusText, 20, screenHeight-33, 16, rl.Yellow)
	}

	// Multi-select rectangle overlay
	if app.Interaction.isSelectingWithRect {
		x := min32(int32(app.Interaction.rectStart.X), int32(app.Interaction.rectEnd.X))
		y := min32(int32(app.Interaction.rectStart.Y), int32(app.Interaction.rectEnd.Y))
		w := abs32(int32(app.Interaction.rectEnd.X) - int32(app.Interaction.rectStart.X))
		h := abs32(int32(app.Interaction.rectEnd.Y) - int32(app.Interaction.rectStart.Y))
		rl.DrawRectangle(x, y, w, h, rl.NewColor(100, 150, 255, 40))
		rl.DrawRectangleLines(x, y, w, h, rl.NewColor(100, 150, 255, 200))
	}

	// Loading indicator (top-right corner)
	if app.FileWatch.isLoading.Load() {
		elapsed := time.Since(app.FileWatch.loadingStart).Seconds()
		loadingText := fmt.Sprintf("Reloading... (%.1fs)", elapsed)
		boxWidth := int32(rl.MeasureText(loadingText, 16)) + 20
		rl.DrawRectangle(screenWidth-boxWidth-10, 10, boxWidth, 30, rl.NewColor(0, 0, 0, 200))
		rl.DrawText(loadingText, screenWidth-boxWidth, 17, 16, rl.Orange)
	}

	// Help line (bottom edge)
	helpText := "Drag on model: paint | Ctrl+drag: rect select | Shift+drag: pan | [W]ire [F]ill [I]nfo | [T]op [B]ottom [1-4] views | [Home] reset"
	rl.DrawText(helpText, 10, screenHeight-15, 10, rl.Gray)
}

// drawInfoPanel draws model statistics in the top-left corner
func (app *App) drawInfoPanel() {
	if app.Info == nil {
		return
	}

	y := int32(10)
	lineHeight := int32(20)

	lines := []string{
		app.Model.buffer.Name,
		fmt.Sprintf("Triangles: %d", app.Info.TriangleCount),
		fmt.Sprintf("Size: %.2f x %.2f x %.2f", app.Info.Dimensions.X, app.Info.Dimensions.Y, app.Info.Dimensions.Z),
		fmt.Sprintf("Surface area: %.2f", app.Info.SurfaceArea),
	}
	for _, g := range app.Info.Groups {
		lines = append(lines, fmt.Sprintf("  solid %q: %d faces", g.Name, g.FaceCount))
	}

	panelWidth := int32(0)
	for _, line := range lines {
		if w := int32(rl.MeasureText(line, 16)); w > panelWidth {
			panelWidth = w
		}
	}
	rl.DrawRectangle(5, 5, panelWidth+20, int32(len(lines))*lineHeight+10, rl.NewColor(0, 0, 0, 180))

	for i, line := range lines {
		color := rl.RayWhite
		if i == 0 {
			color = rl.SkyBlue
		}
		rl.DrawText(line, 15, y+int32(i)*lineHeight, 16, color)
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
