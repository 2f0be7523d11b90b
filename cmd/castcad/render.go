package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/alselawi/castcad/pkg/stl"
	"github.com/alselawi/castcad/pkg/viewer"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render an STL file to a PNG image",
	Long:  "Render the model with the software rasterizer and write the result as a PNG file. Per-face STL colors are respected when present.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "out.png", "output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1024, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 768, "image height in pixels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	buffer, warnings, err := stl.Parse(args[0])
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: skipped malformed facet %d in solid %q: %v\n", w.Facet, w.Solid, w.Err)
	}

	cam := viewer.NewCamera(buffer.BoundingBox())
	cam.Rotate(0.3, 0.5)

	opts := viewer.DefaultRenderOptions()
	opts.Width = renderWidth
	opts.Height = renderHeight

	img := viewer.RenderImage(buffer, cam, opts)

	out, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	fmt.Printf("Rendered %d triangles to %s (%dx%d)\n", buffer.FaceCount(), renderOutput, renderWidth, renderHeight)
	return nil
}
