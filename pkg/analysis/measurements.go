// Package analysis computes model statistics for the info command and
// the GUI info panel.
package analysis

import (
	"fmt"
	"math"

	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// GroupInfo describes one named solid group of the buffer
type GroupInfo struct {
	Name      string
	FaceCount int
}

// Result contains various measurements of a triangle buffer
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	HasNormals    bool
	HasColors     bool
	Groups        []GroupInfo
}

// Analyze performs comprehensive analysis on a triangle buffer
func Analyze(buf *mesh.Buffer) *Result {
	result := &Result{
		BoundingBox:   buf.BoundingBox(),
		SurfaceArea:   buf.SurfaceArea(),
		TriangleCount: buf.FaceCount(),
		HasNormals:    buf.HasNormals(),
		HasColors:     buf.HasColors(),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for f := 0; f < buf.FaceCount(); f++ {
		for _, length := range buf.Face(f).EdgeLengths() {
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = buf.FaceCount() * 3
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	for _, g := range buf.Groups {
		result.Groups = append(result.Groups, GroupInfo{
			Name:      g.Name,
			FaceCount: g.Count / 3,
		})
	}

	return result
}

// AverageEdgeLength estimates the typical vertex spacing by sampling
// up to sampleLimit faces
func AverageEdgeLength(buf *mesh.Buffer, sampleLimit int) float64 {
	faces := buf.FaceCount()
	if faces == 0 {
		return 1.0
	}
	if sampleLimit > 0 && faces > sampleLimit {
		faces = sampleLimit
	}

	total := 0.0
	count := 0
	for f := 0; f < faces; f++ {
		for _, length := range buf.Face(f).EdgeLengths() {
			total += length
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	return total / float64(count)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
