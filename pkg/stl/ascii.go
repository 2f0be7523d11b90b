package stl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// Warning records a soft parse error: a malformed facet that was
// skipped while the rest of the file continued to parse.
type Warning struct {
	Solid string
	Facet int
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("solid %q facet %d: %v", w.Solid, w.Facet, w.Err)
}

// The ASCII grammar is scanned with regular expressions rather than a
// strict recursive parser, tolerating whitespace and ordering noise.
var (
	numberPattern = `[\s]+([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`

	solidRegexp  = regexp.MustCompile(`solid([\s\S]*?)endsolid`)
	facetRegexp  = regexp.MustCompile(`facet([\s\S]*?)endfacet`)
	normalRegexp = regexp.MustCompile(`normal` + numberPattern + numberPattern + numberPattern)
	vertexRegexp = regexp.MustCompile(`vertex` + numberPattern + numberPattern + numberPattern)
)

// decodeASCII parses the text variant: zero or more named solid groups
// of facet blocks. Every facet must yield exactly one normal and three
// vertices; a facet that does not is skipped and reported as a warning
// without aborting the file. Each solid becomes a named group over the
// accumulated vertex stream.
func decodeASCII(data []byte) (*mesh.Buffer, []Warning, error) {
	buf := mesh.NewBuffer("")
	buf.Position = []geometry.Vector3{}
	buf.Normal = []geometry.Vector3{}

	var warnings []Warning

	for _, solidMatch := range solidRegexp.FindAllSubmatch(data, -1) {
		body := solidMatch[1]
		name := solidName(body)
		start := len(buf.Position)

		for facetIndex, facetMatch := range facetRegexp.FindAllSubmatch(body, -1) {
			facet := facetMatch[1]

			normals := normalRegexp.FindAllSubmatch(facet, -1)
			vertices := vertexRegexp.FindAllSubmatch(facet, -1)

			if len(normals) != 1 || len(vertices) != 3 {
				warnings = append(warnings, Warning{
					Solid: name,
					Facet: facetIndex,
					Err: fmt.Errorf("expected 1 normal and 3 vertices, found %d and %d",
						len(normals), len(vertices)),
				})
				continue
			}

			normal := parseTriple(normals[0])
			buf.Position = append(buf.Position,
				parseTriple(vertices[0]),
				parseTriple(vertices[1]),
				parseTriple(vertices[2]),
			)
			buf.Normal = append(buf.Normal, normal, normal, normal)
		}

		buf.Groups = append(buf.Groups, mesh.Group{
			Name:  name,
			Start: start,
			Count: len(buf.Position) - start,
		})
	}

	if buf.Name == "" && len(buf.Groups) > 0 {
		buf.Name = buf.Groups[0].Name
	}

	return buf, warnings, nil
}

// solidName extracts the name following the solid keyword, up to the
// end of the first line
func solidName(body []byte) string {
	line := string(body)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// parseTriple converts the three captured number tokens of a normal or
// vertex match into a vector
func parseTriple(match [][]byte) geometry.Vector3 {
	x, _ := strconv.ParseFloat(string(match[1]), 64)
	y, _ := strconv.ParseFloat(string(match[2]), 64)
	z, _ := strconv.ParseFloat(string(match[3]), 64)
	return geometry.NewVector3(x, y, z)
}
