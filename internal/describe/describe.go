package describe

import (
	"fmt"
	"io"

	"github.com/roach88/polygon/internal/polygon"
)

// Description is the rendered form of one polygon.
type Description struct {
	Type  string          `json:"type"`
	Area  float64         `json:"area"`
	Text  string          `json:"text"`
	Shape polygon.Polygon `json:"shape"`
}

// BuildPolygons returns the catalog: a 2-sided square and a 3x4 rectangle.
// Every call returns a fresh slice.
func BuildPolygons() []polygon.Polygon {
	return []polygon.Polygon{
		polygon.MakeSquare(2),
		polygon.MakeRectangle(3, 4),
	}
}

// Describe computes the type name, area and text line for p.
func Describe(p polygon.Polygon) Description {
	name := polygon.TypeName(p)
	area := polygon.Area(p)
	return Description{
		Type:  name,
		Area:  area,
		Text:  fmt.Sprintf("Polygon is a %s with area %v m2.", name, area),
		Shape: p,
	}
}

// DescribeAll describes each polygon in order.
func DescribeAll(polygons []polygon.Polygon) []Description {
	out := make([]Description, 0, len(polygons))
	for _, p := range polygons {
		out = append(out, Describe(p))
	}
	return out
}

// PrintDescription writes the description line of p to w.
func PrintDescription(w io.Writer, p polygon.Polygon) error {
	_, err := fmt.Fprintln(w, Describe(p).Text)
	return err
}

// PrintAll writes one description line per polygon, in order.
func PrintAll(w io.Writer, polygons []polygon.Polygon) error {
	for i, p := range polygons {
		if err := PrintDescription(w, p); err != nil {
			return fmt.Errorf("polygon[%d]: %w", i, err)
		}
	}
	return nil
}
