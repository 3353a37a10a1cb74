package describe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/polygon/internal/polygon"
)

func TestBuildPolygons(t *testing.T) {
	got := BuildPolygons()
	require.Len(t, got, 2)
	assert.Equal(t, polygon.Square{Size: 2}, got[0])
	assert.Equal(t, polygon.Rectangle{Height: 3, Width: 4}, got[1])
}

func TestBuildPolygons_Restartable(t *testing.T) {
	first := BuildPolygons()
	second := BuildPolygons()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, polygon.TypeName(first[i]), polygon.TypeName(second[i]))
		assert.Equal(t, first[i], second[i])
	}

	// Fresh slice each call.
	first[0] = polygon.MakeSquare(99)
	assert.Equal(t, polygon.MakeSquare(2), BuildPolygons()[0])
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		in   polygon.Polygon
		want string
	}{
		{"catalog square", polygon.MakeSquare(2), "Polygon is a square with area 4 m2."},
		{"catalog rectangle", polygon.MakeRectangle(3, 4), "Polygon is a rectangle with area 12 m2."},
		{"fractional", polygon.MakeSquare(1.5), "Polygon is a square with area 2.25 m2."},
		{"negative", polygon.MakeRectangle(-2, 3), "Polygon is a rectangle with area -6 m2."},
		{"zero", polygon.MakeSquare(0), "Polygon is a square with area 0 m2."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Describe(tt.in)
			assert.Equal(t, tt.want, d.Text)
			assert.Equal(t, polygon.TypeName(tt.in), d.Type)
			assert.Equal(t, polygon.Area(tt.in), d.Area)
			assert.Equal(t, tt.in, d.Shape)
		})
	}
}

func TestPrintDescription(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintDescription(&buf, polygon.MakeSquare(5)))
	assert.Equal(t, "Polygon is a square with area 25 m2.\n", buf.String())
}

func TestPrintAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintAll(&buf, BuildPolygons()))
	assert.Equal(t,
		"Polygon is a square with area 4 m2.\nPolygon is a rectangle with area 12 m2.\n",
		buf.String())
}

func TestPrintAll_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintAll(&buf, BuildPolygons()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "catalog", buf.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintAll_WriteError(t *testing.T) {
	err := PrintAll(failingWriter{}, BuildPolygons())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polygon[0]")
}

func TestDescribeAll(t *testing.T) {
	got := DescribeAll(BuildPolygons())
	require.Len(t, got, 2)
	assert.Equal(t, "square", got[0].Type)
	assert.Equal(t, 4.0, got[0].Area)
	assert.Equal(t, "rectangle", got[1].Type)
	assert.Equal(t, 12.0, got[1].Area)

	assert.Empty(t, DescribeAll(nil))
}
