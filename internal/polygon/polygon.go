package polygon

// Polygon is a sealed interface representing one shape.
// Only Square and Rectangle implement this.
type Polygon interface {
	polygon() // Sealed - only these types implement it
}

// Kind is the discriminator carried by each variant.
type Kind string

// Variant kinds.
const (
	KindSquare    Kind = "square"
	KindRectangle Kind = "rectangle"
)

// Square is a polygon with four equal sides.
type Square struct {
	Size float64
}

func (Square) polygon() {}

// Rectangle is a polygon with independent height and width.
type Rectangle struct {
	Height float64
	Width  float64
}

func (Rectangle) polygon() {}

// MakeSquare creates a Square polygon. Zero and negative sizes are accepted.
func MakeSquare(size float64) Polygon {
	return Square{Size: size}
}

// MakeRectangle creates a Rectangle polygon. Zero and negative dimensions are accepted.
func MakeRectangle(height, width float64) Polygon {
	return Rectangle{Height: height, Width: width}
}

// Variants returns one value of every variant, in declaration order.
// Tests use it to check that visitors cover the whole set.
func Variants() []Polygon {
	return []Polygon{
		Square{},
		Rectangle{},
	}
}
