package polygon

import "fmt"

// Visitor holds one operation per variant.
// Both fields must be set; Visit panics on a missing case.
type Visitor[T any] struct {
	Square    func(Square) T
	Rectangle func(Rectangle) T
}

// Visit dispatches p to the case function for its active variant.
//
// Panics if p is nil, if the matching case function is nil, or if p is a
// variant the switch does not know about. None of these can happen for a
// Polygon built by this package with a fully populated Visitor.
func Visit[T any](p Polygon, v Visitor[T]) T {
	switch shape := p.(type) {
	case Square:
		if v.Square == nil {
			panic("polygon: visitor has no Square case")
		}
		return v.Square(shape)
	case Rectangle:
		if v.Rectangle == nil {
			panic("polygon: visitor has no Rectangle case")
		}
		return v.Rectangle(shape)
	case nil:
		panic("polygon: visit of nil Polygon")
	default:
		panic(fmt.Sprintf("polygon: unhandled variant %T", p))
	}
}

var typeNameVisitor = Visitor[string]{
	Square:    func(Square) string { return string(KindSquare) },
	Rectangle: func(Rectangle) string { return string(KindRectangle) },
}

var areaVisitor = Visitor[float64]{
	Square:    func(s Square) float64 { return s.Size * s.Size },
	Rectangle: func(r Rectangle) float64 { return r.Height * r.Width },
}

// TypeName returns "square" or "rectangle".
func TypeName(p Polygon) string {
	return Visit(p, typeNameVisitor)
}

// Area returns size² for a Square and height×width for a Rectangle.
func Area(p Polygon) float64 {
	return Visit(p, areaVisitor)
}
