package polygon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Decoding errors.
var (
	// ErrUnknownKind is returned when decoding a shape whose kind is not part of the set.
	ErrUnknownKind = errors.New("unknown polygon kind")

	// ErrMissingDimension is returned when a dimension field of the variant is absent.
	ErrMissingDimension = errors.New("missing polygon dimension")
)

type squareJSON struct {
	Kind Kind    `json:"kind"`
	Size float64 `json:"size"`
}

type rectangleJSON struct {
	Kind   Kind    `json:"kind"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Decode-side shapes use pointers so an absent field is distinguishable from 0.
type squareFields struct {
	Kind Kind     `json:"kind"`
	Size *float64 `json:"size"`
}

type rectangleFields struct {
	Kind   Kind     `json:"kind"`
	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
}

// MarshalJSON implements json.Marshaler for Square.
func (s Square) MarshalJSON() ([]byte, error) {
	return json.Marshal(squareJSON{Kind: KindSquare, Size: s.Size})
}

// MarshalJSON implements json.Marshaler for Rectangle.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectangleJSON{Kind: KindRectangle, Height: r.Height, Width: r.Width})
}

// MarshalPolygon marshals any Polygon to its tagged JSON form.
// Non-finite dimensions cannot be represented and return an error.
func MarshalPolygon(p Polygon) ([]byte, error) {
	m := Visit(p, Visitor[json.Marshaler]{
		Square:    func(s Square) json.Marshaler { return s },
		Rectangle: func(r Rectangle) json.Marshaler { return r },
	})
	return m.MarshalJSON()
}

// UnmarshalPolygon decodes tagged JSON into a Polygon.
// The kind field selects the variant; every dimension of that variant is
// required and unknown fields are rejected.
func UnmarshalPolygon(data []byte) (Polygon, error) {
	var head struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode polygon: %w", err)
	}

	switch head.Kind {
	case KindSquare:
		var s squareFields
		if err := decodeStrict(data, &s); err != nil {
			return nil, fmt.Errorf("decode square: %w", err)
		}
		if s.Size == nil {
			return nil, fmt.Errorf("decode square: %w: size", ErrMissingDimension)
		}
		return Square{Size: *s.Size}, nil
	case KindRectangle:
		var r rectangleFields
		if err := decodeStrict(data, &r); err != nil {
			return nil, fmt.Errorf("decode rectangle: %w", err)
		}
		switch {
		case r.Height == nil:
			return nil, fmt.Errorf("decode rectangle: %w: height", ErrMissingDimension)
		case r.Width == nil:
			return nil, fmt.Errorf("decode rectangle: %w: width", ErrMissingDimension)
		}
		return Rectangle{Height: *r.Height, Width: *r.Width}, nil
	case "":
		return nil, fmt.Errorf("%w: missing kind", ErrUnknownKind)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, head.Kind)
	}
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
