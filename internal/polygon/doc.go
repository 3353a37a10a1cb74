// Package polygon provides the closed set of shapes the program reasons about.
//
// A Polygon is exactly one of Square or Rectangle. The set is sealed: the
// marker method is unexported, so no other package can add a variant. All
// behavior over shapes is expressed as visitors that switch on the active
// variant (see Visit, TypeName, Area) instead of methods on each shape.
//
// Key design constraints:
//   - Values are immutable and compared with ==
//   - Construction never fails and performs no validation
//   - Every visitor handles every variant; an unhandled variant panics
package polygon
