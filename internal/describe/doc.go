// Package describe builds the fixed polygon catalog and renders one
// human-readable line per polygon:
//
//	Polygon is a square with area 4 m2.
//
// Areas use Go's default float formatting, so whole numbers print without
// a decimal point.
package describe
