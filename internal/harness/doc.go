// Package harness runs conformance scenarios against the polygon describer.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: default_catalog
//	description: "The built-in catalog"
//	shapes:
//	  - kind: square
//	    size: 2
//	  - kind: rectangle
//	    height: 3
//	    width: 4
//	expect:
//	  - "Polygon is a square with area 4 m2."
//	  - "Polygon is a rectangle with area 12 m2."
//
// Each file is validated against the #Scenario definition in scenario.cue
// before any shape is decoded. A shape whose kind is not in the closed set,
// or that carries fields of another variant, is rejected at load time.
//
// # Golden Snapshots
//
// RunWithGolden writes the described shapes as indented JSON and compares
// them with testdata/golden/{name}.golden using goldie.
package harness
