// Package cam turns 2D vector artwork into ordered, depth-tagged tool
// motion paths for CNC machining.
//
// # Overview
//
// cam is a pure geometry engine: given a set of operand paths (closed
// polygons and open polylines in an integer-scaled coordinate space) and a
// named operation, it produces the toolpaths a cutter must follow. It has no
// file, network, or display surface; G-code emission, unit conversion, and
// SVG flattening are the caller's business.
//
// # Quick Start
//
//	import "github.com/gocam/cam"
//
//	g := cam.NewGenerator()
//
//	// A 40x40 mm square at 100000 units/mm.
//	square := cam.PathSet{cam.Polygon(
//	    cam.Pt(0, 0), cam.Pt(4000000, 0),
//	    cam.Pt(4000000, 4000000), cam.Pt(0, 4000000),
//	)}
//
//	passes, err := g.Generate(cam.OpPocket, square, cam.Params{
//	    CutterDiameter: 300000, // 3 mm
//	    Overlap:        0.5,
//	})
//
// # Operations
//
// Pocket (annular, raster, or combined clearing), inside/outside outline,
// engrave, perforate, drill, and v-groove. Each operation accepts a subset
// of path kinds (open, closed, or both) and silently ignores the rest.
// Finished toolpaths can be post-processed with [SplitPathOverTabs] to cut
// shallower over holding tabs.
//
// # Coordinate System
//
// All coordinates are integer machine units. Pick a multiplier large enough
// (100000 units/mm is typical) that truncation inside the polygon clipper is
// below any visible tolerance. X increases right, Y increases up, Z is depth
// (more negative is deeper into the stock). Angles are in radians.
//
// # Architecture
//
// The engine is organized into:
//   - Path model: Point, Path, PathSet
//   - Boolean/offset engine: the Engine interface, backed by Clipper
//   - Generators: one strategy per operation, dispatched by Op
//   - Optimizer: MergeClosedPaths / SortPaths travel reduction
//   - Tab splitter: SplitPathOverTabs
//
// Everything is synchronous and stateless between calls; a Generator is
// safe for concurrent use as long as each call owns its inputs.
package cam

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
