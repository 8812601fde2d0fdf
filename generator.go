package cam

import (
	"fmt"

	"github.com/gocam/cam/internal/partition"
)

// Op names a toolpath-generation operation.
type Op int

const (
	// OpPocket clears a closed region; Params.Strategy selects the
	// clearing mode.
	OpPocket Op = iota

	// OpInsideOutline cuts a band stepping inward from a closed boundary.
	OpInsideOutline

	// OpOutsideOutline cuts a band stepping outward from a closed
	// boundary.
	OpOutsideOutline

	// OpEngrave follows the artwork, or a band beside it.
	OpEngrave

	// OpPerforate drills evenly spaced holes along the artwork.
	OpPerforate

	// OpDrill plunges at every vertex of the artwork.
	OpDrill

	// OpVGroove cuts a symmetric band centered on the artwork.
	OpVGroove
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpPocket:
		return "pocket"
	case OpInsideOutline:
		return "inside-outline"
	case OpOutsideOutline:
		return "outside-outline"
	case OpEngrave:
		return "engrave"
	case OpPerforate:
		return "perforate"
	case OpDrill:
		return "drill"
	case OpVGroove:
		return "v-groove"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// pathKinds declares which path kinds an operation accepts.
type pathKinds int

const (
	kindsAll pathKinds = iota
	kindsClosedOnly
	kindsOpenOnly
)

// opSpec declares, as data, what each operation accepts and produces.
type opSpec struct {
	kinds pathKinds

	// producesZ is true when the strategy assigns its own Z values instead
	// of leaving depth to a later uniform pass.
	producesZ bool

	validate func(Params) error
}

// opSpecs is the closed set of strategies. Dispatch is by table, not by
// virtual methods, so accepted kinds and parameter requirements stay
// inspectable.
var opSpecs = map[Op]opSpec{
	OpPocket: {
		kinds:    kindsClosedOnly,
		validate: func(p Params) error { return p.needCutter() },
	},
	OpInsideOutline: {
		kinds: kindsClosedOnly,
		validate: func(p Params) error {
			if err := p.needCutter(); err != nil {
				return err
			}
			return p.needWidth()
		},
	},
	OpOutsideOutline: {
		kinds: kindsClosedOnly,
		validate: func(p Params) error {
			if err := p.needCutter(); err != nil {
				return err
			}
			return p.needWidth()
		},
	},
	OpEngrave: {
		kinds: kindsAll,
		validate: func(p Params) error {
			if p.Engrave == EngraveOn {
				return nil
			}
			if err := p.needCutter(); err != nil {
				return err
			}
			return p.needWidth()
		},
	},
	OpPerforate: {
		kinds:     kindsAll,
		producesZ: true,
		validate: func(p Params) error {
			if err := p.needCutter(); err != nil {
				return err
			}
			return p.needSpacing()
		},
	},
	OpDrill: {
		kinds:     kindsAll,
		producesZ: true,
		validate:  func(Params) error { return nil },
	},
	OpVGroove: {
		kinds: kindsAll,
		validate: func(p Params) error {
			if err := p.needCutter(); err != nil {
				return err
			}
			return p.needWidth()
		},
	},
}

// ProducesZ reports whether the operation assigns its own Z values.
func (op Op) ProducesZ() bool {
	return opSpecs[op].producesZ
}

// Generator turns combined input geometry into toolpaths. It is stateless
// between calls; the zero cost of sharing one Generator across goroutines
// is safe as long as every call owns its input sets.
type Generator struct {
	engine      Engine
	partitioner Partitioner
}

// NewGenerator creates a Generator with the default Clipper-backed engine
// and convex partitioner, overridable through options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	o := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{engine: o.engine, partitioner: o.partitioner}
}

// Engine returns the boolean/offset engine the generator uses.
func (g *Generator) Engine() Engine {
	return g.engine
}

// Generate runs one operation over the given geometry and returns the raw
// toolpaths, merged and ordered. Paths of a kind the operation does not
// accept are filtered out silently; empty or fully filtered input yields an
// empty set, never an error. Parameter errors fail fast with ErrBadParams.
func (g *Generator) Generate(op Op, geometry PathSet, params Params) (PathSet, error) {
	spec, ok := opSpecs[op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown operation %d", ErrBadParams, int(op))
	}
	if err := spec.validate(params); err != nil {
		return nil, err
	}

	eligible := filterKinds(geometry, spec.kinds)
	if len(eligible) == 0 {
		if len(geometry) > 0 {
			Logger().Warn("no eligible paths for operation", "op", op.String(), "input", len(geometry))
		}
		return PathSet{}, nil
	}

	switch op {
	case OpPocket:
		return g.pocket(eligible, params)
	case OpInsideOutline:
		return g.outline(eligible, params, true)
	case OpOutsideOutline:
		return g.outline(eligible, params, false)
	case OpEngrave:
		return g.engrave(eligible, params)
	case OpPerforate:
		return g.perforate(eligible, params)
	case OpDrill:
		return g.drill(eligible, params)
	case OpVGroove:
		return g.vGroove(eligible, params)
	default:
		return PathSet{}, nil
	}
}

// filterKinds drops paths of a kind the operation does not accept. Empty
// paths are dropped unconditionally. The result is an owned deep copy, so
// strategies may mutate freely.
func filterKinds(ps PathSet, kinds pathKinds) PathSet {
	var out PathSet
	for _, p := range ps {
		if len(p.Pts) == 0 {
			continue
		}
		switch kinds {
		case kindsClosedOnly:
			if !p.Closed {
				continue
			}
		case kindsOpenOnly:
			if p.Closed {
				continue
			}
		}
		out = append(out, p.Clone())
	}
	return out
}

// Partitioner is the convex-partition capability consumed by the raster
// pocket strategies. The engine only reads its output; partitioning itself
// is generic polygon algebra, injectable via WithPartitioner.
type Partitioner interface {
	// ConvexPartition splits one simple closed polygon into convex closed
	// pieces.
	ConvexPartition(p Path) []Path
}

// defaultPartitioner adapts the internal ear-clipping partitioner.
type defaultPartitioner struct{}

func (defaultPartitioner) ConvexPartition(p Path) []Path {
	ring := make([]partition.Point, 0, len(p.Pts))
	for _, pt := range p.Pts {
		ring = append(ring, partition.Point{X: pt.X, Y: pt.Y})
	}
	var out []Path
	for _, piece := range partition.Convex(ring) {
		q := Path{Closed: true, Pts: make([]Point, 0, len(piece))}
		for _, pt := range piece {
			q.Pts = append(q.Pts, Pt(pt.X, pt.Y))
		}
		out = append(out, q)
	}
	return out
}
