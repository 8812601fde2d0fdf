package cam

import (
	"errors"
	"fmt"
)

// ErrBadParams is the sentinel wrapped by every parameter validation
// failure. Invalid parameters indicate a programming error in the caller,
// never a recoverable runtime condition, so generation fails fast.
var ErrBadParams = errors.New("cam: invalid parameters")

// Strategy selects the clearing mode for pocket operations.
type Strategy int

const (
	// StrategyAnnular clears by successive inward offsets, each ring one
	// pass.
	StrategyAnnular Strategy = iota

	// StrategyRaster clears by boustrophedon scan lines over the convex
	// decomposition of the pocket, plus a boundary pass.
	StrategyRaster

	// StrategyCombined clears with the full annular ring set and a raster
	// fill of the interior.
	StrategyCombined
)

// EngraveStyle selects where engrave passes run relative to the artwork.
type EngraveStyle int

const (
	// EngraveOn follows the path itself with no offset.
	EngraveOn EngraveStyle = iota

	// EngraveInside steps a width band inward from the path.
	EngraveInside

	// EngraveOutside steps a width band outward from the path.
	EngraveOutside
)

// Side selects which side of a closed path perforation holes sit on.
type Side int

const (
	// SideOutside bloats a closed path outward by half the cutter diameter
	// before perforating, putting holes on the cutter centerline outside
	// the material edge.
	SideOutside Side = iota

	// SideInside shrinks inward instead.
	SideInside
)

// Params is the configuration record passed to every generator call. Each
// operation reads the subset it needs; unused fields are ignored.
//
// All lengths are integer machine units; CutterAngle is radians.
type Params struct {
	// CutterDiameter is the tool diameter. Required by every operation
	// except drill.
	CutterDiameter int64

	// CutterAngle is the included angle of a V-bit. Zero means a flat end
	// mill; a positive angle makes annular pockets step down in Z as they
	// shrink.
	CutterAngle float64

	// Overlap is the fractional overlap between adjacent passes, in [0,1).
	// The effective step is CutterDiameter*(1-Overlap).
	Overlap float64

	// Climb requests climb milling; passes are direction-reversed where
	// offsetting does not already produce the climb winding.
	Climb bool

	// Margin keeps pocket clearing away from the boundary by this much.
	Margin int64

	// Width is the total band width for outline, engrave, and v-groove
	// operations.
	Width int64

	// Spacing is the gap between perforation holes.
	Spacing int64

	// Join and MiterLimit are forwarded to the offset engine.
	Join       JoinStyle
	MiterLimit float64

	// ArcTolerance is forwarded to the offset engine for round joins.
	ArcTolerance float64

	// TopZ is the stock top, BotZ the full cut depth, SafeZ the rapid
	// travel height. CutDepth caps V-bit depth stepping.
	TopZ, BotZ, SafeZ int64
	CutDepth          int64

	// Strategy is the pocket clearing mode.
	Strategy Strategy

	// Engrave selects the engrave band placement.
	Engrave EngraveStyle

	// Side selects the perforation side for closed paths.
	Side Side
}

// step returns the pass-to-pass step distance CutterDiameter*(1-Overlap).
func (p Params) step() float64 {
	return float64(p.CutterDiameter) * (1 - p.Overlap)
}

// needCutter validates the fields shared by every cutter-driven operation.
func (p Params) needCutter() error {
	if p.CutterDiameter <= 0 {
		return fmt.Errorf("%w: cutterDiameter must be positive, got %d", ErrBadParams, p.CutterDiameter)
	}
	if p.Overlap < 0 || p.Overlap >= 1 {
		return fmt.Errorf("%w: overlap must be in [0,1), got %g", ErrBadParams, p.Overlap)
	}
	return nil
}

// needWidth validates operations that sweep a band of the given width.
func (p Params) needWidth() error {
	if p.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrBadParams, p.Width)
	}
	return nil
}

// needSpacing validates perforation spacing.
func (p Params) needSpacing() error {
	if p.Spacing < 0 {
		return fmt.Errorf("%w: spacing must not be negative, got %d", ErrBadParams, p.Spacing)
	}
	return nil
}
