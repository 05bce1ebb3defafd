/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package catalogue holds one pure function per directed transform edge
// between polarization systems, grounded on the closed-form identities of
// DeForest, Seaton & West (2022). Every edge consumes a bundle and produces
// a new bundle of the destination system; none mutate their input.
package catalogue

/*****************************************************************************************************************/

import (
	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/system"
)

/*****************************************************************************************************************/

// DenominatorTolerance is the threshold below which a cos(2(theta-alpha))
// denominator is treated as degenerate and the affected pixel is masked
// rather than producing Inf/NaN.
const DenominatorTolerance = 1e-6

/*****************************************************************************************************************/

// Options carries the caller-supplied parameters an edge may need beyond
// the bundle itself: the reference angle used by the mzp*<->npol family,
// and the output polarizer angles requested of an npol-producing edge.
type Options struct {
	ReferenceAngle angle.Quantity
	OutAngles      []angle.Quantity
}

/*****************************************************************************************************************/

// Edge is one directed transform between two systems. UsesAlpha and
// UsesOutAngles are static bits the graph and dispatcher fold across a
// planned path, deciding whether alpha must be synthesised and whether
// out_angles is a required argument.
type Edge struct {
	Source, Destination system.System
	UsesAlpha            bool
	UsesOutAngles        bool
	Apply                func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error)
}

/*****************************************************************************************************************/
