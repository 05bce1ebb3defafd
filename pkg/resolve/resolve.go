/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package resolve implements the engine's single public entry point:
// classify an input bundle, plan the shortest path to a requested target
// system, materialise anything the path needs (a standardised npol source,
// a synthesised alpha field, an IMAX-corrected MZP stack), and execute it.
// Grounded step for step on original_source/solpolpy/core.py's resolve().
package resolve

/*****************************************************************************************************************/

import (
	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/catalogue"
	"github.com/heliopol/solpol/pkg/geometry"
	"github.com/heliopol/solpol/pkg/graph"
	"github.com/heliopol/solpol/pkg/imax"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/system"
)

/*****************************************************************************************************************/

// Options carries the three caller-supplied parameters Resolve accepts
// beyond the bundle and target-system name.
type Options struct {
	// ImaxEffect requests the foreshortening correction (pkg/imax) before
	// the planned path executes. Only valid when the classified source is
	// mzpsolar or mzpinstru.
	ImaxEffect bool

	// OutAngles is required when the planned path ends in an
	// out_angles-producing edge (mzpsolar -> npol).
	OutAngles []angle.Quantity

	// ReferenceAngle overrides the OBSRVTRY-derived reference angle used
	// by the mzp*<->npol family. Nil derives it from the bundle.
	ReferenceAngle *angle.Quantity
}

/*****************************************************************************************************************/

// transformGraph is built once and is safe to share across concurrent
// Resolve calls; it is never mutated after New().
var transformGraph = graph.New()

/*****************************************************************************************************************/

// Resolve converts input to the named target system, running whatever
// preparation the planned path requires.
func Resolve(input *bundle.Bundle, target string, opts Options) (*bundle.Bundle, error) {
	targetSystem, err := system.Parse(target)
	if err != nil {
		return nil, err
	}

	srcSystem, err := system.Classify(input.DataKeys(), input.PolarRef("Z"))
	if err != nil {
		return nil, err
	}

	reference := opts.ReferenceAngle
	if reference == nil {
		derived := bundle.ReferenceAngle(input.Observatory())
		reference = &derived
	}

	classified := srcSystem
	current := input
	if srcSystem == system.NPol {
		converted, err := catalogue.NPolToMZPSolar.Apply(current, catalogue.Options{ReferenceAngle: *reference})
		if err != nil {
			return nil, err
		}
		current = converted
		srcSystem = system.MZPSolar
	}

	plan, err := transformGraph.Route(srcSystem, targetSystem)
	if err != nil {
		return nil, err
	}

	if plan.UsesOutAngles && len(opts.OutAngles) == 0 {
		return nil, solpolerr.InvalidArguments("out_angles is required for this transformation")
	}

	if opts.ImaxEffect {
		if classified != system.MZPSolar && classified != system.MZPInstru {
			return nil, solpolerr.UnsupportedTransformation("imax_effect requires an mzpsolar or mzpinstru source")
		}
		corrected, err := imax.Correct(current)
		if err != nil {
			return nil, err
		}
		current = corrected
	}

	if plan.UsesAlpha {
		if _, ok := current.Alpha(); !ok {
			current, err = withSyntheticAlpha(current)
			if err != nil {
				return nil, err
			}
		}
	}

	return plan.Apply(current, catalogue.Options{
		ReferenceAngle: *reference,
		OutAngles:      opts.OutAngles,
	})
}

/*****************************************************************************************************************/

// withSyntheticAlpha clones b and attaches a radial position-angle field
// built from its shape, leaving the caller's original bundle untouched.
func withSyntheticAlpha(b *bundle.Bundle) (*bundle.Bundle, error) {
	rows, columns, err := b.Shape()
	if err != nil {
		return nil, err
	}

	keys := b.DataKeys()
	if len(keys) == 0 {
		return nil, solpolerr.InvalidData("bundle has no channels to derive alpha's world-coordinate descriptor from")
	}
	first, err := b.MustGet(keys[0])
	if err != nil {
		return nil, err
	}

	field := geometry.AlphaField(rows, columns)

	clone := b.Clone()
	clone.SetAlpha(bundle.NewCube(field, nil, map[string]any{}, first.WCS))
	return clone, nil
}

/*****************************************************************************************************************/
