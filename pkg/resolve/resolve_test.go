/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package resolve

/*****************************************************************************************************************/

import (
	"errors"
	"math"
	"testing"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/wcs"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/

func constCube(v float64) *bundle.Cube {
	return bundle.NewCube([][]float64{{v}}, nil, map[string]any{}, wcs.WCS{})
}

/*****************************************************************************************************************/

func mzpsolarBundle(m, z, p float64, withAlpha bool) *bundle.Bundle {
	b := bundle.New()
	b.Set("M", constCube(m))
	b.Set("Z", constCube(z))
	b.Set("P", constCube(p))
	if withAlpha {
		b.SetAlpha(constCube(0))
	}
	return b
}

/*****************************************************************************************************************/

func TestResolveMZPSolarToBpBWithExplicitAlpha(t *testing.T) {
	b := mzpsolarBundle(1, 1, 1, true)

	out, err := Resolve(b, "bpb", Options{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	Bc, err := out.MustGet("B")
	if err != nil {
		t.Fatalf("missing B channel: %v", err)
	}
	pBc, err := out.MustGet("pB")
	if err != nil {
		t.Fatalf("missing pB channel: %v", err)
	}

	if !almostEqual(Bc.Data[0][0], 2, 1e-9) {
		t.Errorf("B = %v; want 2", Bc.Data[0][0])
	}
	if !almostEqual(pBc.Data[0][0], 0, 1e-9) {
		t.Errorf("pB = %v; want 0", pBc.Data[0][0])
	}
}

/*****************************************************************************************************************/

// When the planned path requires alpha and the caller has not supplied it,
// Resolve synthesises it rather than failing, and the original bundle
// passed in is left untouched.
func TestResolveSynthesisesMissingAlpha(t *testing.T) {
	b := mzpsolarBundle(1, 1, 1, false)

	out, err := Resolve(b, "bpb", Options{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if _, ok := b.Alpha(); ok {
		t.Errorf("Resolve() must not mutate the caller's input bundle with a synthesised alpha channel")
	}
	if _, ok := out.Alpha(); !ok {
		t.Errorf("expected the output bundle to carry the synthesised alpha channel")
	}

	Bc, err := out.MustGet("B")
	if err != nil {
		t.Fatalf("missing B channel: %v", err)
	}
	if !almostEqual(Bc.Data[0][0], 2, 1e-9) {
		t.Errorf("B = %v; want 2 (independent of alpha for M=Z=P=1)", Bc.Data[0][0])
	}
}

/*****************************************************************************************************************/

// An npol source is pre-pended to mzpsolar before planning; at angles
// matching the mzp triple exactly, the pre-pend is an identity.
func TestResolvePrependsNPolToMZPSolar(t *testing.T) {
	b := bundle.New()
	b.Set(angle.Degrees(-60).String(), constCube(2))
	b.Set(angle.Degrees(0).String(), constCube(5))
	b.Set(angle.Degrees(60).String(), constCube(9))
	b.SetAlpha(constCube(0))

	reference := angle.Degrees(0)
	out, err := Resolve(b, "bpb", Options{ReferenceAngle: &reference})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	Bc, err := out.MustGet("B")
	if err != nil {
		t.Fatalf("missing B channel: %v", err)
	}
	// B = (2/3)*(2+5+9)
	if !almostEqual(Bc.Data[0][0], (2.0/3.0)*16, 1e-9) {
		t.Errorf("B = %v; want %v", Bc.Data[0][0], (2.0/3.0)*16)
	}

	pBc, err := out.MustGet("pB")
	if err != nil {
		t.Fatalf("missing pB channel: %v", err)
	}
	// pB = -4/3 * (2*cos(-120deg) + 5*cos(0) + 9*cos(120deg)) = -4/3 * -0.5 = 2/3
	if !almostEqual(pBc.Data[0][0], 2.0/3.0, 1e-9) {
		t.Errorf("pB = %v; want %v", pBc.Data[0][0], 2.0/3.0)
	}
}

/*****************************************************************************************************************/

func TestResolveUnknownTargetIsInvalidArguments(t *testing.T) {
	b := mzpsolarBundle(1, 1, 1, true)

	_, err := Resolve(b, "not-a-system", Options{})
	if !errors.Is(err, solpolerr.ErrInvalidArguments) {
		t.Fatalf("Resolve() error = %v; want ErrInvalidArguments", err)
	}
}

/*****************************************************************************************************************/

func TestResolveMissingOutAnglesIsInvalidArguments(t *testing.T) {
	b := mzpsolarBundle(1, 1, 1, true)

	_, err := Resolve(b, "npol", Options{})
	if !errors.Is(err, solpolerr.ErrInvalidArguments) {
		t.Fatalf("Resolve() error = %v; want ErrInvalidArguments", err)
	}
}

/*****************************************************************************************************************/

func TestResolveImaxEffectRequiresMZPSource(t *testing.T) {
	b := bundle.New()
	b.Set("B", constCube(2))
	b.Set("pB", constCube(0))

	_, err := Resolve(b, "bpb", Options{ImaxEffect: true})
	if !errors.Is(err, solpolerr.ErrUnsupportedTransformation) {
		t.Fatalf("Resolve() error = %v; want ErrUnsupportedTransformation", err)
	}
}

/*****************************************************************************************************************/
