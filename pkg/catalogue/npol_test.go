/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package catalogue

/*****************************************************************************************************************/

import (
	"errors"
	"testing"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/solpolerr"
)

/*****************************************************************************************************************/

// When the npol input's three polarizer angles exactly coincide with the
// mzpsolar angles (-60, 0, 60 degrees), the 3x3 conversion matrix reduces to
// the identity, so the recovered mzpsolar triple equals the raw input data.
func TestNPolToMZPSolarWithMatchingAnglesIsIdentity(t *testing.T) {
	b := bundle.New()
	b.Set(angle.Degrees(-60).String(), constCube(2, map[string]any{}))
	b.Set(angle.Degrees(0).String(), constCube(5, map[string]any{}))
	b.Set(angle.Degrees(60).String(), constCube(9, map[string]any{}))

	out, err := NPolToMZPSolar.Apply(b, Options{ReferenceAngle: angle.Degrees(0)})
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	Mc, _ := out.MustGet("M")
	Zc, _ := out.MustGet("Z")
	Pc, _ := out.MustGet("P")

	if !almostEqual(Mc.Data[0][0], 2, 1e-6) {
		t.Errorf("M = %v; want 2", Mc.Data[0][0])
	}
	if !almostEqual(Zc.Data[0][0], 5, 1e-6) {
		t.Errorf("Z = %v; want 5", Zc.Data[0][0])
	}
	if !almostEqual(Pc.Data[0][0], 9, 1e-6) {
		t.Errorf("P = %v; want 9", Pc.Data[0][0])
	}
}

/*****************************************************************************************************************/

func TestNPolToMZPSolarRequiresThreeChannels(t *testing.T) {
	b := bundle.New()
	b.Set(angle.Degrees(0).String(), constCube(1, map[string]any{}))
	b.Set(angle.Degrees(60).String(), constCube(1, map[string]any{}))

	_, err := NPolToMZPSolar.Apply(b, Options{})
	if !errors.Is(err, solpolerr.ErrInvalidData) {
		t.Fatalf("Apply() error = %v; want ErrInvalidData", err)
	}
}

/*****************************************************************************************************************/

func TestNPolToMZPSolarRejectsNonAngleKeys(t *testing.T) {
	b := bundle.New()
	b.Set("not-an-angle", constCube(1, map[string]any{}))
	b.Set(angle.Degrees(0).String(), constCube(1, map[string]any{}))
	b.Set(angle.Degrees(60).String(), constCube(1, map[string]any{}))

	_, err := NPolToMZPSolar.Apply(b, Options{})
	if !errors.Is(err, solpolerr.ErrInvalidData) {
		t.Fatalf("Apply() error = %v; want ErrInvalidData", err)
	}
}

/*****************************************************************************************************************/

// The forward projection onto the mzpsolar angles themselves is likewise
// the identity.
func TestMZPSolarToNPolOntoMZPAnglesIsIdentity(t *testing.T) {
	b := bundle.New()
	b.Set("M", constCube(2, map[string]any{}))
	b.Set("Z", constCube(5, map[string]any{}))
	b.Set("P", constCube(9, map[string]any{}))

	out, err := MZPSolarToNPol.Apply(b, Options{
		ReferenceAngle: angle.Degrees(0),
		OutAngles:      []angle.Quantity{angle.Degrees(-60), angle.Degrees(0), angle.Degrees(60)},
	})
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	got, _ := out.MustGet(angle.Degrees(-60).String())
	if !almostEqual(got.Data[0][0], 2, 1e-6) {
		t.Errorf("out[-60deg] = %v; want 2", got.Data[0][0])
	}
	got, _ = out.MustGet(angle.Degrees(0).String())
	if !almostEqual(got.Data[0][0], 5, 1e-6) {
		t.Errorf("out[0deg] = %v; want 5", got.Data[0][0])
	}
	got, _ = out.MustGet(angle.Degrees(60).String())
	if !almostEqual(got.Data[0][0], 9, 1e-6) {
		t.Errorf("out[60deg] = %v; want 9", got.Data[0][0])
	}
}

/*****************************************************************************************************************/

func TestMZPSolarToNPolRequiresOutAngles(t *testing.T) {
	b := bundle.New()
	b.Set("M", constCube(1, map[string]any{}))
	b.Set("Z", constCube(1, map[string]any{}))
	b.Set("P", constCube(1, map[string]any{}))

	_, err := MZPSolarToNPol.Apply(b, Options{})
	if !errors.Is(err, solpolerr.ErrInvalidArguments) {
		t.Fatalf("Apply() error = %v; want ErrInvalidArguments", err)
	}
}

/*****************************************************************************************************************/
