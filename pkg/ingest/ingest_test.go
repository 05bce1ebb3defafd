/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package ingest

/*****************************************************************************************************************/

import (
	"errors"
	"testing"

	"github.com/observerly/iris/pkg/fits"

	"github.com/heliopol/solpol/pkg/solpolerr"
)

/*****************************************************************************************************************/

func newFITSImage(polar float32, naxis1, naxis2 int32, data []float32) *fits.FITSImage {
	return &fits.FITSImage{
		Header: fits.FITSHeader{
			Naxis1: naxis1,
			Naxis2: naxis2,
			Floats: map[string]fits.FITSHeaderFloat{
				"POLAR": {Value: polar, Comment: "Polarizer angle"},
			},
		},
		Data: data,
	}
}

/*****************************************************************************************************************/

func TestFromImageKeysTheCanonicalMZPTriple(t *testing.T) {
	cases := map[float32]string{-60: "M", 0: "Z", 60: "P"}

	for polar, want := range cases {
		fit := newFITSImage(polar, 2, 1, []float32{1, 2})
		key, cube, _, err := fromImage(fit)
		if err != nil {
			t.Fatalf("fromImage() error for POLAR=%v: %v", polar, err)
		}
		if key != want {
			t.Errorf("fromImage() key = %q; want %q", key, want)
		}
		if cube.Data[0][0] != 1 || cube.Data[0][1] != 2 {
			t.Errorf("fromImage() data = %v; want [[1 2]]", cube.Data)
		}
		if cube.Meta["POLARREF"] != "Instrument" {
			t.Errorf("fromImage() POLARREF = %v; want Instrument when absent from the header", cube.Meta["POLARREF"])
		}
	}
}

/*****************************************************************************************************************/

func TestFromImageKeysAnArbitraryAngleAsItsOwnString(t *testing.T) {
	fit := newFITSImage(22.5, 1, 1, []float32{5})
	key, _, _, err := fromImage(fit)
	if err != nil {
		t.Fatalf("fromImage() error: %v", err)
	}
	if key != "22.5 deg" {
		t.Errorf("fromImage() key = %q; want %q", key, "22.5 deg")
	}
}

/*****************************************************************************************************************/

func TestFromImageMissingPolarHeaderIsUnsupportedInstrument(t *testing.T) {
	fit := &fits.FITSImage{
		Header: fits.FITSHeader{Naxis1: 1, Naxis2: 1, Floats: map[string]fits.FITSHeaderFloat{}},
		Data:   []float32{1},
	}
	_, _, _, err := fromImage(fit)
	if !errors.Is(err, solpolerr.ErrUnsupportedInstrument) {
		t.Fatalf("fromImage() error = %v; want ErrUnsupportedInstrument", err)
	}
}

/*****************************************************************************************************************/

func TestFromImageDimensionMismatchIsInvalidData(t *testing.T) {
	fit := newFITSImage(0, 2, 2, []float32{1, 2, 3})
	_, _, _, err := fromImage(fit)
	if !errors.Is(err, solpolerr.ErrInvalidData) {
		t.Fatalf("fromImage() error = %v; want ErrInvalidData", err)
	}
}

/*****************************************************************************************************************/

func TestLoadRejectsEmptyPathList(t *testing.T) {
	_, err := Load(nil)
	if !errors.Is(err, solpolerr.ErrInvalidData) {
		t.Fatalf("Load() error = %v; want ErrInvalidData", err)
	}
}

/*****************************************************************************************************************/

func TestKeyForPolarAngleTolerance(t *testing.T) {
	if got := keyForPolarAngle(-60.0000001); got != "M" {
		t.Errorf("keyForPolarAngle(-60.0000001) = %q; want %q (within tolerance)", got, "M")
	}
	if got := keyForPolarAngle(-59.99); got == "M" {
		t.Errorf("keyForPolarAngle(-59.99) = %q; want an npol angle key, not M (outside tolerance)", got)
	}
}

/*****************************************************************************************************************/
