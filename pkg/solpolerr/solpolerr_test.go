/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package solpolerr

/*****************************************************************************************************************/

import (
	"errors"
	"testing"
)

/*****************************************************************************************************************/

func TestInvalidDataMatchesSentinel(t *testing.T) {
	err := InvalidData("singular matrix")
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("InvalidData() does not match ErrInvalidData: %v", err)
	}
	want := "invalid data: singular matrix"
	if err.Error() != want {
		t.Errorf("InvalidData().Error() = %q; want %q", err.Error(), want)
	}
}

/*****************************************************************************************************************/

func TestMissingAlphaMatchesSentinel(t *testing.T) {
	err := MissingAlpha("path requires alpha")
	if !errors.Is(err, ErrMissingAlpha) {
		t.Errorf("MissingAlpha() does not match ErrMissingAlpha: %v", err)
	}
}

/*****************************************************************************************************************/

func TestUnsupportedTransformationMatchesSentinel(t *testing.T) {
	err := UnsupportedTransformation("npol -> bthp")
	if !errors.Is(err, ErrUnsupportedTransformation) {
		t.Errorf("UnsupportedTransformation() does not match ErrUnsupportedTransformation: %v", err)
	}
}

/*****************************************************************************************************************/

func TestUnsupportedInstrumentMatchesSentinel(t *testing.T) {
	err := UnsupportedInstrument("unknown observatory")
	if !errors.Is(err, ErrUnsupportedInstrument) {
		t.Errorf("UnsupportedInstrument() does not match ErrUnsupportedInstrument: %v", err)
	}
}

/*****************************************************************************************************************/

func TestInvalidArgumentsMatchesSentinel(t *testing.T) {
	err := InvalidArguments("out_angles required")
	if !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("InvalidArguments() does not match ErrInvalidArguments: %v", err)
	}
}

/*****************************************************************************************************************/

func TestDistinctSentinelsDoNotCrossMatch(t *testing.T) {
	err := InvalidData("x")
	if errors.Is(err, ErrMissingAlpha) {
		t.Errorf("InvalidData() unexpectedly matches ErrMissingAlpha")
	}
}

/*****************************************************************************************************************/
