/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package angle

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/

func TestDegreesToRadians(t *testing.T) {
	q := Degrees(180)
	if !almostEqual(q.InRadians(), math.Pi, 1e-12) {
		t.Errorf("InRadians() = %v; want %v", q.InRadians(), math.Pi)
	}
}

/*****************************************************************************************************************/

func TestRadiansToDegrees(t *testing.T) {
	q := Radians(math.Pi / 2)
	if !almostEqual(q.InDegrees(), 90, 1e-9) {
		t.Errorf("InDegrees() = %v; want %v", q.InDegrees(), 90.0)
	}
}

/*****************************************************************************************************************/

func TestStringCanonicalForm(t *testing.T) {
	got := Degrees(60).String()
	want := "60 deg"
	if got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

/*****************************************************************************************************************/

func TestParseVariants(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		unit Unit
	}{
		{"60.0 deg", 60, Degree},
		{"60.0deg", 60, Degree},
		{"-60 degrees", -60, Degree},
		{"1.5707963267948966 rad", math.Pi / 2, Radian},
		{"135", 135, Degree},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", c.in, err)
			continue
		}
		if !almostEqual(got.Value, c.want, 1e-9) || got.Unit != c.unit {
			t.Errorf("Parse(%q) = %+v; want value=%v unit=%v", c.in, got, c.want, c.unit)
		}
	}
}

/*****************************************************************************************************************/

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Errorf("Parse(\"\") expected an error, got nil")
	}
}

/*****************************************************************************************************************/

func TestParseRejectsNonAngle(t *testing.T) {
	if _, err := Parse("not-an-angle"); err == nil {
		t.Errorf("Parse(\"not-an-angle\") expected an error, got nil")
	}
}

/*****************************************************************************************************************/
