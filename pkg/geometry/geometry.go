/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package geometry builds the position-angle field every alpha-dependent
// transform needs, extracts the instrument roll from a world-coordinate
// descriptor, and applies a SIP distortion polynomial as a pixel pre-shift.
package geometry

/*****************************************************************************************************************/

import (
	"math"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/transform"
	"github.com/heliopol/solpol/pkg/utils"
	"github.com/heliopol/solpol/pkg/wcs"
)

/*****************************************************************************************************************/

// AlphaField builds the solar position-angle field for a square image of
// the given shape: alpha(i,j) = rotate90(fliplr(atan2(y,x) + pi)), with
// x = j - cx, y = i - cy measured from the image centre. The result is in
// radians, on [0, 2*pi).
//
// For a square image, rotate90(fliplr(B)) reduces to the transpose of B,
// so alpha[i][j] = atan2(j - cy, i - cx) + pi, wrapped to [0, 2*pi).
func AlphaField(rows, columns int) [][]float64 {
	cx := float64(columns) / 2
	cy := float64(rows) / 2

	field := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		field[i] = make([]float64, columns)
		for j := 0; j < columns; j++ {
			v := math.Atan2(float64(j)-cy, float64(i)-cx) + math.Pi
			field[i][j] = wrapRadians(v)
		}
	}

	return field
}

/*****************************************************************************************************************/

func wrapRadians(v float64) float64 {
	const twoPi = 2 * math.Pi

	v = math.Mod(v, twoPi)
	if v < 0 {
		v += twoPi
	}

	return v
}

/*****************************************************************************************************************/

// ExtractRotation reads the instrument roll (CROTA) off a world-coordinate
// descriptor, as an explicit angle quantity.
func ExtractRotation(w wcs.WCS) angle.Quantity {
	return angle.Degrees(w.Rotation())
}

/*****************************************************************************************************************/

// ApplyDistortion shifts a pixel coordinate by the SIP forward-distortion
// polynomial carried on a WCS, if any. With a nil distortion it is the
// identity.
func ApplyDistortion(d *transform.SIPDistortion, x, y float64) (float64, float64) {
	if d == nil {
		return x, y
	}

	dx := evaluatePolynomial(x, y, d.AOrder, "A", d.APower)
	dy := evaluatePolynomial(x, y, d.BOrder, "B", d.BPower)

	return x + dx, y + dy
}

/*****************************************************************************************************************/

func evaluatePolynomial(x, y float64, order int, prefix string, coefficients map[string]float64) float64 {
	terms := utils.ComputePolynomialTerms(x, y, order)
	keys := utils.GeneratePolynomialTermKeys(prefix, order)

	sum := 0.0
	for i, key := range keys {
		sum += coefficients[key] * terms[i]
	}

	return sum
}

/*****************************************************************************************************************/
