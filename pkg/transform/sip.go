/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// SIP (Simple Imaging Polynomial) is the FITS-header convention for
// describing a non-linear optical distortion as a pair of polynomials in
// pixel coordinates. The engine only ever needs the forward direction (a
// pixel shift applied before the per-pixel geometry in pkg/geometry and
// pkg/imax); the inverse polynomial the FITS convention also defines has no
// call site here and is not carried.
// @see https://fits.gsfc.nasa.gov/registry/sip/SIP_distortion_v1_0.pdf

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

// SIPDistortion holds the forward-polynomial coefficients that map a pixel
// coordinate to its distorted position: dx and dy are each a polynomial of
// the given order in (x, y), keyed by pkg/utils.GeneratePolynomialTermKeys.
// pkg/geometry.ApplyDistortion evaluates these against a pixel coordinate.
type SIPDistortion struct {
	AOrder int
	APower map[string]float64
	BOrder int
	BPower map[string]float64
}

/*****************************************************************************************************************/
