/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package transform carries the pixel<->world affine and the SIP
// distortion polynomial a WCS descriptor (pkg/wcs) attaches to every Cube.
// Neither does any sky-projection of its own; they are the coefficient
// storage pkg/wcs and pkg/geometry evaluate.
package transform

/*****************************************************************************************************************/

// Affine is the linear pixel-to-world mapping a WCS descriptor's CD matrix
// encodes: x' = A*x + B*y + C, y' = D*x + E*y + F. pkg/wcs.
// NewWorldCoordinateSystem builds a WCS's CRVAL/CD fields from one of
// these evaluated at the reference pixel.
type Affine struct {
	A, B, C float64 // x' = A*x + B*y + C
	D, E, F float64 // y' = D*x + E*y + F
}

/*****************************************************************************************************************/
