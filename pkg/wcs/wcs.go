/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package wcs carries the world-coordinate descriptor attached to every
// Cube: the pixel<->world affine parameters, the instrument roll (CROTA),
// the pixel scale (CDELT), and an optional SIP distortion polynomial.
package wcs

/*****************************************************************************************************************/

import (
	"github.com/heliopol/solpol/pkg/fov"
	"github.com/heliopol/solpol/pkg/transform"
)

/*****************************************************************************************************************/

// WCS is the minimal world-coordinate descriptor the engine needs: enough
// to extract instrument roll, pixel scale, and an optional distortion
// polynomial. It does not attempt general sky-projection.
type WCS struct {
	CRPIX1 float64 // Reference pixel X
	CRPIX2 float64 // Reference pixel Y
	CRVAL1 float64 // Reference RA
	CRVAL2 float64 // Reference Dec
	CD1_1  float64 // Affine transform parameter A
	CD1_2  float64 // Affine transform parameter B
	CD2_1  float64 // Affine transform parameter D
	CD2_2  float64 // Affine transform parameter E

	CROTA  float64 // Instrument roll, in degrees
	CDELT1 float64 // Pixel scale along axis 1, in degrees/pixel
	CDELT2 float64 // Pixel scale along axis 2, in degrees/pixel

	// Distortion is an optional SIP forward-distortion polynomial applied
	// before the IMAX foreshortening correction.
	Distortion *transform.SIPDistortion
}

/*****************************************************************************************************************/

// NewWorldCoordinateSystem builds a WCS from a reference pixel and an
// affine transform, deriving the reference world coordinate (CRVAL) by
// applying the affine transform at the reference pixel itself, and leaving
// CROTA/CDELT/Distortion zero.
func NewWorldCoordinateSystem(crpix1, crpix2 float64, affine transform.Affine) WCS {
	return WCS{
		CRPIX1: crpix1,
		CRPIX2: crpix2,
		CRVAL1: affine.A*crpix1 + affine.B*crpix2 + affine.C,
		CRVAL2: affine.D*crpix1 + affine.E*crpix2 + affine.F,
		CD1_1:  affine.A,
		CD1_2:  affine.B,
		CD2_1:  affine.D,
		CD2_2:  affine.E,
	}
}

/*****************************************************************************************************************/

// EquatorialCoordinate is a simple right-ascension/declination pair; the
// engine only ever needs it to exercise the WCS affine, not to navigate a
// sky projection.
type EquatorialCoordinate struct {
	RA  float64
	Dec float64
}

/*****************************************************************************************************************/

func (w *WCS) PixelToEquatorialCoordinate(x, y float64) EquatorialCoordinate {
	return EquatorialCoordinate{
		RA:  w.CRVAL1 + w.CD1_1*(x-w.CRPIX1) + w.CD1_2*(y-w.CRPIX2),
		Dec: w.CRVAL2 + w.CD2_1*(x-w.CRPIX1) + w.CD2_2*(y-w.CRPIX2),
	}
}

/*****************************************************************************************************************/

// PixelScale returns the pixel scale as a fov.PixelScale, for use in the
// IMAX field-of-view derivation.
func (w *WCS) PixelScale() fov.PixelScale {
	return fov.PixelScale{X: w.CDELT1, Y: w.CDELT2}
}

/*****************************************************************************************************************/

// Rotation returns the instrument roll, CROTA, in degrees.
func (w *WCS) Rotation() float64 {
	return w.CROTA
}

/*****************************************************************************************************************/
