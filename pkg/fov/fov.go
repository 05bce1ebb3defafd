/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package fov converts a pixel-plane offset from a WCS's reference pixel
// into an angular field-of-view offset, given the WCS's per-axis pixel
// scale. pkg/imax is the sole caller: it evaluates this once per pixel to
// build the lon/lat grid its foreshortened polarizer-angle formula runs
// against.
package fov

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// PixelScale is the per-axis angular size of one pixel, in degrees,
// carried on a WCS descriptor's CDELT1/CDELT2.
type PixelScale struct {
	X float64 // Pixel size in the x direction (in degrees)
	Y float64 // Pixel size in the y direction (in degrees)
}

/*****************************************************************************************************************/

// GetRadialExtent converts a pixel-plane offset (dx, dy) from the
// reference pixel into the corresponding angular field-of-view offset
// (lon, lat), in radians.
//
// Adapted from the teacher's plate-solver field-of-view sizing, which
// multiplied a pixel count by CDELT along each axis and collapsed both
// axes to a single clamped search radius for a catalogue cone search
// (xr, yr -> min(xr, yr) * sqrt(2)). pkg/imax needs a distinct longitude
// and latitude offset for every pixel of its foreshortening grid rather
// than one scalar radius for the whole field, so the two axes are kept
// independent here instead of being reduced to their minimum.
func GetRadialExtent(dx, dy float64, pixelScale PixelScale) (lon, lat float64) {
	lon = dx * pixelScale.X * math.Pi / 180
	lat = dy * pixelScale.Y * math.Pi / 180
	return lon, lat
}

/*****************************************************************************************************************/
