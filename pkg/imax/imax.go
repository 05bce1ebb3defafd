/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package imax implements the IMAX foreshortening corrector: it removes the
// apparent polarizer-angle distortion an off-disk-centre pixel sees due to
// the spherical geometry of the occulter/corona, recombining a measured MZP
// stack into the solar-frame MZP stack a disk-centre pixel would have
// measured. Unlike the scalar mzp*<->npol conversion matrices in
// pkg/catalogue, the conversion matrix here varies per pixel, because the
// foreshortened polarizer angle itself is a function of field position.
package imax

/*****************************************************************************************************************/

import (
	"math"

	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/fov"
	"github.com/heliopol/solpol/pkg/geometry"
	"github.com/heliopol/solpol/pkg/matrix"
	"github.com/heliopol/solpol/pkg/solpolerr"
)

/*****************************************************************************************************************/

var order = []string{"M", "Z", "P"}

var angles = map[string]float64{
	"M": -math.Pi / 3,
	"Z": 0,
	"P": math.Pi / 3,
}

/*****************************************************************************************************************/

// Correct applies the IMAX foreshortening correction to a bundle carrying
// M, Z and P channels, returning the corrected solar-frame MZP stack.
// POLARREF is set to "Solar" on every output channel; alpha, if present, is
// carried through unchanged.
func Correct(b *bundle.Bundle) (*bundle.Bundle, error) {
	cubes := make([]*bundle.Cube, len(order))
	for i, key := range order {
		cube, err := b.MustGet(key)
		if err != nil {
			return nil, err
		}
		cubes[i] = cube
	}

	rows, columns, err := b.Shape()
	if err != nil {
		return nil, err
	}

	reference := cubes[1].WCS
	scale := reference.PixelScale()
	roll := geometry.ExtractRotation(reference).InRadians()

	cx := reference.CRPIX1
	cy := reference.CRPIX2
	if cx == 0 && cy == 0 {
		cx, cy = float64(columns)/2, float64(rows)/2
	}

	offsets := make([]float64, len(order))
	for i, key := range order {
		if b.PolarRef(key) == "Instrument" {
			offsets[i] = b.PolarOffset(key).InRadians() + roll
		}
	}

	corrected := make([][][]float64, len(order))
	for i := range order {
		corrected[i] = make([][]float64, rows)
		for r := range corrected[i] {
			corrected[i][r] = make([]float64, columns)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			x, y := float64(c), float64(r)
			if reference.Distortion != nil {
				x, y = geometry.ApplyDistortion(reference.Distortion, x, y)
			}

			lon, lat := fov.GetRadialExtent(x-cx, y-cy, scale)

			phi := make([]float64, len(order))
			for i, key := range order {
				theta := angles[key] + offsets[i]
				phi[i] = math.Atan2(math.Tan(theta)*math.Cos(lon), math.Cos(lat))
			}

			entries := make([]float64, len(order)*len(order))
			for i := range order {
				for j := range order {
					theta := angles[order[j]]
					cv := math.Cos(phi[i] - theta)
					entries[i*len(order)+j] = (4*cv*cv - 1) / 3
				}
			}

			a, err := matrix.NewFromSlice(entries, len(order), len(order))
			if err != nil {
				return nil, err
			}
			inverse, err := a.Invert()
			if err != nil {
				return nil, solpolerr.InvalidData("singular IMAX matrix")
			}

			measured := make([]float64, len(order))
			for i := range order {
				measured[i] = cubes[i].Data[r][c]
			}

			result, err := inverse.MultiplyVector(measured)
			if err != nil {
				return nil, err
			}
			for i := range order {
				corrected[i][r][c] = result[i]
			}
		}
	}

	mask := b.CombinedMask()
	out := bundle.New()
	out.Meta = bundle.CloneMeta(b.Meta)

	for i, key := range order {
		meta := bundle.CloneMeta(cubes[i].Meta)
		meta["POLARREF"] = "Solar"
		out.Set(key, bundle.NewCube(corrected[i], mask, meta, cubes[i].WCS))
	}

	if alphaCube, ok := b.Alpha(); ok {
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))
	}

	return out, nil
}

/*****************************************************************************************************************/
