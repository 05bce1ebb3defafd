/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// instrument.go implements the mzpsolar<->mzpinstru edges: the rotating
// polarizer frames of instruments like NFI, ASPIICS and CODEX, whose
// polarizer angles are fixed to the spacecraft rather than to solar north.
// Both edges are Eq 44/45 of DeForest, Seaton & West (2022), offset by the
// spacecraft roll (CROTA) and any per-polarizer mounting offset (POLAROFF).
package catalogue

/*****************************************************************************************************************/

import (
	"math"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/geometry"
	"github.com/heliopol/solpol/pkg/matrix"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/system"
)

/*****************************************************************************************************************/

// MZPSolarToMZPInstru is Eq 45, with each output polarizer angle offset by
// the instrument's roll rather than left at the solar-north mzp angle.
var MZPSolarToMZPInstru = Edge{
	Source:      system.MZPSolar,
	Destination: system.MZPInstru,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		channels := make([][][]float64, len(mzpOrder))
		for i, key := range mzpOrder {
			cube, err := b.MustGet(key)
			if err != nil {
				return nil, err
			}
			channels[i] = cube.Data
		}
		Zc, err := b.MustGet("Z")
		if err != nil {
			return nil, err
		}

		roll := geometry.ExtractRotation(Zc.WCS).InRadians()
		reference := opts.ReferenceAngle.InRadians()

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)

		for _, key := range mzpOrder {
			target := mzpAngles[key] + roll
			cube, err := b.MustGet(key)
			if err != nil {
				return nil, err
			}
			data := gridFromIndex(cube.Rows(), cube.Columns(), func(r, c int) float64 {
				sum := 0.0
				for i, ikey := range mzpOrder {
					theta := mzpAngles[ikey]
					cv := math.Cos(target - theta - reference)
					sum += channels[i][r][c] * (4*cv*cv - 1)
				}
				return sum / 3
			})
			meta := bundle.CloneMeta(cube.Meta)
			meta["POLARREF"] = "Instrument"
			out.Set(key, bundle.NewCube(data, mask, meta, cube.WCS))
		}

		if alphaCube, ok := b.Alpha(); ok {
			out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))
		}

		return out, nil
	},
}

/*****************************************************************************************************************/

// MZPInstruToMZPSolar is Eq 44, with each input polarizer angle offset by
// the instrument's roll and its individual mounting offset before the
// conversion matrix is built.
var MZPInstruToMZPSolar = Edge{
	Source:      system.MZPInstru,
	Destination: system.MZPSolar,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		Zc, err := b.MustGet("Z")
		if err != nil {
			return nil, err
		}
		roll := geometry.ExtractRotation(Zc.WCS).InRadians()
		reference := opts.ReferenceAngle.InRadians()

		phi := make([]float64, 3)
		cubes := make([]*bundle.Cube, 3)
		for i, key := range mzpOrder {
			cube, err := b.MustGet(key)
			if err != nil {
				return nil, err
			}
			cubes[i] = cube
			phi[i] = mzpAngles[key] + roll + b.PolarOffset(key).InRadians()
		}

		conv := make([]float64, 9)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				theta := mzpAngles[mzpOrder[j]]
				cv := math.Cos(phi[i] - theta - reference)
				conv[i*3+j] = (4*cv*cv - 1) / 3
			}
		}

		convMatrix, err := matrix.NewFromSlice(conv, 3, 3)
		if err != nil {
			return nil, err
		}
		inverse, err := convMatrix.Invert()
		if err != nil {
			return nil, solpolerr.InvalidData("conversion matrix is degenerate")
		}

		rows, columns, err := b.Shape()
		if err != nil {
			return nil, err
		}

		mzp := [3][][]float64{}
		for j := 0; j < 3; j++ {
			mzp[j] = gridLike(cubes[0].Data)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < columns; c++ {
				vector := []float64{cubes[0].Data[r][c], cubes[1].Data[r][c], cubes[2].Data[r][c]}
				result, err := inverse.MultiplyVector(vector)
				if err != nil {
					return nil, err
				}
				for j := 0; j < 3; j++ {
					mzp[j][r][c] = result[j]
				}
			}
		}

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		for j, key := range mzpOrder {
			meta := bundle.CloneMeta(cubes[j].Meta)
			meta["POLAR"] = angle.Degrees(mzpAngles[key] * 180 / math.Pi)
			meta["POLARREF"] = "Solar"
			out.Set(key, bundle.NewCube(mzp[j], mask, meta, cubes[0].WCS))
		}

		if alphaCube, ok := b.Alpha(); ok {
			out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))
		}

		return out, nil
	},
}

/*****************************************************************************************************************/
