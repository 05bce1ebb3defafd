/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// npol.go implements the npol<->mzpsolar edges: equations 44 and 45 of
// DeForest, Seaton & West (2022). Unlike the alpha-dependent edges, the
// conversion matrix here is built once from scalar angles (the input
// polarizer angles and the spacecraft reference angle), not per pixel.
package catalogue

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/matrix"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/system"
)

/*****************************************************************************************************************/

// NPolToMZPSolar is Eq 44: a 3x3 conversion matrix built from the three
// input polarizer angles, the fixed mzpsolar angles and the spacecraft
// reference angle, inverted once and applied to every pixel.
var NPolToMZPSolar = Edge{
	Source:      system.NPol,
	Destination: system.MZPSolar,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		keys := b.DataKeys()
		if len(keys) != 3 {
			return nil, solpolerr.InvalidData(fmt.Sprintf("npol -> mzpsolar requires exactly 3 input channels, got %d", len(keys)))
		}

		phi := make([]float64, 3)
		cubes := make([]*bundle.Cube, 3)
		for i, key := range keys {
			q, err := angle.Parse(key)
			if err != nil {
				return nil, solpolerr.InvalidData(fmt.Sprintf("npol channel key %q is not a valid angle: %v", key, err))
			}
			phi[i] = q.InRadians()
			cube, err := b.MustGet(key)
			if err != nil {
				return nil, err
			}
			cubes[i] = cube
		}

		reference := opts.ReferenceAngle.InRadians()

		conv := make([]float64, 9)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				theta := mzpAngles[mzpOrder[j]]
				c := math.Cos(phi[i] - theta - reference)
				conv[i*3+j] = (4*c*c - 1) / 3
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
			meta["POLAROFF"] = polarOffsetOrZero(cubes[j].Meta)
			out.Set(key, bundle.NewCube(mzp[j], mask, meta, cubes[0].WCS))
		}

		if alphaCube, ok := b.Alpha(); ok {
			out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))
		}

		return out, nil
	},
}

/*****************************************************************************************************************/

func polarOffsetOrZero(meta map[string]any) angle.Quantity {
	v, ok := meta["POLAROFF"]
	if !ok {
		return angle.Degrees(0)
	}
	q, ok := v.(angle.Quantity)
	if !ok {
		return angle.Degrees(0)
	}
	return q
}

/*****************************************************************************************************************/

// MZPSolarToNPol is Eq 45: projects the mzpsolar triple onto an arbitrary
// set of requested output polarizer angles.
var MZPSolarToNPol = Edge{
	Source:        system.MZPSolar,
	Destination:   system.NPol,
	UsesOutAngles: true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		if len(opts.OutAngles) == 0 {
			return nil, solpolerr.InvalidArguments("mzpsolar -> npol requires out_angles")
		}

		channels := make([][][]float64, len(mzpOrder))
		for i, key := range mzpOrder {
			cube, err := b.MustGet(key)
			if err != nil {
				return nil, err
			}
			channels[i] = cube.Data
		}
		base, err := b.MustGet("M")
		if err != nil {
			return nil, err
		}

		reference := opts.ReferenceAngle.InRadians()

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)

		for _, outAngle := range opts.OutAngles {
			target := outAngle.InRadians()
			data := gridFromIndex(base.Rows(), base.Columns(), func(r, c int) float64 {
				sum := 0.0
				for i, key := range mzpOrder {
					theta := mzpAngles[key]
					cv := math.Cos(target - theta - reference)
					sum += channels[i][r][c] * (4*cv*cv - 1)
				}
				return sum / 3
			})
			meta := bundle.CloneMeta(base.Meta)
			meta["POLAR"] = outAngle
			out.Set(outAngle.String(), bundle.NewCube(data, mask, meta, base.WCS))
		}

		if alphaCube, ok := b.Alpha(); ok {
			out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))
		}

		return out, nil
	},
}

/*****************************************************************************************************************/
