/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// stokes.go implements the mzpsolar<->stokes and fourpol->stokes edges:
// equations 9, 12 and 13 of DeForest, Seaton & West (2022).
package catalogue

/*****************************************************************************************************************/

import (
	"math"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/system"
)

/*****************************************************************************************************************/

// muellerMatrix is the fixed (2/3)*[[1,1,1],[-1,2,-1],[-sqrt3,0,sqrt3]]
// mapping mzpsolar brightnesses onto Stokes I, Q, U.
var muellerMatrix = [3][3]float64{
	{2.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0},
	{-2.0 / 3.0, 4.0 / 3.0, -2.0 / 3.0},
	{-2.0 * math.Sqrt(3) / 3.0, 0, 2.0 * math.Sqrt(3) / 3.0},
}

/*****************************************************************************************************************/

// MZPSolarToStokes is Eq 9, 12 and 13: a fixed linear Mueller matrix applied
// to the mzpsolar triple. No position-angle field is required.
var MZPSolarToStokes = Edge{
	Source:      system.MZPSolar,
	Destination: system.Stokes,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		Mc, err := b.MustGet("M")
		if err != nil {
			return nil, err
		}
		Zc, err := b.MustGet("Z")
		if err != nil {
			return nil, err
		}
		Pc, err := b.MustGet("P")
		if err != nil {
			return nil, err
		}

		row := func(r [3]float64) [][]float64 {
			return gridFromIndex(Mc.Rows(), Mc.Columns(), func(i, j int) float64 {
				return r[0]*Mc.Data[i][j] + r[1]*Zc.Data[i][j] + r[2]*Pc.Data[i][j]
			})
		}

		Bi := row(muellerMatrix[0])
		Bq := row(muellerMatrix[1])
		Bu := row(muellerMatrix[2])

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("I", bundle.NewCube(Bi, mask, withPolar(Mc.Meta, "Stokes I"), Mc.WCS))
		out.Set("Q", bundle.NewCube(Bq, mask, withPolar(Zc.Meta, "Stokes Q"), Zc.WCS))
		out.Set("U", bundle.NewCube(Bu, mask, withPolar(Pc.Meta, "Stokes U"), Pc.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// stokesInverse is Eq 11 evaluated at the fixed alpha = pi/2.
var stokesInverse = func() [3][3]float64 {
	const alpha = math.Pi / 2
	row := func(theta float64) [3]float64 {
		return [3]float64{0.5, -0.5 * math.Cos(2*(theta-alpha)), -0.5 * math.Sin(2*(theta-alpha))}
	}
	return [3][3]float64{
		row(-math.Pi / 3),
		row(0),
		row(math.Pi / 3),
	}
}()

/*****************************************************************************************************************/

// StokesToMZPSolar is Eq 11 with alpha fixed at pi/2: Stokes parameters are
// defined without reference to the local position-angle field, so no alpha
// channel is required on input, and none is synthesised on output.
var StokesToMZPSolar = Edge{
	Source:      system.Stokes,
	Destination: system.MZPSolar,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		Ic, err := b.MustGet("I")
		if err != nil {
			return nil, err
		}
		Qc, err := b.MustGet("Q")
		if err != nil {
			return nil, err
		}
		Uc, err := b.MustGet("U")
		if err != nil {
			return nil, err
		}

		apply := func(row [3]float64) [][]float64 {
			return gridFromIndex(Ic.Rows(), Ic.Columns(), func(r, c int) float64 {
				return row[0]*Ic.Data[r][c] + row[1]*Qc.Data[r][c] + row[2]*Uc.Data[r][c]
			})
		}

		Bm := apply(stokesInverse[0])
		Bz := apply(stokesInverse[1])
		Bp := apply(stokesInverse[2])

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("M", bundle.NewCube(Bm, mask, solarMeta(Ic.Meta, mzpAngles["M"]), Ic.WCS))
		out.Set("Z", bundle.NewCube(Bz, mask, solarMeta(Qc.Meta, mzpAngles["Z"]), Ic.WCS))
		out.Set("P", bundle.NewCube(Bp, mask, solarMeta(Uc.Meta, mzpAngles["P"]), Ic.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// FourPolToStokes is the direct combination of the four fixed-angle
// polarizer channels into Stokes I, Q, U.
var FourPolToStokes = Edge{
	Source:      system.FourPol,
	Destination: system.Stokes,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		I0, err := b.MustGet("0 deg")
		if err != nil {
			return nil, err
		}
		I45, err := b.MustGet("45 deg")
		if err != nil {
			return nil, err
		}
		I90, err := b.MustGet("90 deg")
		if err != nil {
			return nil, err
		}
		I135, err := b.MustGet("135 deg")
		if err != nil {
			return nil, err
		}

		Bi := gridMap2(I0.Data, I90.Data, func(a, b float64) float64 { return a + b })
		Bq := gridMap2(I90.Data, I0.Data, func(a, b float64) float64 { return a - b })
		Bu := gridMap2(I135.Data, I45.Data, func(a, b float64) float64 { return a - b })

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("I", bundle.NewCube(Bi, mask, withPolar(I0.Meta, "Stokes I"), I0.WCS))
		out.Set("Q", bundle.NewCube(Bq, mask, withPolar(I0.Meta, "Stokes Q"), I0.WCS))
		out.Set("U", bundle.NewCube(Bu, mask, withPolar(I0.Meta, "Stokes U"), I0.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

func solarMeta(meta map[string]any, angleRadians float64) map[string]any {
	out := bundle.CloneMeta(meta)
	out["POLAR"] = angle.Degrees(angleRadians * 180 / math.Pi)
	out["POLARREF"] = "Solar"
	return out
}

/*****************************************************************************************************************/
