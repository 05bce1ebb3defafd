/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// bp3.go implements the mzpsolar<->bp3 and bp3->bthp edges: equations 3, 7,
// 9, 10, 11, 15 and 16 of DeForest, Seaton & West (2022). The btbr->mzpsolar
// recombination lives in mzp.go.
package catalogue

/*****************************************************************************************************************/

import (
	"math"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/system"
)

/*****************************************************************************************************************/

// MZPSolarToBP3 is Eq 7, 9 and 10: B and pB as in MZPSolarToBpB, plus the
// pBp quadrature component.
var MZPSolarToBP3 = Edge{
	Source:      system.MZPSolar,
	Destination: system.BP3,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("mzpsolar -> bp3 requires the alpha channel")
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

		B := gridSum(channels, func(_ int, v float64) float64 { return (2.0 / 3.0) * v })

		pB := gridFromIndex(base.Rows(), base.Columns(), func(r, c int) float64 {
			sum := 0.0
			for i, key := range mzpOrder {
				theta := mzpAngles[key]
				sum += channels[i][r][c] * math.Cos(2*(theta-alphaCube.Data[r][c]))
			}
			return (-4.0 / 3.0) * sum
		})

		pBp := gridFromIndex(base.Rows(), base.Columns(), func(r, c int) float64 {
			sum := 0.0
			for i, key := range mzpOrder {
				theta := mzpAngles[key]
				sum += channels[i][r][c] * math.Sin(2*(theta-alphaCube.Data[r][c]))
			}
			return (-4.0 / 3.0) * sum
		})

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("B", bundle.NewCube(B, mask, withPolar(base.Meta, "B"), base.WCS))
		out.Set("pB", bundle.NewCube(pB, mask, withPolar(base.Meta, "pB"), base.WCS))
		out.Set("pBp", bundle.NewCube(pBp, mask, withPolar(base.Meta, "pB-prime"), base.WCS))
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// BP3ToMZPSolar is Eq 11: each polarizer brightness is
// 0.5*(B - cos(2(angle-alpha))*pB - sin(2(angle-alpha))*pBp), the exact
// inverse of MZPSolarToBP3.
var BP3ToMZPSolar = Edge{
	Source:      system.BP3,
	Destination: system.MZPSolar,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("bp3 -> mzpsolar requires the alpha channel")
		}
		Bc, err := b.MustGet("B")
		if err != nil {
			return nil, err
		}
		pBc, err := b.MustGet("pB")
		if err != nil {
			return nil, err
		}
		pBpc, err := b.MustGet("pBp")
		if err != nil {
			return nil, err
		}

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)

		for _, key := range mzpOrder {
			theta := mzpAngles[key]
			data := gridFromIndex(Bc.Rows(), Bc.Columns(), func(r, c int) float64 {
				ca := math.Cos(2 * (theta - alphaCube.Data[r][c]))
				sa := math.Sin(2 * (theta - alphaCube.Data[r][c]))
				return 0.5 * (Bc.Data[r][c] - ca*pBc.Data[r][c] - sa*pBpc.Data[r][c])
			})
			meta := bundle.CloneMeta(Bc.Meta)
			meta["POLAR"] = angle.Degrees(theta * 180 / math.Pi)
			meta["POLARREF"] = "Solar"
			out.Set(key, bundle.NewCube(data, mask, meta, Bc.WCS))
		}
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// BP3ToBThP is Eq 9, 15 and 16: the polarization angle and degree of
// polarization recovered from the quadrature pair.
var BP3ToBThP = Edge{
	Source:      system.BP3,
	Destination: system.BThP,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("bp3 -> bthp requires the alpha channel")
		}
		Bc, err := b.MustGet("B")
		if err != nil {
			return nil, err
		}
		pBc, err := b.MustGet("pB")
		if err != nil {
			return nil, err
		}
		pBpc, err := b.MustGet("pBp")
		if err != nil {
			return nil, err
		}

		theta := gridFromIndex(Bc.Rows(), Bc.Columns(), func(r, c int) float64 {
			return 0.5*math.Atan2(pBpc.Data[r][c], pBc.Data[r][c]) + math.Pi/2 + alphaCube.Data[r][c]
		})
		p := gridFromIndex(Bc.Rows(), Bc.Columns(), func(r, c int) float64 {
			return math.Hypot(pBc.Data[r][c], pBpc.Data[r][c]) / Bc.Data[r][c]
		})

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("B", bundle.NewCube(Bc.Data, mask, bundle.CloneMeta(Bc.Meta), Bc.WCS))
		out.Set("theta", bundle.NewCube(theta, mask, withPolar(pBc.Meta, "Theta"), Bc.WCS))
		out.Set("p", bundle.NewCube(p, mask, withPolar(pBc.Meta, "Degree of Polarization"), Bc.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/
