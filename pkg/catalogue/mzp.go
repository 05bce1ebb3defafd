/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// mzp.go implements the mzpsolar<->bpb<->btbr family of edges: equations 1,
// 2, 4, 7 and 9 of DeForest, Seaton & West (2022).
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

// mzpAngles maps each mzpsolar channel key to its polarizer angle in
// radians, theta in Eq 7 and 9.
var mzpAngles = map[string]float64{
	"M": -math.Pi / 3,
	"Z": 0,
	"P": math.Pi / 3,
}

/*****************************************************************************************************************/

// mzpOrder is the canonical iteration order of the mzpsolar channel keys.
var mzpOrder = []string{"M", "Z", "P"}

/*****************************************************************************************************************/

// MZPSolarToBpB is Eq 7 and 9: B is the mean brightness, pB the polarized
// brightness, both folded against the position-angle field.
var MZPSolarToBpB = Edge{
	Source:      system.MZPSolar,
	Destination: system.BpB,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("mzpsolar -> bpb requires the alpha channel")
		}

		channels := make([][][]float64, len(mzpOrder))
		for i, key := range mzpOrder {
			cube, err := b.MustGet(key)
			if err != nil {
				return nil, err
			}
			channels[i] = cube.Data
		}

		B := gridSum(channels, func(_ int, v float64) float64 {
			return (2.0 / 3.0) * v
		})

		pB := gridFromIndex(len(B), len(B[0]), func(r, c int) float64 {
			sum := 0.0
			for i, key := range mzpOrder {
				theta := mzpAngles[key]
				sum += channels[i][r][c] * math.Cos(2*(theta-alphaCube.Data[r][c]))
			}
			return (-4.0 / 3.0) * sum
		})

		base, err := b.MustGet("M")
		if err != nil {
			return nil, err
		}

		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("B", bundle.NewCube(B, b.CombinedMask(), withPolar(base.Meta, "B"), base.WCS))
		out.Set("pB", bundle.NewCube(pB, b.CombinedMask(), withPolar(base.Meta, "pB"), base.WCS))
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// BpBToMZPSolar is Eq 4: recovers each polarizer brightness from B, pB and
// the position-angle field.
var BpBToMZPSolar = Edge{
	Source:      system.BpB,
	Destination: system.MZPSolar,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("bpb -> mzpsolar requires the alpha channel")
		}
		Bc, err := b.MustGet("B")
		if err != nil {
			return nil, err
		}
		pBc, err := b.MustGet("pB")
		if err != nil {
			return nil, err
		}

		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		mask := b.CombinedMask()

		for _, key := range mzpOrder {
			theta := mzpAngles[key]
			data := gridFromIndex(Bc.Rows(), Bc.Columns(), func(r, c int) float64 {
				return 0.5 * (Bc.Data[r][c] - pBc.Data[r][c]*math.Cos(2*(theta-alphaCube.Data[r][c])))
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

// BpBToBtBr is Eq 1 and 2: a fixed linear recombination of B and pB, alpha
// carried through unused.
var BpBToBtBr = Edge{
	Source:      system.BpB,
	Destination: system.BtBr,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("bpb -> btbr requires the alpha channel")
		}
		Bc, err := b.MustGet("B")
		if err != nil {
			return nil, err
		}
		pBc, err := b.MustGet("pB")
		if err != nil {
			return nil, err
		}

		Br := gridMap2(Bc.Data, pBc.Data, func(B, pB float64) float64 { return (B - pB) / 2 })
		Bt := gridMap2(Bc.Data, pBc.Data, func(B, pB float64) float64 { return (B + pB) / 2 })

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("Bt", bundle.NewCube(Bt, mask, withPolar(Bc.Meta, "Bt"), Bc.WCS))
		out.Set("Br", bundle.NewCube(Br, mask, withPolar(Bc.Meta, "Br"), Bc.WCS))
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// BtBrToBpB is the inverse recombination, Table 1.
var BtBrToBpB = Edge{
	Source:      system.BtBr,
	Destination: system.BpB,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("btbr -> bpb requires the alpha channel")
		}
		Btc, err := b.MustGet("Bt")
		if err != nil {
			return nil, err
		}
		Brc, err := b.MustGet("Br")
		if err != nil {
			return nil, err
		}

		pB := gridMap2(Btc.Data, Brc.Data, func(Bt, Br float64) float64 { return Bt - Br })
		B := gridMap2(Btc.Data, Brc.Data, func(Bt, Br float64) float64 { return Bt + Br })

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)
		out.Set("B", bundle.NewCube(B, mask, withPolar(Btc.Meta, "B"), Btc.WCS))
		out.Set("pB", bundle.NewCube(pB, mask, withPolar(Btc.Meta, "pB"), Btc.WCS))
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// BtBrToMZPSolar folds Bt and Br back onto each mzpsolar polarizer angle.
var BtBrToMZPSolar = Edge{
	Source:      system.BtBr,
	Destination: system.MZPSolar,
	UsesAlpha:   true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("btbr -> mzpsolar requires the alpha channel")
		}
		Btc, err := b.MustGet("Bt")
		if err != nil {
			return nil, err
		}
		Brc, err := b.MustGet("Br")
		if err != nil {
			return nil, err
		}

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)

		for _, key := range mzpOrder {
			theta := mzpAngles[key]
			data := gridFromIndex(Btc.Rows(), Btc.Columns(), func(r, c int) float64 {
				s := math.Sin(theta - alphaCube.Data[r][c])
				ca := math.Cos(theta - alphaCube.Data[r][c])
				return Btc.Data[r][c]*s*s + Brc.Data[r][c]*ca*ca
			})
			meta := bundle.CloneMeta(Btc.Meta)
			meta["POLAR"] = angle.Degrees(theta * 180 / math.Pi)
			meta["POLARREF"] = "Solar"
			out.Set(key, bundle.NewCube(data, mask, meta, Btc.WCS))
		}
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// BtBrToNPol projects Bt and Br onto an arbitrary set of requested
// polarizer angles.
var BtBrToNPol = Edge{
	Source:        system.BtBr,
	Destination:   system.NPol,
	UsesAlpha:     true,
	UsesOutAngles: true,
	Apply: func(b *bundle.Bundle, opts Options) (*bundle.Bundle, error) {
		alphaCube, ok := b.Alpha()
		if !ok {
			return nil, solpolerr.MissingAlpha("btbr -> npol requires the alpha channel")
		}
		if len(opts.OutAngles) == 0 {
			return nil, solpolerr.InvalidArguments("btbr -> npol requires out_angles")
		}
		Btc, err := b.MustGet("Bt")
		if err != nil {
			return nil, err
		}
		Brc, err := b.MustGet("Br")
		if err != nil {
			return nil, err
		}

		mask := b.CombinedMask()
		out := bundle.New()
		out.Meta = bundle.CloneMeta(b.Meta)

		for _, outAngle := range opts.OutAngles {
			theta := outAngle.InRadians()
			data := gridFromIndex(Btc.Rows(), Btc.Columns(), func(r, c int) float64 {
				s := math.Sin(theta - alphaCube.Data[r][c])
				ca := math.Cos(theta - alphaCube.Data[r][c])
				return Btc.Data[r][c]*s*s + Brc.Data[r][c]*ca*ca
			})
			meta := bundle.CloneMeta(Btc.Meta)
			meta["POLAR"] = outAngle
			out.Set(outAngle.String(), bundle.NewCube(data, mask, meta, Btc.WCS))
		}
		out.SetAlpha(bundle.NewCube(alphaCube.Data, nil, alphaCube.Meta, alphaCube.WCS))

		return out, nil
	},
}

/*****************************************************************************************************************/

// withPolar clones meta and overwrites its POLAR tag, leaving POLARREF and
// every other key untouched.
func withPolar(meta map[string]any, polar string) map[string]any {
	out := bundle.CloneMeta(meta)
	out["POLAR"] = polar
	return out
}

/*****************************************************************************************************************/

// RecoverPBFromSingleFrame inverts the bpb -> mzpsolar equation at a single
// polarizer angle: given the clear total B and one polarized frame Btheta
// taken at angle theta, pB = (B - 2*Btheta) / cos(2(theta-alpha)). Pixels
// where the cosine falls below DenominatorTolerance are masked invalid
// rather than divided through.
func RecoverPBFromSingleFrame(B, Btheta, alpha [][]float64, theta float64) (data [][]float64, mask [][]bool) {
	rows := len(B)
	data = gridLike(B)
	mask = make([][]bool, rows)

	for r := 0; r < rows; r++ {
		mask[r] = make([]bool, len(B[r]))
		for c := range B[r] {
			denominator := math.Cos(2 * (theta - alpha[r][c]))
			if math.Abs(denominator) < DenominatorTolerance {
				mask[r][c] = true
				continue
			}
			data[r][c] = (B[r][c] - 2*Btheta[r][c]) / denominator
		}
	}

	return data, mask
}

/*****************************************************************************************************************/
