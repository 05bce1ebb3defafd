/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package catalogue

/*****************************************************************************************************************/

import (
	"math"

	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/wcs"
)

/*****************************************************************************************************************/

func constGrid(rows, columns int, value float64) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, columns)
		for c := range out[r] {
			out[r][c] = value
		}
	}
	return out
}

/*****************************************************************************************************************/

func constCube(value float64, meta map[string]any) *bundle.Cube {
	return bundle.NewCube(constGrid(1, 1, value), nil, meta, wcs.WCS{})
}

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/
