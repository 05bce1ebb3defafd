/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package catalogue

/*****************************************************************************************************************/

// gridLike allocates a new 2-D array of the same shape as a.
func gridLike(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for r := range a {
		out[r] = make([]float64, len(a[r]))
	}
	return out
}

/*****************************************************************************************************************/

// gridMap1 applies f elementwise to a.
func gridMap1(a [][]float64, f func(float64) float64) [][]float64 {
	out := gridLike(a)
	for r := range a {
		for c := range a[r] {
			out[r][c] = f(a[r][c])
		}
	}
	return out
}

/*****************************************************************************************************************/

// gridMap2 applies f elementwise to a and b, which must share shape.
func gridMap2(a, b [][]float64, f func(float64, float64) float64) [][]float64 {
	out := gridLike(a)
	for r := range a {
		for c := range a[r] {
			out[r][c] = f(a[r][c], b[r][c])
		}
	}
	return out
}

/*****************************************************************************************************************/

// gridMap3 applies f elementwise to a, b and c, which must share shape.
func gridMap3(a, b, c [][]float64, f func(float64, float64, float64) float64) [][]float64 {
	out := gridLike(a)
	for r := range a {
		for col := range a[r] {
			out[r][col] = f(a[r][col], b[r][col], c[r][col])
		}
	}
	return out
}

/*****************************************************************************************************************/

// gridSum folds f over a slice of equally-shaped grids, elementwise.
func gridSum(grids [][][]float64, f func(index int, v float64) float64) [][]float64 {
	out := gridLike(grids[0])
	for r := range out {
		for c := range out[r] {
			sum := 0.0
			for i, g := range grids {
				sum += f(i, g[r][c])
			}
			out[r][c] = sum
		}
	}
	return out
}

/*****************************************************************************************************************/

// gridFromIndex builds a grid of the given shape by calling f with each
// pixel's row and column indices.
func gridFromIndex(rows, columns int, f func(r, c int) float64) [][]float64 {
	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float64, columns)
		for c := 0; c < columns; c++ {
			out[r][c] = f(r, c)
		}
	}
	return out
}

/*****************************************************************************************************************/
