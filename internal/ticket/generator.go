// Package ticket holds the tambula grid generator. It is pure: no I/O, no
// shared state, safe to call from any number of goroutines.
package ticket

import (
	"math/rand/v2"

	"tambula/internal/model"
)

const (
	rows    = 3
	columns = 9
)

// columnRange returns the inclusive number range owned by a grid column:
// column 0 holds 1-9, column c (c >= 1) holds 10c+1 through 10c+10.
func columnRange(col int) (int, int) {
	if col == 0 {
		return 1, 9
	}
	return 10*col + 1, 10*col + 10
}

func newColumnPools() [columns][]int {
	var pools [columns][]int
	for col := 0; col < columns; col++ {
		lo, hi := columnRange(col)
		pool := make([]int, 0, hi-lo+1)
		for n := lo; n <= hi; n++ {
			pool = append(pool, n)
		}
		pools[col] = pool
	}
	return pools
}

// Generate produces one 3x9 grid. Each cell takes a uniformly random
// number still left in its column's pool; a cell stays blank only when
// the pool is exhausted. Per-row number density is whatever falls out of
// the draws, it is not enforced here.
func Generate() model.Grid {
	pools := newColumnPools()
	var grid model.Grid
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			pool := pools[col]
			if len(pool) == 0 {
				continue
			}
			idx := rand.IntN(len(pool))
			n := pool[idx]
			pools[col] = append(pool[:idx], pool[idx+1:]...)
			grid[row][col] = &n
		}
	}
	return grid
}
