package rules

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when no unoccupied cell is left to hold
// food.
var ErrBoardFull = errors.New("rules: no unoccupied cell left on the board")

// spawnFood picks a uniformly random free cell. It collects the free
// cells in one pass instead of rejection sampling, so a crowded board
// can never make it spin forever.
func spawnFood(b Board, occupied map[Point]struct{}, rnd *rand.Rand) (Point, error) {
	free := make([]Point, 0, b.Width*b.Height-len(occupied))
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			p := Point{Row: row, Col: col}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, ErrBoardFull
	}
	return free[rnd.Intn(len(free))], nil
}
