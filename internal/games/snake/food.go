package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned by FoodPlacer.Place when no free cell exists.
var ErrBoardFull = errors.New("snake: no free cell for food")

// FoodPlacer picks food cells uniformly at random among the free cells.
type FoodPlacer struct {
	rng *rand.Rand
}

// NewFoodPlacer creates a placer drawing from rng.
func NewFoodPlacer(rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{rng: rng}
}

// Place returns a random cell of the dim×dim board that is not in occupied.
//
// It uses iterative rejection sampling: draw a uniform cell, redraw while it is
// occupied. The number of draws is capped at 4×dim² so a nearly full board
// cannot spin; once the cap is hit the free cells are enumerated and one is
// chosen uniformly, which keeps the distribution uniform either way.
func (p *FoodPlacer) Place(occupied map[Cell]struct{}, dim int) (Cell, error) {
	capacity := dim * dim
	if dim <= 0 || len(occupied) >= capacity {
		return Cell{}, ErrBoardFull
	}

	maxAttempts := 4 * capacity
	for range maxAttempts {
		c := Cell{X: p.rng.Intn(dim), Y: p.rng.Intn(dim)}
		if _, taken := occupied[c]; !taken {
			return c, nil
		}
	}

	free := make([]Cell, 0, capacity-len(occupied))
	for y := range dim {
		for x := range dim {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		// occupied held off-board cells, so the board is full after all
		return Cell{}, ErrBoardFull
	}
	return free[p.rng.Intn(len(free))], nil
}
