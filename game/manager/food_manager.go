package manager

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Random samples tried before falling back to enumerating the free cells.
// On a sparse board a sample almost always lands on a free cell.
const maxSpawnAttempts = 32

// FoodManager picks food cells uniformly among the free cells of a grid
type FoodManager struct {
	rng *rand.Rand
}

func NewFoodManager(seed uint64) *FoodManager {
	return &FoodManager{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Spawn returns a random free cell. occupied reports cells that must not be
// chosen. It returns false only when every cell is occupied.
func (fm *FoodManager) Spawn(grid types.Grid, occupied func(types.Coordinate) bool) (types.Coordinate, bool) {
	if grid.Cells() == 0 {
		return types.Coordinate{}, false
	}

	for i := 0; i < maxSpawnAttempts; i++ {
		food := types.Coordinate{
			Row: fm.rng.Intn(grid.Rows),
			Col: fm.rng.Intn(grid.Cols),
		}
		if !occupied(food) {
			return food, true
		}
	}

	// Crowded board: pick among the cells that are actually free
	free := make([]types.Coordinate, 0, grid.Cells())
	grid.Each(func(c types.Coordinate) {
		if !occupied(c) {
			free = append(free, c)
		}
	})
	if len(free) == 0 {
		return types.Coordinate{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
