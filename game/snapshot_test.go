package game

import (
	"reflect"
	"testing"

	"gridsnake/game/types"
)

func TestDiffAfterMove(t *testing.T) {
	prev := Snapshot{
		Head:    pt(2, 2),
		Trail:   []types.Coordinate{pt(2, 0), pt(2, 1), pt(2, 2)},
		Food:    pt(0, 4),
		HasFood: true,
	}
	next := Snapshot{
		Head:    pt(2, 3),
		Trail:   []types.Coordinate{pt(2, 1), pt(2, 2), pt(2, 3)},
		Food:    pt(0, 4),
		HasFood: true,
	}

	want := []CellChange{
		{At: pt(2, 0), Cell: Empty},
		{At: pt(2, 2), Cell: Body},
		{At: pt(2, 3), Cell: Head},
	}
	if got := Diff(prev, next); !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiffAfterEating(t *testing.T) {
	prev := Snapshot{
		Head:    pt(1, 1),
		Trail:   []types.Coordinate{pt(1, 0), pt(1, 1)},
		Food:    pt(1, 2),
		HasFood: true,
	}
	next := Snapshot{
		Head:    pt(1, 2),
		Trail:   []types.Coordinate{pt(1, 0), pt(1, 1), pt(1, 2)},
		Food:    pt(3, 3),
		HasFood: true,
	}

	want := []CellChange{
		{At: pt(1, 1), Cell: Body},
		{At: pt(1, 2), Cell: Head},
		{At: pt(3, 3), Cell: Food},
	}
	if got := Diff(prev, next); !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiffFromEmpty(t *testing.T) {
	next := Snapshot{
		Head:  pt(0, 1),
		Trail: []types.Coordinate{pt(0, 0), pt(0, 1)},
	}
	got := Diff(Snapshot{}, next)
	want := []CellChange{{At: pt(0, 0), Cell: Body}, {At: pt(0, 1), Cell: Head}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
	if len(Diff(next, next)) != 0 {
		t.Error("Diff of identical snapshots is not empty")
	}
}
