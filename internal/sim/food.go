package sim

import "github.com/matthewliu10/birdman/internal/rng"

// Food is a stationary point an Animal can eat by colliding with it.
type Food struct {
	Position Point
}

func randomFood(r rng.Source) Food {
	x, y := r.UnitSquarePoint()
	return Food{Position: Point{X: x, Y: y}}
}
