package sim

import "math"

// Eye converts the foods within an Animal's field of view into a fixed
// size vector of proximity energies, one per angular cell, fed directly into
// the owning Animal's Brain.
type Eye struct {
	fovRange float32
	fovAngle float32
	cells    int
}

// Reference field-of-view parameters for an Animal's Eye.
const (
	DefaultFOVRange = 0.25
	DefaultFOVAngle = pi32 + pi32/4
	DefaultCells    = 9
)

// NewEye builds an Eye, panicking if any parameter is non-positive.
func NewEye(fovRange, fovAngle float32, cells int) Eye {
	if fovRange <= 0 {
		panic("sim: NewEye: fovRange must be positive")
	}
	if fovAngle <= 0 {
		panic("sim: NewEye: fovAngle must be positive")
	}
	if cells < 1 {
		panic("sim: NewEye: cells must be at least 1")
	}
	return Eye{fovRange: fovRange, fovAngle: fovAngle, cells: cells}
}

// DefaultEye returns an Eye configured with the reference FOV parameters.
func DefaultEye() Eye {
	return NewEye(DefaultFOVRange, DefaultFOVAngle, DefaultCells)
}

// Cells reports the length of the vector ProcessVision returns.
func (e Eye) Cells() int {
	return e.cells
}

// ProcessVision rasterizes foods visible from position, facing rotation,
// into e.Cells() angular buckets. Each food contributes 1 - distance/range
// of proximity energy to the cell its angle falls into; foods outside the
// range or outside the field of view contribute nothing.
func (e Eye) ProcessVision(position Point, rotation float32, foods []Food) []float32 {
	vision := make([]float32, e.cells)

	// Reduce rotation to the angle of its (cos, sin) pair, in (-pi, pi],
	// before measuring each food's bearing relative to it.
	s, c := sincos32(rotation)
	heading := float32(math.Atan2(float64(s), float64(c)))

	for _, food := range foods {
		dx := food.Position.X - position.X
		dy := food.Position.Y - position.Y
		r := distance(position, food.Position)
		if r >= e.fovRange {
			continue
		}

		theta := wrapAngle(angleBetween(dx, dy) - heading)
		if theta < -e.fovAngle/2 || theta > e.fovAngle/2 {
			continue
		}

		u := (theta + e.fovAngle/2) / e.fovAngle
		cell := int(u * float32(e.cells))
		if cell >= e.cells {
			cell = e.cells - 1
		}
		if cell < 0 {
			cell = 0
		}

		energy := 1 - r/e.fovRange
		vision[cell] += energy
	}

	return vision
}
