package sim

import (
	"math"
	"strings"
	"testing"
)

// visionRow renders a vision vector as an ASCII row using the same
// four-bucket energy rendering original_source/libs/simulation/src/eye.rs
// uses in its own test harness: '#' for high energy, '+' for medium, '.'
// for any energy at all, ' ' for none.
func visionRow(vision []float32) string {
	var b strings.Builder
	for _, v := range vision {
		switch {
		case v >= 0.7:
			b.WriteByte('#')
		case v >= 0.3:
			b.WriteByte('+')
		case v > 0:
			b.WriteByte('.')
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

const testEyeCells = 13

func food(x, y float32) Food {
	return Food{Position: Point{X: x, Y: y}}
}

// runEyeCase mirrors eye.rs's Testcase::run: build an Eye at the given
// fov_range/fov_angle over testEyeCells cells, process vision from
// (x, y, rot) against foods, and compare the rendered row.
func runEyeCase(t *testing.T, foods []Food, fovRange, fovAngle, x, y, rot float32, want string) {
	t.Helper()
	eye := NewEye(fovRange, fovAngle, testEyeCells)
	vision := eye.ProcessVision(Point{X: x, Y: y}, rot, foods)
	got := visionRow(vision)
	if got != want {
		t.Errorf("fovRange=%v fovAngle=%v pos=(%v,%v) rot=%v: vision = %q, want %q",
			fovRange, fovAngle, x, y, rot, got, want)
	}
}

func TestEye_ProcessVision_FOVRanges(t *testing.T) {
	foods := []Food{food(0.5, 1.0)}
	cases := []struct {
		fovRange float32
		want     string
	}{
		{1.0, "      +      "},
		{0.9, "      +      "},
		{0.8, "      +      "},
		{0.7, "      .      "},
		{0.6, "      .      "},
		{0.5, "             "},
		{0.4, "             "},
		{0.3, "             "},
		{0.2, "             "},
		{0.1, "             "},
	}
	for _, c := range cases {
		runEyeCase(t, foods, c.fovRange, float32(math.Pi)/2, 0.5, 0.5, 0, c.want)
	}
}

func TestEye_ProcessVision_Rotations(t *testing.T) {
	foods := []Food{food(0.0, 0.5)}
	pi := float32(math.Pi)
	cases := []struct {
		rot  float32
		want string
	}{
		{0.00 * pi, "         +   "},
		{0.25 * pi, "        +    "},
		{0.50 * pi, "      +      "},
		{0.75 * pi, "    +        "},
		{1.00 * pi, "   +         "},
		{1.25 * pi, " +           "},
		{1.50 * pi, "            +"},
		{1.75 * pi, "           + "},
		{2.00 * pi, "         +   "},
		{2.25 * pi, "        +    "},
		{2.50 * pi, "      +      "},
	}
	for _, c := range cases {
		runEyeCase(t, foods, 1.0, 2.0*pi, 0.5, 0.5, c.rot, c.want)
	}
}

func TestEye_ProcessVision_Positions(t *testing.T) {
	foods := []Food{food(1.0, 0.4), food(1.0, 0.6)}
	rot := float32(3) * float32(math.Pi) / 2
	fovAngle := float32(math.Pi) / 2

	xCases := []struct {
		x, y float32
		want string
	}{
		{1.0, 0.5, "             "},
		{0.9, 0.5, "#           #"},
		{0.8, 0.5, "  #       #  "},
		{0.7, 0.5, "   +     +   "},
		{0.6, 0.5, "    +   +    "},
		{0.5, 0.5, "    +   +    "},
		{0.4, 0.5, "     + +     "},
		{0.3, 0.5, "     . .     "},
		{0.2, 0.5, "     . .     "},
		{0.1, 0.5, "     . .     "},
		{0.0, 0.5, "             "},
	}
	yCases := []struct {
		x, y float32
		want string
	}{
		{0.5, 0.0, "            +"},
		{0.5, 0.1, "          + ."},
		{0.5, 0.2, "         +  +"},
		{0.5, 0.3, "        + +  "},
		{0.5, 0.4, "      +  +   "},
		{0.5, 0.6, "   +  +      "},
		{0.5, 0.7, "  + +        "},
		{0.5, 0.8, "+  +         "},
		{0.5, 0.9, ". +          "},
		{0.5, 1.0, "+            "},
	}
	for _, c := range append(xCases, yCases...) {
		runEyeCase(t, foods, 1.0, fovAngle, c.x, c.y, rot, c.want)
	}
}

func TestEye_ProcessVision_FOVAngles(t *testing.T) {
	foods := []Food{
		food(0.0, 0.0), food(0.0, 0.33), food(0.0, 0.66), food(0.0, 1.0),
		food(1.0, 0.0), food(1.0, 0.33), food(1.0, 0.66), food(1.0, 1.0),
	}
	rot := float32(3) * float32(math.Pi) / 2
	pi := float32(math.Pi)
	cases := []struct {
		fovAngle float32
		want     string
	}{
		{0.25 * pi, " +         + "},
		{0.50 * pi, ".  +     +  ."},
		{0.75 * pi, "  . +   + .  "},
		{1.00 * pi, "   . + + .   "},
		{1.25 * pi, "   . + + .   "},
		{1.50 * pi, ".   .+ +.   ."},
		{1.75 * pi, ".   .+ +.   ."},
		{2.00 * pi, "+.  .+ +.  .+"},
	}
	for _, c := range cases {
		runEyeCase(t, foods, 1.0, c.fovAngle, 0.5, 0.5, rot, c.want)
	}
}

// TestEye_ProcessVision_RotationInvariance is property 9: rotating the
// viewer by theta and rotating every food by the same theta about the
// viewer's position must produce the identical vision vector, since only
// the relative bearing between viewer and food matters.
func TestEye_ProcessVision_RotationInvariance(t *testing.T) {
	eye := NewEye(1.0, 2*math.Pi, 13)
	center := Point{X: 0.5, Y: 0.5}
	foods := []Food{food(0.2, 0.8), food(0.9, 0.3), food(0.5, 0.95)}

	base := eye.ProcessVision(center, 0, foods)

	for _, theta := range []float32{float32(math.Pi) / 6, float32(math.Pi) / 2, 2} {
		rotated := make([]Food, len(foods))
		for i, f := range foods {
			rotated[i] = Food{Position: rotateAbout(center, f.Position, theta)}
		}

		got := eye.ProcessVision(center, theta, rotated)
		for i := range base {
			if diff := got[i] - base[i]; diff > 1e-5 || diff < -1e-5 {
				t.Errorf("theta=%v: vision[%d] = %v, want %v (base row %q, got row %q)",
					theta, i, got[i], base[i], visionRow(base), visionRow(got))
				break
			}
		}
	}
}

// rotateAbout rotates p around center by angle radians.
func rotateAbout(center, p Point, angle float32) Point {
	s, c := sincos32(angle)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: center.X + dx*c - dy*s,
		Y: center.Y + dx*s + dy*c,
	}
}

func TestEye_ProcessVision_LengthMatchesCells(t *testing.T) {
	eye := NewEye(0.5, math.Pi, 7)
	vision := eye.ProcessVision(Point{X: 0.5, Y: 0.5}, 0, nil)
	if len(vision) != 7 {
		t.Errorf("len(vision) = %d, want 7", len(vision))
	}
}

func TestNewEye_InvalidParamsPanic(t *testing.T) {
	cases := []struct {
		name               string
		fovRange, fovAngle float32
		cells              int
	}{
		{"zero range", 0, 1, 9},
		{"negative range", -1, 1, 9},
		{"zero angle", 1, 0, 9},
		{"zero cells", 1, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewEye(c.fovRange, c.fovAngle, c.cells)
		})
	}
}
