package scene

import (
	"github.com/spaghettifunk/spincube/engine/math"
)

type Colour struct {
	R, G, B float32
}

var (
	ColourGreen = Colour{0, 1, 0}
	ColourWhite = Colour{1, 1, 1}
	ColourBlue  = Colour{0, 0, 1}
)

// Face is a quad given as four indices into Cube.Corners, wound
// counter-clockwise when seen from outside the cube.
type Face struct {
	Indices [4]int
	Colour  Colour
}

// Cube is a cube with side length 2 centred at the origin.
type Cube struct {
	Corners [8]math.Point3
	Faces   [6]Face
}

// NewCube returns the unit cube with opposite faces sharing a colour:
// green on ±X, white on ±Y and blue on ±Z.
func NewCube() *Cube {
	return &Cube{
		Corners: [8]math.Point3{
			math.NewPoint3(1, -1, 1),
			math.NewPoint3(1, -1, -1),
			math.NewPoint3(1, 1, -1),
			math.NewPoint3(1, 1, 1),
			math.NewPoint3(-1, -1, 1),
			math.NewPoint3(-1, -1, -1),
			math.NewPoint3(-1, 1, -1),
			math.NewPoint3(-1, 1, 1),
		},
		Faces: [6]Face{
			{Indices: [4]int{0, 1, 2, 3}, Colour: ColourGreen}, // +X
			{Indices: [4]int{6, 5, 4, 7}, Colour: ColourGreen}, // -X
			{Indices: [4]int{1, 0, 4, 5}, Colour: ColourWhite}, // -Y
			{Indices: [4]int{2, 1, 5, 6}, Colour: ColourBlue},  // -Z
			{Indices: [4]int{3, 2, 6, 7}, Colour: ColourWhite}, // +Y
			{Indices: [4]int{0, 3, 7, 4}, Colour: ColourBlue},  // +Z
		},
	}
}

// Transform maps every corner through model into out. The affine fast path
// is used, so model must keep its last row at 0,0,0,1.
func (c *Cube) Transform(model *math.Matrix, out *[8]math.Point3) {
	for i := range c.Corners {
		model.TransformPoint(&c.Corners[i], &out[i])
	}
}
