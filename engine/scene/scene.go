package scene

import (
	"github.com/spaghettifunk/spincube/engine/config"
	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/engine/math"
)

const CubeCount = 3

// Scene animates three cubes: a large one spinning about a tilted axis, a
// smaller one orbiting it about Y, and a third riding on the second and
// spinning about X.
type Scene struct {
	// Current rotation in radians, shared by every cube.
	Rotation float32
	// Radians added to Rotation per frame.
	Step float32
	// Amount IncreaseStep/DecreaseStep change Step by.
	StepIncrement float32
	// Upper bound for Step.
	MaxStep float32
	// Unit axis the first cube spins about.
	Axis math.Vector3

	FovRadians float32
	Near       float32
	Far        float32

	Cube *Cube
}

func New(cfg *config.Config) *Scene {
	axis := math.NewVector3(-1, 1, -1)
	axis.Normalize()
	s := &Scene{
		Axis: axis,
		Cube: NewCube(),
	}
	s.Apply(cfg)
	return s
}

// Apply takes the animation and camera settings from cfg, keeping the
// current rotation so a reload does not make the cubes jump.
func (s *Scene) Apply(cfg *config.Config) {
	s.StepIncrement = cfg.Animation.StepIncrement
	s.MaxStep = cfg.Animation.MaxStep
	s.Step = math.Clamp(cfg.Animation.RotationStep, 0, s.MaxStep)
	s.FovRadians = math.DegToRad(cfg.Camera.FovDegrees)
	s.Near = cfg.Camera.Near
	s.Far = cfg.Camera.Far
}

// Advance moves the animation forward by one frame.
func (s *Scene) Advance() {
	s.Rotation = math.WrapAngle(s.Rotation + s.Step)
}

func (s *Scene) IncreaseStep() {
	s.Step = math.Clamp(s.Step+s.StepIncrement, 0, s.MaxStep)
	core.LogDebug("rotation step increased to %g", s.Step)
}

func (s *Scene) DecreaseStep() {
	s.Step = math.Clamp(s.Step-s.StepIncrement, 0, s.MaxStep)
	core.LogDebug("rotation step decreased to %g", s.Step)
}

// Transforms returns the model transform of each cube for the current
// rotation. Transforms compose by post-multiplication, so the rightmost
// factor applies to the cube first:
//
//	cube 0: T(0,0,-40) R_axis
//	cube 1: T(0,0,-40) R_axis T(-10,0,0) R_y S(0.6)
//	cube 2: cube 1 T(0,0,5) R_x S(0.5)
func (s *Scene) Transforms() [CubeCount]math.Matrix {
	var out [CubeCount]math.Matrix

	rot1 := math.NewMatrixRotateUnitAxis(s.Axis, s.Rotation)
	trans1 := math.NewMatrixTranslate(0, 0, -40)

	ctm := math.NewMatrixIdentity()
	ctm.Multiply(&ctm, &trans1)
	ctm.Multiply(&ctm, &rot1)
	out[0] = ctm

	trans2 := math.NewMatrixTranslate(-10, 0, 0)
	rot2 := math.NewMatrixRotateY(s.Rotation)
	scale2 := math.NewMatrixScaleUniform(0.6)
	ctm.Multiply(&ctm, &trans2)
	ctm.Multiply(&ctm, &rot2)
	ctm.Multiply(&ctm, &scale2)
	out[1] = ctm

	trans3 := math.NewMatrixTranslate(0, 0, 5)
	rot3 := math.NewMatrixRotateX(s.Rotation)
	scale3 := math.NewMatrixScaleUniform(0.5)
	ctm.Multiply(&ctm, &trans3)
	ctm.Multiply(&ctm, &rot3)
	ctm.Multiply(&ctm, &scale3)
	out[2] = ctm

	return out
}

// Projection returns the perspective matrix for the given aspect ratio.
func (s *Scene) Projection(aspect float32) math.Matrix {
	return math.NewMatrixPerspective(s.FovRadians, aspect, s.Near, s.Far)
}
