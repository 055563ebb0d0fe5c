package renderer

import (
	"github.com/spaghettifunk/spincube/engine/math"
	"github.com/spaghettifunk/spincube/engine/scene"
)

// RenderPacket holds everything a backend needs to draw one frame.
type RenderPacket struct {
	DeltaTime   float64
	FrameNumber uint64
	// Perspective projection applied after the model transforms.
	Projection math.Matrix
	// One affine model transform per cube, camera at the origin looking down -Z.
	Models      []math.Matrix
	Geometry    *scene.Cube
	ClearColour [4]float32
	// Current rotation step, shown by backends that draw a HUD.
	Step float32
}

// SetScene fills the geometry, transforms and projection from the current
// state of s.
func (p *RenderPacket) SetScene(s *scene.Scene, aspect float32) {
	models := s.Transforms()
	p.Projection = s.Projection(aspect)
	p.Models = models[:]
	p.Geometry = s.Cube
	p.Step = s.Step
}
