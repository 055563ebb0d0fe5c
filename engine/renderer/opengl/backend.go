// Package opengl draws render packets with the fixed-function OpenGL 2.1
// pipeline. A context must be current on the calling thread before
// Initialize; the platform layer creates it and swaps buffers.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/engine/math"
	"github.com/spaghettifunk/spincube/engine/renderer"
)

var _ renderer.Backend = (*Backend)(nil)

type Backend struct {
	initialized bool
	width       int32
	height      int32
}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	core.LogInfo("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.ShadeModel(gl.FLAT)

	b.initialized = true
	if err := b.Resized(appWidth, appHeight); err != nil {
		return err
	}
	core.LogInfo("OpenGL renderer for %q initialized", appName)
	return checkError("initialize")
}

func (b *Backend) Shutdown() error {
	b.initialized = false
	return nil
}

func (b *Backend) Resized(width, height uint32) error {
	if !b.initialized {
		return core.ErrEngineNotInitialized
	}
	b.width, b.height = int32(width), int32(height)
	gl.Viewport(0, 0, b.width, b.height)
	return nil
}

func (b *Backend) DrawFrame(packet *renderer.RenderPacket) error {
	if !b.initialized {
		return core.ErrEngineNotInitialized
	}
	c := packet.ClearColour
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// Model transforms are applied on the CPU, so the modelview stack stays
	// at identity and only the projection goes to GL.
	projection := packet.Projection.ToArray()
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&projection[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	if packet.Geometry == nil {
		return checkError("draw")
	}

	var corners [8]math.Point3
	gl.Begin(gl.QUADS)
	for i := range packet.Models {
		packet.Geometry.Transform(&packet.Models[i], &corners)
		for _, face := range packet.Geometry.Faces {
			gl.Color3f(face.Colour.R, face.Colour.G, face.Colour.B)
			for _, idx := range face.Indices {
				v := corners[idx].ToArray()
				gl.Vertex3fv(&v[0])
			}
		}
	}
	gl.End()

	return checkError("draw")
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl %s: error 0x%04x", op, code)
	}
	return nil
}
