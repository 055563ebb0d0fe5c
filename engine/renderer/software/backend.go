// Package software rasterises render packets on the CPU into RGBA images,
// optionally writing every frame as a PNG. It needs no window or GPU.
package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/engine/math"
	"github.com/spaghettifunk/spincube/engine/renderer"
	"github.com/spaghettifunk/spincube/engine/systems"
)

var _ renderer.Backend = (*Backend)(nil)

type Backend struct {
	directory string
	hud       bool

	mu         sync.Mutex
	width      int
	height     int
	image      *image.RGBA
	rasterizer *vector.Rasterizer

	// Frames are PNG encoded on the job system so the render loop never
	// waits on the disk.
	jobs     *systems.JobSystem
	written  atomic.Uint64
	errMu    sync.Mutex
	writeErr error
}

// projectedFace is a visible quad in pixel coordinates.
type projectedFace struct {
	points [4][2]float32
	depth  float32
	colour color.RGBA
}

// New returns a backend writing frame_NNNNN.png files into directory. An
// empty directory keeps frames in memory only (see Image).
func New(directory string, hud bool) *Backend {
	return &Backend{
		directory: directory,
		hud:       hud,
	}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if b.directory != "" {
		if err := os.MkdirAll(b.directory, 0o755); err != nil {
			return fmt.Errorf("creating frame directory: %w", err)
		}
		js, err := systems.NewJobSystem(min(runtime.NumCPU(), 4), 8)
		if err != nil {
			return err
		}
		b.jobs = js
	}
	if err := b.Resized(appWidth, appHeight); err != nil {
		return err
	}
	core.LogInfo("software renderer for %q initialized (%dx%d, output=%q)", appName, appWidth, appHeight, b.directory)
	return nil
}

// Shutdown waits for pending frames to be written and reports the first
// write error, if any.
func (b *Backend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.jobs != nil {
		if err := b.jobs.Shutdown(); err != nil {
			return err
		}
		b.jobs = nil
		core.LogInfo("software renderer wrote %d frames", b.written.Load())
	}
	b.image = nil
	b.rasterizer = nil
	return b.takeWriteErr()
}

func (b *Backend) Resized(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: framebuffer %dx%d", core.ErrInvalidConfig, width, height)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = int(width), int(height)
	b.image = image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	b.rasterizer = vector.NewRasterizer(b.width, b.height)
	return nil
}

func (b *Backend) DrawFrame(packet *renderer.RenderPacket) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.image == nil {
		return core.ErrEngineNotInitialized
	}
	if err := b.takeWriteErr(); err != nil {
		return err
	}

	draw.Draw(b.image, b.image.Bounds(), image.NewUniform(toRGBA(packet.ClearColour[0], packet.ClearColour[1], packet.ClearColour[2])), image.Point{}, draw.Src)

	faces := b.project(packet)
	// Painter's algorithm: far faces first.
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].depth > faces[j].depth
	})
	for _, f := range faces {
		b.fill(f)
	}

	if b.hud {
		b.drawHUD(packet)
	}

	if b.jobs != nil {
		return b.queueFrame(packet.FrameNumber)
	}
	return nil
}

// Image returns a copy of the last rendered frame.
func (b *Backend) Image() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.image == nil {
		return nil
	}
	out := image.NewRGBA(b.image.Bounds())
	copy(out.Pix, b.image.Pix)
	return out
}

func (b *Backend) project(packet *renderer.RenderPacket) []projectedFace {
	if packet.Geometry == nil {
		return nil
	}
	eye := math.NewPoint3Origin()
	near := -packet.Projection.Data[14] / (1 - packet.Projection.Data[10])

	var faces []projectedFace
	var corners [8]math.Point3
	for i := range packet.Models {
		packet.Geometry.Transform(&packet.Models[i], &corners)

		for _, face := range packet.Geometry.Faces {
			a := corners[face.Indices[0]]
			c1 := corners[face.Indices[1]]
			c2 := corners[face.Indices[2]]
			if !math.IsFrontFacing(a, c1, c2, eye) {
				continue
			}

			pf := projectedFace{colour: toRGBA(face.Colour.R, face.Colour.G, face.Colour.B)}
			visible := true
			for k, idx := range face.Indices {
				p := corners[idx]
				if p.Z > -near {
					visible = false
					break
				}
				packet.Projection.TransformFull(&p, &p)
				pf.points[k] = [2]float32{
					(p.X + 1) * 0.5 * float32(b.width),
					(1 - p.Y) * 0.5 * float32(b.height),
				}
				pf.depth += p.Z * 0.25
			}
			if visible {
				faces = append(faces, pf)
			}
		}
	}
	return faces
}

func (b *Backend) fill(f projectedFace) {
	r := b.rasterizer
	r.Reset(b.width, b.height)
	r.MoveTo(f.points[0][0], f.points[0][1])
	for _, p := range f.points[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()
	r.Draw(b.image, b.image.Bounds(), image.NewUniform(f.colour), image.Point{})
}

func (b *Backend) drawHUD(packet *renderer.RenderPacket) {
	d := font.Drawer{
		Dst:  b.image,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 13),
	}
	d.DrawString(fmt.Sprintf("frame %d  step %.4f", packet.FrameNumber, packet.Step))
}

func (b *Backend) queueFrame(frame uint64) error {
	frameImage := image.NewRGBA(b.image.Bounds())
	copy(frameImage.Pix, b.image.Pix)
	path := filepath.Join(b.directory, fmt.Sprintf("frame_%05d.png", frame))

	return b.jobs.Submit(systems.JobTask{
		Name: path,
		Run: func() error {
			return writePNG(path, frameImage)
		},
		OnFailure: func(err error) {
			b.errMu.Lock()
			if b.writeErr == nil {
				b.writeErr = err
			}
			b.errMu.Unlock()
		},
		OnComplete: func() {
			b.written.Add(1)
		},
	})
}

func (b *Backend) takeWriteErr() error {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	err := b.writeErr
	b.writeErr = nil
	return err
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func toRGBA(r, g, b float32) color.RGBA {
	return color.RGBA{
		R: uint8(math.Clamp(r, 0, 1) * 255),
		G: uint8(math.Clamp(g, 0, 1) * 255),
		B: uint8(math.Clamp(b, 0, 1) * 255),
		A: 255,
	}
}
