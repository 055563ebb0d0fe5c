package renderer

// Backend draws RenderPackets. Implementations own their output surface (a
// window or an image) between Initialize and Shutdown.
type Backend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	DrawFrame(packet *RenderPacket) error
}
