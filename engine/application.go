package engine

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/spaghettifunk/spincube/engine/config"
	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/engine/renderer"
	"github.com/spaghettifunk/spincube/engine/renderer/opengl"
	"github.com/spaghettifunk/spincube/engine/renderer/software"
)

// newBackend returns the renderer named in cfg. Software frames of each run
// go to their own directory named after runID, so consecutive runs never
// overwrite each other.
func newBackend(cfg *config.Config, runID uuid.UUID) (renderer.Backend, error) {
	switch cfg.Output.Backend {
	case config.BackendWindow:
		return opengl.New(), nil
	case config.BackendSoftware:
		dir := cfg.Output.Directory
		if dir != "" {
			dir = filepath.Join(dir, runID.String())
		}
		return software.New(dir, cfg.Output.HUD), nil
	}
	return nil, fmt.Errorf("%w: %q", core.ErrUnknownBackend, cfg.Output.Backend)
}
