//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the OpenGL window.
func (Run) Window() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run spincube...")
	if _, err := executeCmd("bin/spincube", withArgs("-backend", "window"), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders 120 frames into ./frames without opening a window.
func (Run) Headless() error {
	mg.Deps(Build.Binary)
	fmt.Println("Render frames...")
	if _, err := executeCmd("bin/spincube", withArgs("-backend", "software", "-frames", "120", "-out", "frames"), withStream()); err != nil {
		return err
	}
	return nil
}
