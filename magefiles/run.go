//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Validates the shaders and runs the demo.
func (Run) Demo() error {
	mg.Deps(Build.Shaders)
	fmt.Println("Run demo...")
	_, err := executeCmd("go", withArgs("run", "./cmd/demo"), withStream())
	return err
}
