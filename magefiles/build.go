//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the demo into bin/.
func (Build) Demo() error {
	_, err := executeCmd("go", withArgs("build", "-o", filepath.Join("bin", "gl-scene"), "./cmd/demo"), withStream())
	return err
}

// Checks every GLSL source with glslangValidator.
func (Build) Shaders() error {
	sources, err := filepath.Glob(filepath.Join("assets", "shaders", "*.*"))
	if err != nil {
		return err
	}
	for _, src := range sources {
		if _, err := executeCmd("glslangValidator", withArgs(src)); err != nil {
			return err
		}
	}
	return nil
}

type Check mg.Namespace

// Runs the unit tests.
func (Check) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs go vet.
func (Check) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Runs vet, tests and the shader check.
func (Check) All() {
	mg.SerialDeps(Check.Vet, Check.Test, Build.Shaders)
}
