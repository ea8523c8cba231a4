package assets

import (
	"path/filepath"
)

// Paths locates the files the demo loads. Relative entries are resolved
// against Root.
type Paths struct {
	Root      string `toml:"root"`
	Shaders   string `toml:"shaders"`
	Textures  string `toml:"textures"`
	Model     string `toml:"model"`
	HotReload bool   `toml:"hot_reload"`
}

func DefaultPaths() Paths {
	return Paths{
		Root:      "assets",
		Shaders:   "shaders",
		Textures:  "textures",
		Model:     "models/backpack/backpack.gltf",
		HotReload: true,
	}
}

func (p Paths) resolve(parts ...string) string {
	path := filepath.Join(parts...)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Root, path)
}

// ShaderDir is the directory holding the GLSL sources.
func (p Paths) ShaderDir() string {
	return p.resolve(p.Shaders)
}

// Shader returns the path of a shader source file such as "scene.vert".
func (p Paths) Shader(name string) string {
	return filepath.Join(p.ShaderDir(), name)
}

// Texture returns the path of a texture image.
func (p Paths) Texture(name string) string {
	return p.resolve(p.Textures, name)
}

// ModelPath returns the model file to import; empty when none is configured.
func (p Paths) ModelPath() string {
	if p.Model == "" {
		return ""
	}
	return p.resolve(p.Model)
}
