package main

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/assets"
	"gl-scene/core"
	"gl-scene/scene"
)

const configPath = "gl-scene.toml"

type cameraConfig struct {
	Position mgl32.Vec3 `toml:"position"`
	Rotation mgl32.Vec3 `toml:"rotation"`
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
}

type worldConfig struct {
	TerrainSize     float32 `toml:"terrain_size"`
	TerrainVertices int     `toml:"terrain_vertices"`
	Billboards      int     `toml:"billboards"`
	SkyCycle        float32 `toml:"sky_cycle"`
}

type appConfig struct {
	LogLevel string            `toml:"log_level"`
	Window   core.WindowConfig `toml:"window"`
	Assets   assets.Paths      `toml:"assets"`
	Camera   cameraConfig      `toml:"camera"`
	World    worldConfig       `toml:"world"`
	Settings scene.Settings    `toml:"settings"`
}

func defaultConfig() appConfig {
	return appConfig{
		LogLevel: "info",
		Window:   core.DefaultWindowConfig(),
		Assets:   assets.DefaultPaths(),
		Camera: cameraConfig{
			Position: mgl32.Vec3{0, 2, 8},
			Rotation: mgl32.Vec3{0, 270, 0},
			FOV:      65,
			Near:     0.1,
			Far:      1000,
		},
		World: worldConfig{
			TerrainSize:     128,
			TerrainVertices: 64,
			Billboards:      6,
			SkyCycle:        120,
		},
		Settings: scene.DefaultSettings(),
	}
}

// loadConfig overlays the TOML file at path onto the defaults. A missing file
// is not an error.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()
	if err := core.LoadConfig(path, &cfg); err != nil {
		if !errors.Is(err, core.ErrConfigNotFound) {
			return cfg, err
		}
		core.LogInfo("no %s, using defaults", path)
	}
	if err := cfg.Camera.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Settings.Sanitise()
	cfg.Camera.Rotation = mgl32.Vec3{
		core.Clamp(cfg.Camera.Rotation.X(), -89.9, 89.9),
		core.Wrap(cfg.Camera.Rotation.Y(), 360),
		0,
	}
	return cfg, nil
}

func (c cameraConfig) validate() error {
	for _, v := range [...]mgl32.Vec3{c.Position, c.Rotation} {
		for _, f := range v {
			if math32.IsNaN(f) || math32.IsInf(f, 0) {
				return fmt.Errorf("camera position and rotation must be finite, got %v", v)
			}
		}
	}
	return nil
}

func (c cameraConfig) camera() *scene.Camera {
	cam := scene.NewCamera(c.FOV, c.Near, c.Far)
	cam.Position = c.Position
	cam.Rotation = c.Rotation
	return cam
}
