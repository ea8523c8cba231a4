package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/assets"
	"gl-scene/core"
	"gl-scene/gui"
	"gl-scene/internal/opengl"
	"gl-scene/renderer"
	"gl-scene/scene"
)

const (
	lightOrbitRadius = 6
	lightOrbitHeight = 3
	lightOrbitSpeed  = 0.5 // radians per second
)

func main() {
	if err := run(); err != nil {
		core.LogError("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := core.SetLogLevel(cfg.LogLevel); err != nil {
		core.LogWarn("%v", err)
	}

	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	gl, err := opengl.NewDevice()
	if err != nil {
		return err
	}
	if !gl.HasDebugOutput() {
		core.LogInfo("no debug context, driver messages will not be logged")
	}
	dev := renderer.NewTracker(gl)
	defer dev.Report()

	cache := scene.NewTextureCache(renderer.NewResources(dev))
	defer cache.Destroy()

	paths := cfg.Assets
	sceneProg, err := renderer.LoadProgram(dev, paths.Shader("scene.vert"), paths.Shader("scene.frag"))
	if err != nil {
		return fmt.Errorf("scene program: %w", err)
	}
	defer sceneProg.Destroy()

	screenProg, err := renderer.LoadProgram(dev, paths.Shader("screen.vert"), paths.Shader("screen.frag"))
	if err != nil {
		return fmt.Errorf("screen program: %w", err)
	}
	defer screenProg.Destroy()

	width, height := window.GetFramebufferSize()
	target, err := renderer.NewFramebuffer(dev, int32(width), int32(height))
	if err != nil {
		return err
	}
	defer target.Destroy()

	fallback, err := cache.Acquire("<white>", scene.TextureDiffuse, func() (*scene.Image, error) {
		return scene.SolidImage(255, 255, 255, 255), nil
	})
	if err != nil {
		return err
	}

	w, err := buildWorld(dev, cache, paths, cfg.World)
	if err != nil {
		return err
	}
	defer w.Destroy()

	overlay := gui.NewTitleOverlay()
	if err := overlay.Init(window); err != nil {
		return err
	}
	defer overlay.Shutdown()

	frames := renderer.NewFrameRenderer(dev, target, sceneProg, screenProg, overlay, window)
	defer frames.Destroy()
	frames.SetFallbackTexture(fallback.Handle)

	var watcher *assets.Watcher
	if paths.HotReload {
		if watcher, err = assets.NewWatcher(paths.ShaderDir()); err != nil {
			core.LogWarn("shader hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}
	programs := []*renderer.Program{sceneProg, screenProg}

	camera := cfg.Camera.camera()
	settings := cfg.Settings
	controller := newCameraController()
	sky := newSkyCycle(cfg.World.SkyCycle)

	core.LogInfo("entering frame loop")
	last := core.Time()
	for !window.ShouldClose() {
		now := core.Time()
		dt := float32(now - last)
		last = now

		for _, e := range window.PollEvents() {
			overlay.Event(e)
			if e.Kind != core.EventKey || e.Action != core.ActionPress {
				continue
			}
			switch e.Key {
			case core.KeyEscape:
				window.SetShouldClose(true)
			case core.KeyF5:
				reloadPrograms(programs, nil)
			}
		}
		if watcher != nil {
			if changed := watcher.Drain(); len(changed) > 0 {
				reloadPrograms(programs, changed)
			}
		}

		overlay.BeginFrame()
		controller.Update(window, camera, dt)
		sky.Update(dt)
		angle := float32(now) * lightOrbitSpeed
		settings.PointLight.Position = mgl32.Vec3{
			lightOrbitRadius * math32.Cos(angle), lightOrbitHeight, lightOrbitRadius * math32.Sin(angle),
		}
		settings.FollowCamera(camera)
		overlay.DebugWindow(camera.Position, camera.Rotation, &settings)
		overlay.EndFrame()

		fbw, fbh := window.GetFramebufferSize()
		err := frames.Render(&renderer.Frame{
			Camera:       camera,
			Settings:     &settings,
			Groups:       w.Groups(camera.Position, &settings),
			ClearColour:  sky.ClearColour(),
			ScreenWidth:  int32(fbw),
			ScreenHeight: int32(fbh),
		})
		if err != nil {
			return err
		}
	}
	core.LogInfo("window closed")
	return nil
}

// reloadPrograms rebuilds programs whose sources are in changed, or all of
// them when changed is nil. A program that fails keeps its previous build.
func reloadPrograms(programs []*renderer.Program, changed []string) {
	for _, p := range programs {
		vert, frag := p.Sources()
		if changed != nil && !containsPath(changed, vert) && !containsPath(changed, frag) {
			continue
		}
		if err := p.Reload(); err != nil {
			core.LogWarn("keeping previous program: %v", err)
			continue
		}
		core.LogInfo("reloaded %s + %s", filepath.Base(vert), filepath.Base(frag))
	}
}

func containsPath(paths []string, path string) bool {
	if path == "" {
		return false
	}
	path = filepath.Clean(path)
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}
