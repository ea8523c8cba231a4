package scene

import (
	"fmt"
	"sync"

	"gl-scene/core"
)

// TextureKind says which sampler slot of the scene shader a texture feeds.
type TextureKind int

const (
	TextureUnknown TextureKind = iota
	TextureDiffuse
	TextureSpecular
)

func (k TextureKind) String() string {
	switch k {
	case TextureDiffuse:
		return "diffuse"
	case TextureSpecular:
		return "specular"
	default:
		return "unknown"
	}
}

// Texture is an uploaded GPU texture shared by every mesh that samples the
// same source. Handle is owned by the TextureCache that created it.
type Texture struct {
	Handle uint32
	Kind   TextureKind
	Path   string
	Width  int
	Height int
}

// TextureUploader is the GPU side of the cache. renderer.Resources
// implements it.
type TextureUploader interface {
	UploadTexture(img *Image) (uint32, error)
	DeleteTexture(handle uint32)
}

// TextureCache guarantees a single upload per distinct source path. All
// callers asking for the same path get the same *Texture.
type TextureCache struct {
	uploader TextureUploader

	mu       sync.Mutex
	textures map[string]*Texture
	order    []string
}

func NewTextureCache(uploader TextureUploader) *TextureCache {
	return &TextureCache{
		uploader: uploader,
		textures: make(map[string]*Texture),
	}
}

// Acquire returns the cached texture for path, or decodes and uploads it on
// first use. The kind recorded is the one from the first request.
func (c *TextureCache) Acquire(path string, kind TextureKind, decode func() (*Image, error)) (*Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}

	img, err := decode()
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", path, err)
	}
	if img.Source == "" {
		img.Source = path
	}
	handle, err := c.uploader.UploadTexture(img)
	if err != nil {
		return nil, fmt.Errorf("upload texture %q: %w", path, err)
	}

	tex := &Texture{
		Handle: handle,
		Kind:   kind,
		Path:   path,
		Width:  img.Width,
		Height: img.Height,
	}
	c.textures[path] = tex
	c.order = append(c.order, path)
	core.LogDebug("uploaded %s texture %s (%dx%d)", kind, path, img.Width, img.Height)
	return tex, nil
}

// Load acquires a texture file from disk, flipping it vertically as the
// scene shader expects.
func (c *TextureCache) Load(path string, kind TextureKind) (*Texture, error) {
	return c.LoadFlipped(path, kind, FlipVertical)
}

// LoadFlipped acquires a texture file stored in a different orientation. A
// file that cannot be loaded falls back to a 1×1 white texture under the
// same key so the miss is reported once.
func (c *TextureCache) LoadFlipped(path string, kind TextureKind, flip Flip) (*Texture, error) {
	tex, err := c.Acquire(path, kind, func() (*Image, error) {
		return LoadImage(path, flip)
	})
	if err == nil {
		return tex, nil
	}
	core.LogWarn("%v, using fallback", err)
	return c.Acquire(path, kind, func() (*Image, error) {
		return SolidImage(255, 255, 255, 255), nil
	})
}

func (c *TextureCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.textures)
}

// Destroy deletes every uploaded texture in upload order and empties the
// cache. Meshes still holding *Texture values must not be drawn afterwards.
func (c *TextureCache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, path := range c.order {
		tex := c.textures[path]
		c.uploader.DeleteTexture(tex.Handle)
		tex.Handle = 0
	}
	c.textures = make(map[string]*Texture)
	c.order = nil
}
