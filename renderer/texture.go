package renderer

import (
	"fmt"

	"gl-scene/scene"
)

// Texture2D is an immutable RGBA8 texture with a full mip chain.
type Texture2D struct {
	Handle uint32
	Width  int32
	Height int32
	Levels int32

	dev Device
}

var defaultSampler = SamplerParams{
	Wrap:      WrapRepeat,
	MinFilter: FilterLinearMipmapLinear,
	MagFilter: FilterLinear,
}

// NewTexture uploads img and generates its mipmaps. Pixels are uploaded as
// given; any flip has already been applied by the image loader.
func NewTexture(dev Device, img *scene.Image) (*Texture2D, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("upload texture: empty image")
	}
	if len(img.Pixels) < img.Width*img.Height*4 {
		return nil, fmt.Errorf("upload texture: %dx%d image has %d bytes", img.Width, img.Height, len(img.Pixels))
	}

	t := &Texture2D{
		Handle: dev.CreateTexture(),
		Width:  int32(img.Width),
		Height: int32(img.Height),
		Levels: img.MipLevels(),
		dev:    dev,
	}
	dev.TextureStorage(t.Handle, t.Levels, FormatRGBA8, t.Width, t.Height)
	dev.TextureSubImage(t.Handle, t.Width, t.Height, img.Pixels)
	dev.GenerateMipmap(t.Handle)
	dev.TextureSampler(t.Handle, defaultSampler)
	if img.Source != "" {
		dev.ObjectLabel(ObjectTexture, t.Handle, img.Source)
	}
	return t, nil
}

func (t *Texture2D) Destroy() {
	if t.Handle != 0 {
		t.dev.DeleteTexture(t.Handle)
		t.Handle = 0
	}
}

// Resources uploads textures on behalf of a scene.TextureCache.
type Resources struct {
	dev Device
}

func NewResources(dev Device) *Resources {
	return &Resources{dev: dev}
}

func (r *Resources) UploadTexture(img *scene.Image) (uint32, error) {
	t, err := NewTexture(r.dev, img)
	if err != nil {
		return 0, err
	}
	return t.Handle, nil
}

func (r *Resources) DeleteTexture(handle uint32) {
	if handle != 0 {
		r.dev.DeleteTexture(handle)
	}
}
