package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrNotImage = errors.New("not a supported image")

// Flip is applied to decoded pixels before upload. Whether an image needs
// flipping depends on where it came from, not on the GPU.
type Flip int

const (
	FlipNone Flip = iota
	FlipVertical
	FlipHorizontal
	FlipBoth
)

// Image is tightly packed RGBA8 pixel data, rows top to bottom. Source
// names where the pixels came from and is used as a debug label.
type Image struct {
	Width  int
	Height int
	Pixels []byte
	Source string
}

// LoadImage reads and decodes an image file.
func LoadImage(path string, flip Flip) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", path, err)
	}
	img, err := DecodeImage(data, flip)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	img.Source = path
	return img, nil
}

// DecodeImage sniffs the format of data, decodes it and converts it to RGBA8.
func DecodeImage(data []byte, flip Flip) (*Image, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !filetype.IsImage(data) {
		return nil, ErrNotImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotImage, kind.Extension, err)
	}
	return FromImage(src, flip), nil
}

// FromImage converts any image.Image to an RGBA8 Image.
func FromImage(src image.Image, flip Flip) *Image {
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	switch flip {
	case FlipVertical:
		rgba = transform.FlipV(rgba)
	case FlipHorizontal:
		rgba = transform.FlipH(rgba)
	case FlipBoth:
		rgba = transform.FlipH(transform.FlipV(rgba))
	}

	return &Image{
		Width:  rgba.Bounds().Dx(),
		Height: rgba.Bounds().Dy(),
		Pixels: rgba.Pix,
	}
}

// SolidImage returns a 1×1 image of a single colour.
func SolidImage(r, g, b, a uint8) *Image {
	return &Image{
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// MipLevels is the length of a full mip chain for a w×h image.
func (img *Image) MipLevels() int32 {
	size := img.Width
	if img.Height > size {
		size = img.Height
	}
	levels := int32(1)
	for size > 1 {
		size >>= 1
		levels++
	}
	return levels
}
