// Package texture loads images into OpenGL textures.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
)

// Texture is a 2D RGBA texture with repeat wrapping and mipmapped filtering.
type Texture struct {
	id            uint32
	width, height int
	source        string
}

// Load decodes an image file (PNG, JPEG, BMP or TGA) and uploads it.
func Load(path string) (*Texture, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	tex := FromImage(img)
	tex.source = path
	return tex, nil
}

// DecodeFile decodes an image file into RGBA pixels.
func DecodeFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if format == "" {
		return nil, fmt.Errorf("decoding %s: unknown format", path)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with rows in reverse order. Image rows run top
// to bottom while GL expects the first row at v = 0.
func FlipVertical(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	h := img.Rect.Dy()
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+img.Rect.Dx()*4]
		copy(out.Pix[(h-1-y)*out.Stride:], src)
	}
	return out
}

// Checker builds a size x size checkerboard with cells squares per side.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// FromImage uploads img as a new texture.
func FromImage(img *image.RGBA) *Texture {
	flipped := FlipVertical(img)
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())

	t := &Texture{width: int(w), height: int(h)}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(flipped.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// ID returns the GL texture object.
func (t *Texture) ID() uint32 { return t.id }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Source returns the file the texture was loaded from, empty for generated textures.
func (t *Texture) Source() string { return t.source }

// Destroy deletes the GL texture.
func (t *Texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
