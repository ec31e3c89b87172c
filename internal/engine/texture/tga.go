package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// TGA image types handled by DecodeTGA.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: data truncated")

func init() {
	// The first header byte is the variable-length ID size; the next two pin the
	// colour-map type and image type.
	image.RegisterFormat("tga", "?\x00\x02", decodeTGAReader, decodeTGAConfig)
	image.RegisterFormat("tga", "?\x00\x0a", decodeTGAReader, decodeTGAConfig)
}

type tgaHeader struct {
	idLength      int
	imageType     byte
	width, height int
	bytesPerPixel int
	topToBottom   bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, errTGATruncated
	}
	h := tgaHeader{
		idLength:      int(data[0]),
		imageType:     data[2],
		width:         int(data[12]) | int(data[13])<<8,
		height:        int(data[14]) | int(data[15])<<8,
		bytesPerPixel: int(data[16]) / 8,
		topToBottom:   data[17]&0x20 != 0,
	}
	if data[1] != 0 {
		return h, fmt.Errorf("tga: color-mapped images not supported")
	}
	if h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE {
		return h, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	}
	if h.bytesPerPixel != 3 && h.bytesPerPixel != 4 {
		return h, fmt.Errorf("tga: unsupported bit depth %d", data[16])
	}
	return h, nil
}

func decodeTGAReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeTGA(data)
}

func decodeTGAConfig(r io.Reader) (image.Config, error) {
	header := make([]byte, tgaHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return image.Config{}, errTGATruncated
	}
	h, err := parseTGAHeader(header)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: h.width, Height: h.height}, nil
}

// DecodeTGA decodes an uncompressed or RLE-compressed 24/32-bit true-color TGA image.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}
	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		header: h,
		src:    data[offset:],
		img:    image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
	}
	if h.imageType == TGATypeUncompressed {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	header tgaHeader
	src    []byte
	pos    int
	img    *image.RGBA
	pixel  int
}

// next reads one BGR(A) pixel from the source.
func (d *tgaDecoder) next() (color.RGBA, bool) {
	bpp := d.header.bytesPerPixel
	if d.pos+bpp > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos : d.pos+bpp]
	d.pos += bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

// put writes c to the next destination pixel, honouring the origin bit.
func (d *tgaDecoder) put(c color.RGBA) {
	w, h := d.header.width, d.header.height
	x, y := d.pixel%w, d.pixel/w
	if !d.header.topToBottom {
		y = h - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.pixel++
}

func (d *tgaDecoder) total() int {
	return d.header.width * d.header.height
}

func (d *tgaDecoder) raw() error {
	for d.pixel < d.total() {
		c, ok := d.next()
		if !ok {
			return errTGATruncated
		}
		d.put(c)
	}
	return nil
}

// rle decodes run-length packets. A truncated stream leaves the remaining pixels transparent.
func (d *tgaDecoder) rle() error {
	for d.pixel < d.total() && d.pos < len(d.src) {
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := d.next()
			if !ok {
				return nil
			}
			for i := 0; i < count && d.pixel < d.total(); i++ {
				d.put(c)
			}
			continue
		}
		for i := 0; i < count && d.pixel < d.total(); i++ {
			c, ok := d.next()
			if !ok {
				return nil
			}
			d.put(c)
		}
	}
	return nil
}
