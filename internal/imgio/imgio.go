// Package imgio is the boundary between the raster engine and the standard
// image ecosystem: it converts buffers to images, encodes them to disk, and
// decodes image files into buffers whose background snapshot is the decoded
// picture.
package imgio

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"rasterpad/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// ToNRGBA copies a buffer's RGB bytes into an opaque NRGBA image. The
// buffer's storage is already top-to-bottom, so rows map straight across.
func ToNRGBA(b *raster.Buffer) *image.NRGBA {
	w, h := b.Width(), b.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := b.Bytes()
	si := 0
	for di := 0; di < len(img.Pix); di += 4 {
		img.Pix[di] = src[si]
		img.Pix[di+1] = src[si+1]
		img.Pix[di+2] = src[si+2]
		img.Pix[di+3] = 0xff
		si += raster.Channels
	}
	return img
}

// FromImage flattens any image into the engine's raw RGB layout.
func FromImage(src image.Image) (width, height int, pix []uint8) {
	bounds := src.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	n, ok := src.(*image.NRGBA)
	if !ok {
		n = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(n, n.Bounds(), src, bounds.Min, draw.Src)
	}

	pix = make([]uint8, width*height*raster.Channels)
	di := 0
	for si := 0; si < len(n.Pix); si += 4 {
		pix[di] = n.Pix[si]
		pix[di+1] = n.Pix[si+1]
		pix[di+2] = n.Pix[si+2]
		di += raster.Channels
	}
	return width, height, pix
}

// Load decodes an image file into a buffer. The decoded picture doubles as
// the buffer's background snapshot, so Clear restores it.
func Load(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext(path) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".webp":
		img, err = webp.Decode(f)
	default:
		return nil, fmt.Errorf("imgio: load %s: unsupported format", path)
	}
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}

	w, h, pix := FromImage(img)
	buf, err := raster.NewFromBytes(w, h, pix)
	if err != nil {
		return nil, fmt.Errorf("imgio: %s: %w", path, err)
	}
	return buf, nil
}

// Save encodes an image to disk; the format follows the file extension.
func Save(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imgio: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext(path) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".png":
		err = png.Encode(f, img)
	case ".tga":
		err = tga.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		return fmt.Errorf("imgio: save %s: unsupported format", path)
	}
	if err != nil {
		return fmt.Errorf("imgio: encode %s: %w", path, err)
	}
	return nil
}

// SaveBuffer renders a buffer straight to disk.
func SaveBuffer(path string, b *raster.Buffer) error {
	return Save(path, ToNRGBA(b))
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
