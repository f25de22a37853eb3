package postprocess

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, r, g, b uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = 255
	}
	return img
}

func TestDownsampleDimensions(t *testing.T) {
	out := Downsample(solid(64, 32, 10, 20, 30), 16, 8)
	assert.Equal(t, 16, out.Bounds().Dx())
	assert.Equal(t, 8, out.Bounds().Dy())
}

func TestDownsampleConstantStaysConstant(t *testing.T) {
	out := Downsample(solid(40, 40, 128, 64, 200), 10, 10)
	for i := 0; i < len(out.Pix); i += 4 {
		assert.Equal(t, uint8(128), out.Pix[i])
		assert.Equal(t, uint8(64), out.Pix[i+1])
		assert.Equal(t, uint8(200), out.Pix[i+2])
		assert.Equal(t, uint8(255), out.Pix[i+3])
	}
}

func TestDownsampleNoopWhenSmallEnough(t *testing.T) {
	img := solid(8, 8, 1, 2, 3)
	assert.Same(t, img, Downsample(img, 8, 8))
	assert.Same(t, img, Downsample(img, 16, 16))
}

func TestFlipHorizontal(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	set := func(x, y int, v uint8) {
		i := y*img.Stride + x*4
		img.Pix[i] = v
		img.Pix[i+3] = 255
	}
	set(0, 0, 10)
	set(1, 0, 20)
	set(2, 0, 30)
	set(0, 1, 40)
	set(2, 1, 60)

	out := FlipHorizontal(img)
	at := func(x, y int) uint8 { return out.Pix[y*out.Stride+x*4] }
	assert.Equal(t, uint8(30), at(0, 0))
	assert.Equal(t, uint8(20), at(1, 0))
	assert.Equal(t, uint8(10), at(2, 0))
	assert.Equal(t, uint8(60), at(0, 1))
	assert.Equal(t, uint8(40), at(2, 1))
}

func TestFlipHorizontalTwiceIsIdentity(t *testing.T) {
	img := solid(5, 3, 9, 8, 7)
	img.Pix[0] = 200
	assert.Equal(t, img.Pix, FlipHorizontal(FlipHorizontal(img)).Pix)
}
