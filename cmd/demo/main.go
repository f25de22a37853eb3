// Command demo draws a primitive gallery and writes it to an image file.
// Useful as a quick visual smoke test of the rasterizers.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"rasterpad/internal/imgio"
	"rasterpad/internal/postprocess"
	"rasterpad/internal/raster"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func main() {
	output := flag.String("output", "demo.webp", "Output file (webp, png, tga or bmp)")
	size := flag.Int("size", 256, "Canvas size in pixels")
	scale := flag.Int("scale", 2, "Supersampling factor")

	flag.Parse()

	if *size < 64 {
		fmt.Fprintln(os.Stderr, "Error: size must be at least 64")
		os.Exit(1)
	}
	if *scale < 1 {
		*scale = 1
	}

	n := *size * *scale
	buf, err := raster.New(n, n, raster.RGB(24, 24, 32))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	drawGallery(buf)

	img := imgio.ToNRGBA(buf)
	if *scale > 1 {
		img = postprocess.Downsample(img, *size, *size)
	}
	if err := imgio.Save(*output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *output)
}

func drawGallery(buf *raster.Buffer) {
	n := buf.Width()
	c := n / 2

	// Hue fan radiating from the center.
	rays := 48
	for i := 0; i < rays; i++ {
		hue := 360.0 * float64(i) / float64(rays)
		r, g, b := colorful.Hsv(hue, 0.8, 1).RGB255()
		rad := hue * math.Pi / 180
		x := c + int(float64(c-4)*math.Cos(rad))
		y := c + int(float64(c-4)*math.Sin(rad))
		buf.DrawLine(c, c, x, y, raster.RGB(r, g, b), 1, 0.85)
	}

	// Concentric circles over the fan.
	for i, radius := range []int{n / 3, n / 4, n / 6} {
		shade := uint8(255 - 60*i)
		buf.DrawEllipse(c, c, radius, radius, raster.RGB(shade, shade, shade), 1, 1)
	}

	// Filled and outlined rectangles in opposite corners.
	m := n / 16
	buf.DrawRectangle(m, m, m+n/6, m+n/6, raster.RGB(220, 80, 80), 0, 0.9)
	buf.DrawRectangle(n-1-m-n/6, n-1-m-n/6, n-1-m, n-1-m, raster.RGB(80, 200, 120), n/64+1, 0.9)

	// A translucent filled ellipse across the middle.
	buf.DrawEllipse(c, c, n/3, n/8, raster.RGB(90, 140, 255), 0, 0.35)
}
