package output

import (
	"image"
	"image/color"
)

// Image is a width x height grid of colors addressed with (0, 0) at the
// bottom-left, the same orientation the camera uses. It implements
// image.Image so it can be handed to any standard encoder, which see
// row 0 as the top of the picture.
type Image struct {
	width, height int
	pixels        []Color
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the number of columns
func (img *Image) Width() int { return img.width }

// Height returns the number of rows
func (img *Image) Height() int { return img.height }

// Plot stores c at column x, row y counted from the bottom.
// Coordinates outside the image are ignored.
func (img *Image) Plot(x, y int, c Color) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.pixels[y*img.width+x] = c
}

// Pixel returns the color at column x, row y counted from the bottom
func (img *Image) Pixel(x, y int) Color {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return Color{}
	}
	return img.pixels[y*img.width+x]
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image with y growing downwards.
// Colors are returned in the RGBA model reported by ColorModel.
func (img *Image) At(x, y int) color.Color {
	c := img.Pixel(x, img.height-1-y)
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}
