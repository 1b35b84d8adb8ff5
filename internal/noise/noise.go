package noise

import (
	"image"
	"image/color"
	"math/rand"

	"golang.org/x/image/draw"
)

// Output dimensions and the amplitude of the per-channel perturbation.
const (
	Width        = 128
	Height       = 128
	ChannelNoise = 24
)

// Generate builds a Width x Height white noise image: a random grayscale base
// field stacked across all three RGB channels, with each channel then
// perturbed independently by a value in [-ChannelNoise, ChannelNoise).
func Generate(rng *rand.Rand) *image.RGBA {
	base := image.NewGray(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			base.SetGray(x, y, color.Gray{Y: uint8(rng.Intn(256))})
		}
	}

	// Stack the base field across R, G and B.
	img := image.NewRGBA(base.Bounds())
	draw.Draw(img, img.Bounds(), base, image.Point{}, draw.Src)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				v := int(img.Pix[i+c]) + rng.Intn(2*ChannelNoise) - ChannelNoise
				img.Pix[i+c] = clamp(v)
			}
			img.Pix[i+3] = 0xff
		}
	}

	return img
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
