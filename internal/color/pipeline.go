// SPDX-License-Identifier: GPL-3.0-only

package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// XYZ is a CIE 1931 tristimulus value.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// RGB holds three color channels, either linear or gamma encoded.
type RGB struct {
	R float64
	G float64
	B float64
}

// ToXYZ lifts a chromaticity point and brightness into a tristimulus value.
// y = 0 is not guarded: the result carries IEEE-754 infinities or NaN.
func ToXYZ(x, y, brightness float64) XYZ {
	z := 1.0 - x - y
	Y := brightness
	return XYZ{
		X: (Y / y) * x,
		Y: Y,
		Z: (Y / y) * z,
	}
}

// Compress maps linear RGB into [0,1] while keeping the channel ratios.
//
// Channels are first scaled down by the original maximum (when it exceeds 1),
// then lifted by the original minimum (when it is negative), and finally
// clamped. Minimum and maximum are not recomputed between those steps.
func Compress(c RGB) RGB {
	maxChannel := math.Max(c.R, math.Max(c.G, c.B))
	minChannel := math.Min(c.R, math.Min(c.G, c.B))

	if maxChannel > 1 || minChannel < 0 {
		scale := 1 / math.Max(maxChannel, 1)
		c.R *= scale
		c.G *= scale
		c.B *= scale

		if minChannel < 0 {
			lift := -minChannel
			c.R += lift
			c.G += lift
			c.B += lift
		}
	}

	return fromColorful(colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped())
}

// GammaCorrect applies the sRGB transfer function to a linear value in [0,1]:
// 12.92·v up to 0.0031308, 1.055·v^(1/2.4) − 0.055 above.
func GammaCorrect(v float64) float64 {
	return colorful.LinearRgb(v, v, v).R
}

// GammaCorrect applies the sRGB transfer function to every channel.
func (c RGB) GammaCorrect() RGB {
	return fromColorful(colorful.LinearRgb(c.R, c.G, c.B))
}

// ToHex quantizes v to 8 bits and renders it as two lowercase hex digits.
// v is expected in [0,1]; out of range values are not clamped.
func ToHex(v float64) string {
	return fmt.Sprintf("%02x", int(math.Round(v*255)))
}

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string {
	return "#" + ToHex(c.R) + ToHex(c.G) + ToHex(c.B)
}

// finite reports whether no channel is NaN or infinite.
func (c RGB) finite() bool {
	for _, v := range [...]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func fromColorful(c colorful.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}
