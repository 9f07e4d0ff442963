// SPDX-License-Identifier: GPL-3.0-only

// Package brightness provides utilities for dimming display colors by Hue
// brightness percentages and for converting color temperatures.
package brightness

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MinDimFactor is the factor applied to a color at 0% brightness.
	// Colors never dim below it so that an off light stays visible.
	MinDimFactor = 0.4

	// MaxPercent is the brightness percentage of a fully lit entity.
	MaxPercent = 100.0

	// mirekScale converts between mirek and kelvin: mirek = 1e6 / kelvin.
	mirekScale = 1_000_000
)

// ErrZeroTemperature is returned when converting a zero color temperature.
var ErrZeroTemperature = errors.New("color temperature must be greater than zero")

// DimFactor returns the multiplier for a brightness percentage (0-100).
// Values outside the valid range are clamped before conversion.
func DimFactor(percent float64) float64 {
	percent = ClampPercent(percent)
	return MinDimFactor + (percent/MaxPercent)*(1-MinDimFactor)
}

// DimColor scales every channel of c by DimFactor(percent).
func DimColor(c colorful.Color, percent float64) colorful.Color {
	factor := DimFactor(percent)
	return colorful.Color{
		R: c.R * factor,
		G: c.G * factor,
		B: c.B * factor,
	}
}

// EntityBrightness returns the brightness percentage used to dim an entity.
// Entities that cannot dim are either fully on or fully off.
func EntityBrightness(dimmable bool, dimming float64, on bool) float64 {
	if dimmable {
		return dimming
	}
	if on {
		return MaxPercent
	}
	return 0
}

// ClampPercent ensures the percentage is within 0-100.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > MaxPercent {
		return MaxPercent
	}
	return percent
}

// MirekToKelvin converts a color temperature in mirek to kelvin.
func MirekToKelvin(mirek uint32) (uint32, error) {
	return invertTemperature(mirek)
}

// KelvinToMirek converts a color temperature in kelvin to mirek.
func KelvinToMirek(kelvin uint32) (uint32, error) {
	return invertTemperature(kelvin)
}

func invertTemperature(v uint32) (uint32, error) {
	if v == 0 {
		return 0, ErrZeroTemperature
	}
	return uint32(math.Round(mirekScale / float64(v))), nil
}
