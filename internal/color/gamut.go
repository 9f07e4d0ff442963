// SPDX-License-Identifier: GPL-3.0-only

// Package color converts Hue CIE xy chromaticity values into display-ready sRGB colors.
package color

// GamutType identifies the color gamut of a Hue light.
// Lookups are case-sensitive and match the values reported by the Hue bridge.
type GamutType string

const (
	// GamutA is the gamut of early LivingColors and Bloom lights.
	GamutA GamutType = "A"

	// GamutB is the gamut of first generation Hue bulbs.
	GamutB GamutType = "B"

	// GamutC is the gamut of current Hue bulbs and the fallback for unknown types.
	GamutC GamutType = "C"

	// DefaultGamut is used when no gamut type is given.
	DefaultGamut = GamutC
)

// GamutMatrix is a 3x3 XYZ to linear RGB transform, one row per output channel.
type GamutMatrix struct {
	R [3]float64
	G [3]float64
	B [3]float64
}

// Coefficients are Wide RGB D65 derived. Existing Hue tooling relies on these
// exact digits, so the hex output only stays identical if they are not touched.
var gamutMatrices = map[GamutType]GamutMatrix{
	GamutA: {
		R: [3]float64{1.64173, -0.32466, -0.23688},
		G: [3]float64{-0.66366, 1.61533, 0.01688},
		B: [3]float64{0.01172, -0.00801, 0.98839},
	},
	GamutB: {
		R: [3]float64{1.612, -0.203, -0.302},
		G: [3]float64{-0.509, 1.412, 0.066},
		B: [3]float64{0.026, -0.072, 0.962},
	},
	GamutC: {
		R: [3]float64{1.613203, -0.681814, -0.129553},
		G: [3]float64{-0.481816, 1.586499, -0.082051},
		B: [3]float64{0.017600, -0.069057, 1.081680},
	},
}

// LookupGamut returns the transform matrix for the given gamut type.
// For an unknown type it returns the matrix of GamutC and false; the caller
// decides how to report the fallback.
func LookupGamut(t GamutType) (GamutMatrix, bool) {
	m, ok := gamutMatrices[t]
	if !ok {
		return gamutMatrices[GamutC], false
	}
	return m, true
}

// Valid reports whether t names one of the known gamuts.
func (t GamutType) Valid() bool {
	_, ok := gamutMatrices[t]
	return ok
}

// Apply multiplies the matrix with an XYZ tristimulus value.
// The result is linear RGB and may fall outside [0,1].
func (m GamutMatrix) Apply(c XYZ) RGB {
	return RGB{
		R: c.X*m.R[0] + c.Y*m.R[1] + c.Z*m.R[2],
		G: c.X*m.G[0] + c.Y*m.G[1] + c.Z*m.G[2],
		B: c.X*m.B[0] + c.Y*m.B[1] + c.Z*m.B[2],
	}
}
