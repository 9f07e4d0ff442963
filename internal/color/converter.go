// SPDX-License-Identifier: GPL-3.0-only

package color

//go:generate mockgen -source=converter.go -destination=mocks/converter_mock.go -package=mocks

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBrightness is the brightness used when the caller has none.
const DefaultBrightness = 1.0

// ErrUnknownGamutType is reported as a warning when a gamut type is not A, B or C.
var ErrUnknownGamutType = errors.New("unknown gamut type")

// ErrDegenerateChromaticity is returned when the input cannot produce a finite
// color, most commonly because y is 0.
var ErrDegenerateChromaticity = errors.New("degenerate chromaticity")

// Result is the outcome of a single xy conversion.
type Result struct {
	// Hex is the color as #rrggbb.
	Hex string

	// Gamut is the gamut whose matrix was used.
	Gamut GamutType

	// Linear is the compressed linear RGB, before gamma encoding.
	Linear RGB

	// Encoded is the gamma encoded RGB.
	Encoded RGB

	// Warnings holds advisory diagnostics. They never fail the conversion.
	Warnings []error
}

// XYConverter converts Hue xy colors to sRGB.
// This interface allows for mocking in tests.
type XYConverter interface {
	// Convert runs the full xy to hex pipeline.
	Convert(x, y, brightness float64, gamut GamutType) (Result, error)
}

// Converter runs the xy to sRGB pipeline.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	logger *zerolog.Logger // nil means the global logger at call time
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// WithLogger sets the logger that receives conversion diagnostics.
func WithLogger(logger zerolog.Logger) ConverterOption {
	return func(c *Converter) {
		c.logger = &logger
	}
}

// NewConverter creates a converter. Diagnostics go to the global logger
// unless WithLogger is given.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultConverter backs XYToHex and follows changes to the global logger.
var defaultConverter = NewConverter()

func (c *Converter) diagnostics() *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return &log.Logger
}

// Convert turns a chromaticity point and brightness into an sRGB color
// constrained to the given gamut.
//
// An empty gamut selects DefaultGamut. An unknown gamut falls back to GamutC
// and adds one ErrUnknownGamutType warning to the result.
func (c *Converter) Convert(x, y, brightness float64, gamut GamutType) (Result, error) {
	if gamut == "" {
		gamut = DefaultGamut
	}

	var warnings []error
	m, ok := LookupGamut(gamut)
	if !ok {
		c.diagnostics().Warn().
			Str("gamut", string(gamut)).
			Str("fallback", string(GamutC)).
			Msg("Invalid gamut type, using fallback")
		warnings = append(warnings, fmt.Errorf("%w: %q", ErrUnknownGamutType, gamut))
		gamut = GamutC
	}

	linear := m.Apply(ToXYZ(x, y, brightness))
	if !linear.finite() {
		return Result{}, fmt.Errorf("%w: x=%g y=%g brightness=%g", ErrDegenerateChromaticity, x, y, brightness)
	}

	linear = Compress(linear)
	encoded := linear.GammaCorrect()

	return Result{
		Hex:      encoded.Hex(),
		Gamut:    gamut,
		Linear:   linear,
		Encoded:  encoded,
		Warnings: warnings,
	}, nil
}

// XYToHex converts xy and brightness to #rrggbb with a shared default
// converter that reports diagnostics to the global logger.
func XYToHex(x, y, brightness float64, gamut GamutType) (string, error) {
	res, err := defaultConverter.Convert(x, y, brightness, gamut)
	if err != nil {
		return "", err
	}
	return res.Hex, nil
}

// XYToHexDefault converts xy at DefaultBrightness in DefaultGamut.
func XYToHexDefault(x, y float64) (string, error) {
	return XYToHex(x, y, DefaultBrightness, DefaultGamut)
}
