// SPDX-License-Identifier: GPL-3.0-only

// Package entity models the Hue rooms and lights shown by the shell extension.
package entity

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/shini4i/hue-colord/internal/brightness"
	"github.com/shini4i/hue-colord/internal/color"
)

// Type is the kind of Hue entity.
type Type string

const (
	// TypeRoom is a Hue room or zone grouping several lights.
	TypeRoom Type = "room"

	// TypeLight is a single Hue light.
	TypeLight Type = "light"
)

// Entity is the subset of Hue entity state needed to render it.
type Entity struct {
	ID        string
	Name      string
	Type      Type
	Archetype string
	On        bool
	Dimmable  bool
	Dimming   float64 // 0-100
	X         float64
	Y         float64
	Gamut     color.GamutType
}

// Brightness returns the brightness percentage used to dim the entity's color.
func (e Entity) Brightness() float64 {
	return brightness.EntityBrightness(e.Dimmable, e.Dimming, e.On)
}

// HexColor converts the entity's xy color at full brightness.
func (e Entity) HexColor(conv color.XYConverter) (string, error) {
	res, err := conv.Convert(e.X, e.Y, color.DefaultBrightness, e.Gamut)
	if err != nil {
		return "", fmt.Errorf("failed to convert color of %s: %w", e.ID, err)
	}
	return res.Hex, nil
}

// DimmedHex converts the entity's xy color and dims it by the entity's brightness.
func (e Entity) DimmedHex(conv color.XYConverter) (string, error) {
	hex, err := e.HexColor(conv)
	if err != nil {
		return "", err
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("failed to parse color %s: %w", hex, err)
	}
	return brightness.DimColor(c, e.Brightness()).Hex(), nil
}
