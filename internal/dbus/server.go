// SPDX-License-Identifier: GPL-3.0-only

// Package dbus provides the D-Bus service that exposes Hue color conversion to the shell extension.
package dbus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/shini4i/hue-colord/internal/brightness"
	"github.com/shini4i/hue-colord/internal/color"
	"github.com/shini4i/hue-colord/internal/entity"
)

// ErrRateLimitExceeded is returned when conversion requests exceed the rate limit.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// ErrInvalidColor is returned when a color argument is not a #rrggbb string.
var ErrInvalidColor = errors.New("invalid color")

const (
	// rateLimitPerSecond is the maximum number of conversions per second.
	// A panel redraw converts every light in every room at once.
	rateLimitPerSecond = 200

	// rateLimitBurst is the maximum burst size for conversions.
	rateLimitBurst = 50
)

const (
	// ServiceName is the D-Bus service name.
	ServiceName = "io.github.shini4i.HueColor"

	// ObjectPath is the D-Bus object path.
	ObjectPath = "/io/github/shini4i/HueColor"

	// InterfaceName is the D-Bus interface name.
	InterfaceName = "io.github.shini4i.HueColor"
)

// IntrospectXML is the D-Bus introspection XML for the service.
const IntrospectXML = `
<node name="` + ObjectPath + `">
  <interface name="` + InterfaceName + `">
    <method name="XYToHex">
      <arg name="x" type="d" direction="in"/>
      <arg name="y" type="d" direction="in"/>
      <arg name="brightness" type="d" direction="in"/>
      <arg name="gamut" type="s" direction="in"/>
      <arg name="color" type="s" direction="out"/>
    </method>
    <method name="DimColor">
      <arg name="color" type="s" direction="in"/>
      <arg name="brightness" type="u" direction="in"/>
      <arg name="dimmed" type="s" direction="out"/>
    </method>
    <method name="EntityIcon">
      <arg name="entityType" type="s" direction="in"/>
      <arg name="archetype" type="s" direction="in"/>
      <arg name="useDeviceIcons" type="b" direction="in"/>
      <arg name="icon" type="s" direction="out"/>
    </method>
    <method name="MirekToKelvin">
      <arg name="mirek" type="u" direction="in"/>
      <arg name="kelvin" type="u" direction="out"/>
    </method>
    <method name="KelvinToMirek">
      <arg name="kelvin" type="u" direction="in"/>
      <arg name="mirek" type="u" direction="out"/>
    </method>
    <signal name="GamutFallback">
      <arg name="requested" type="s"/>
      <arg name="used" type="s"/>
    </signal>
  </interface>
  ` + introspect.IntrospectDataString + `
</node>
`

// busConn is the part of *dbus.Conn used after the service is exported.
type busConn interface {
	Emit(path dbus.ObjectPath, name string, values ...interface{}) error
	Close() error
}

// Server implements the D-Bus service for color conversion.
//
// Thread safety:
//   - The converter is stateless and safe for concurrent use.
//   - The connMu mutex protects the D-Bus connection field for signal emission.
//   - The rate limiter is shared by all throttled methods.
type Server struct {
	conn        busConn
	connMu      sync.RWMutex // Protects conn field only
	converter   color.XYConverter
	rateLimiter *rate.Limiter
}

// NewServer creates a new D-Bus server backed by the given converter.
func NewServer(converter color.XYConverter) *Server {
	return &Server{
		converter:   converter,
		rateLimiter: rate.NewLimiter(rateLimitPerSecond, rateLimitBurst),
	}
}

// Start connects to the session bus and exports the service.
func (s *Server) Start() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	// Ensure connection is closed if setup fails
	success := false
	defer func() {
		if !success {
			if closeErr := conn.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("Failed to close D-Bus connection during cleanup")
			}
		}
	}()

	err = conn.Export(s, ObjectPath, InterfaceName)
	if err != nil {
		return fmt.Errorf("failed to export server: %w", err)
	}

	err = conn.Export(introspect.Introspectable(IntrospectXML), ObjectPath, "org.freedesktop.DBus.Introspectable")
	if err != nil {
		return fmt.Errorf("failed to export introspectable: %w", err)
	}

	reply, err := conn.RequestName(ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("name %s already taken", ServiceName)
	}

	s.connMu.Lock()
	s.conn = conn
	s.connMu.Unlock()

	success = true
	log.Info().Str("service", ServiceName).Msg("D-Bus service started")
	return nil
}

// Stop disconnects from the session bus.
func (s *Server) Stop() error {
	s.connMu.Lock()
	conn := s.conn
	s.conn = nil
	s.connMu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

// XYToHex converts a Hue xy color and brightness (0-1) to #rrggbb.
// An empty gamut selects the default gamut; an unknown one falls back to
// gamut C and emits GamutFallback.
func (s *Server) XYToHex(x, y, brightness float64, gamut string) (string, *dbus.Error) {
	if !s.rateLimiter.Allow() {
		log.Warn().Msg("Rate limit exceeded for XYToHex")
		return "", dbus.MakeFailedError(ErrRateLimitExceeded)
	}

	res, err := s.converter.Convert(x, y, brightness, color.GamutType(gamut))
	if err != nil {
		log.Error().Err(err).Float64("x", x).Float64("y", y).Msg("Failed to convert color")
		return "", dbus.MakeFailedError(err)
	}

	for _, w := range res.Warnings {
		if errors.Is(w, color.ErrUnknownGamutType) {
			s.emitGamutFallback(gamut, string(res.Gamut))
		}
	}

	log.Debug().
		Float64("x", x).
		Float64("y", y).
		Float64("brightness", brightness).
		Str("gamut", string(res.Gamut)).
		Str("color", res.Hex).
		Msg("Converted color")
	return res.Hex, nil
}

// DimColor dims a #rrggbb color by a brightness percentage (0-100).
func (s *Server) DimColor(hex string, percent uint32) (string, *dbus.Error) {
	if !s.rateLimiter.Allow() {
		log.Warn().Msg("Rate limit exceeded for DimColor")
		return "", dbus.MakeFailedError(ErrRateLimitExceeded)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return "", dbus.MakeFailedError(fmt.Errorf("%w %q: %w", ErrInvalidColor, hex, err))
	}

	if percent > 100 {
		percent = 100
	}

	dimmed := brightness.DimColor(c, float64(percent)).Hex()
	log.Debug().Str("color", hex).Uint32("brightness", percent).Str("dimmed", dimmed).Msg("Dimmed color")
	return dimmed, nil
}

// EntityIcon returns the icon name for a Hue entity type and archetype.
func (s *Server) EntityIcon(entityType, archetype string, useDeviceIcons bool) (string, *dbus.Error) {
	return entity.Icon(entity.Type(entityType), archetype, useDeviceIcons), nil
}

// MirekToKelvin converts a color temperature in mirek to kelvin.
func (s *Server) MirekToKelvin(mirek uint32) (uint32, *dbus.Error) {
	kelvin, err := brightness.MirekToKelvin(mirek)
	if err != nil {
		return 0, dbus.MakeFailedError(err)
	}
	return kelvin, nil
}

// KelvinToMirek converts a color temperature in kelvin to mirek.
func (s *Server) KelvinToMirek(kelvin uint32) (uint32, *dbus.Error) {
	mirek, err := brightness.KelvinToMirek(kelvin)
	if err != nil {
		return 0, dbus.MakeFailedError(err)
	}
	return mirek, nil
}

// emitGamutFallback emits the GamutFallback signal.
func (s *Server) emitGamutFallback(requested, used string) {
	s.connMu.RLock()
	conn := s.conn
	s.connMu.RUnlock()

	if conn == nil {
		return
	}

	err := conn.Emit(ObjectPath, InterfaceName+".GamutFallback", requested, used)
	if err != nil {
		log.Error().Err(err).Msg("Failed to emit GamutFallback signal")
	}
}
