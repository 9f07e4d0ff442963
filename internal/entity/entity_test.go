package entity

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shini4i/hue-colord/internal/color"
	"github.com/shini4i/hue-colord/internal/color/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// captureLog redirects the global logger to a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestIcon_Rooms(t *testing.T) {
	buf := captureLog(t)

	tests := []struct {
		archetype string
		expected  string
	}{
		{"living_room", "chair"},
		{"kitchen", "kitchen"},
		{"dining", "table_bar"},
		{"bedroom", "bed"},
		{"kids_bedroom", "bed"},
		{"bathroom", "bathtub"},
		{"nursery", "crib"},
		{"guest_room", "chair"},
		{"office", "chair"},
		{"staircase", "stairs_2"},
		{"hallway", "hallway"},
		{"laundry_room", "laundry"},
		{"storage", "home_storage"},
		{"closet", "dresser"},
		{"garage", "construction"},
		{"other", "door_open"},
		{"gym", "exercise"},
		{"lounge", "weekend"},
		{"tv", "TV"},
		{"computer", "computer"},
		{"recreation", "sports_tennis"},
		{"man_cave", "sports_esports"},
		{"music", "headphones"},
		{"reading", "book_5"},
		{"studio", "palette"},
		{"garden", "grass"},
		{"terrace", "deck"},
		{"balcony", "balcony"},
		{"driveway", "directions_car"},
		{"carport", "garage_home"},
		{"front_door", "door_front"},
		{"barbecue", "outdoor_grill"},
		{"pool", "pool"},
		{"home", "home"},
	}

	for _, tt := range tests {
		t.Run(tt.archetype, func(t *testing.T) {
			assert.Equal(t, tt.expected, Icon(TypeRoom, tt.archetype, true))
		})
	}

	assert.Len(t, roomIcons, len(tests))
	assert.Empty(t, buf.String(), "every listed archetype must have an icon")
}

func TestIcon_Lights(t *testing.T) {
	buf := captureLog(t)

	tests := []struct {
		archetype string
		expected  string
	}{
		{"table_shade", "table_lamp"},
		{"flexible_lamp", "table_lamp"},
		{"table_wash", "table_lamp"},
		{"christmas_tree", "park"},
		{"floor_shade", "floor_lamp"},
		{"floor_lantern", "floor_lamp"},
		{"bollard", "floor_lamp"},
		{"ground_spot", "floor_lamp"},
		{"recessed_floor", "floor_lamp"},
		{"wall_washer", "floor_lamp"},
		{"pendant_round", "light"},
		{"pendant_long", "light"},
		{"ceiling_round", "light"},
		{"ceiling_square", "light"},
		{"single_spot", "light"},
		{"double_spot", "light"},
		{"recessed_ceiling", "light"},
		{"pendant_spot", "light"},
		{"ceiling_horizontal", "light"},
		{"ceiling_tube", "light"},
		{"wall_lantern", "wall_lamp"},
		{"wall_shade", "wall_lamp"},
		{"wall_spot", "wall_lamp"},
		{"up_and_down", "wall_lamp"},
		{"up_and_down_down", "wall_lamp"},
		{"up_and_down_up", "wall_lamp"},
	}

	for _, tt := range tests {
		t.Run(tt.archetype, func(t *testing.T) {
			assert.Equal(t, tt.expected, Icon(TypeLight, tt.archetype, true))
		})
	}

	assert.Len(t, lightIcons, len(tests))
	assert.Empty(t, buf.String(), "every listed archetype must have an icon")
}

func TestIcon_DeviceIconsDisabled(t *testing.T) {
	buf := captureLog(t)

	assert.Equal(t, RoomGroupIcon, Icon(TypeRoom, "kitchen", false))
	assert.Equal(t, LightGroupIcon, Icon(TypeLight, "table_shade", false))
	assert.Equal(t, LightGroupIcon, Icon(TypeLight, "not_a_lamp", false))
	assert.Empty(t, buf.String())
}

func TestIcon_UnknownArchetype(t *testing.T) {
	tests := []struct {
		name       string
		entityType Type
		expected   string
	}{
		{name: "room falls back to group icon", entityType: TypeRoom, expected: RoomGroupIcon},
		{name: "light falls back to bulb icon", entityType: TypeLight, expected: LightFallbackIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			assert.Equal(t, tt.expected, Icon(tt.entityType, "spaceship", true))

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0], `"archetype":"spaceship"`)
		})
	}
}

func TestIcon_UnknownType(t *testing.T) {
	buf := captureLog(t)

	assert.Empty(t, Icon("sensor", "motion", true))
	assert.Contains(t, buf.String(), `"type":"sensor"`)
}

func TestEntity_Icon(t *testing.T) {
	e := Entity{Type: TypeLight, Archetype: "pendant_round"}
	assert.Equal(t, "light", e.Icon(true))
	assert.Equal(t, LightGroupIcon, e.Icon(false))
}

func TestEntity_Brightness(t *testing.T) {
	assert.Equal(t, 30.0, Entity{Dimmable: true, Dimming: 30}.Brightness())
	assert.Equal(t, 100.0, Entity{On: true}.Brightness())
	assert.Equal(t, 0.0, Entity{}.Brightness())
}

func TestEntity_HexColor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv := mocks.NewMockXYConverter(ctrl)
	conv.EXPECT().Convert(0.5, 0.4, 1.0, color.GamutB).Return(color.Result{Hex: "#ff8800"}, nil)

	e := Entity{ID: "light-1", X: 0.5, Y: 0.4, Gamut: color.GamutB}
	hex, err := e.HexColor(conv)
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", hex)
}

func TestEntity_HexColor_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv := mocks.NewMockXYConverter(ctrl)
	conv.EXPECT().Convert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(color.Result{}, color.ErrDegenerateChromaticity)

	e := Entity{ID: "light-1"}
	_, err := e.HexColor(conv)
	assert.True(t, errors.Is(err, color.ErrDegenerateChromaticity))
	assert.Contains(t, err.Error(), "light-1")
}

func TestEntity_DimmedHex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv := mocks.NewMockXYConverter(ctrl)
	conv.EXPECT().Convert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(color.Result{Hex: "#ffffff"}, nil).Times(2)

	off := Entity{ID: "light-1", On: false}
	hex, err := off.DimmedHex(conv)
	require.NoError(t, err)
	assert.Equal(t, "#666666", hex)

	on := Entity{ID: "light-1", On: true}
	hex, err = on.DimmedHex(conv)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", hex)
}

func TestEntity_DimmedHex_WithConverter(t *testing.T) {
	conv := color.NewConverter(color.WithLogger(zerolog.Nop()))

	e := Entity{ID: "light-1", Dimmable: true, Dimming: 100, X: 0.675, Y: 0.322, Gamut: color.GamutC}
	hex, err := e.DimmedHex(conv)
	require.NoError(t, err)
	assert.Equal(t, "#ff851f", hex)
}
