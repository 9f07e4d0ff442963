// SPDX-License-Identifier: GPL-3.0-only

package entity

import "github.com/rs/zerolog/log"

const (
	// RoomGroupIcon is shown for rooms when device icons are disabled or the archetype is unknown.
	RoomGroupIcon = "light_group"

	// LightGroupIcon is shown for lights when device icons are disabled.
	LightGroupIcon = "lightbulb_2"

	// LightFallbackIcon is shown for lights with an unknown archetype.
	LightFallbackIcon = "lightbulb"
)

// roomIcons maps Hue room archetypes to Material Symbols icon names.
var roomIcons = map[string]string{
	"living_room":  "chair",
	"kitchen":      "kitchen",
	"dining":       "table_bar",
	"bedroom":      "bed",
	"kids_bedroom": "bed",
	"bathroom":     "bathtub",
	"nursery":      "crib",
	"guest_room":   "chair",
	"office":       "chair",

	"staircase":    "stairs_2",
	"hallway":      "hallway",
	"laundry_room": "laundry",
	"storage":      "home_storage",
	"closet":       "dresser",
	"garage":       "construction",
	"other":        "door_open",

	"gym":        "exercise",
	"lounge":     "weekend",
	"tv":         "TV",
	"computer":   "computer",
	"recreation": "sports_tennis",
	"man_cave":   "sports_esports",
	"music":      "headphones",
	"reading":    "book_5",
	"studio":     "palette",

	"garden":     "grass",
	"terrace":    "deck",
	"balcony":    "balcony",
	"driveway":   "directions_car",
	"carport":    "garage_home",
	"front_door": "door_front",
	"barbecue":   "outdoor_grill",
	"pool":       "pool",

	"home": "home",
}

// lightIcons maps Hue light archetypes to Material Symbols icon names.
var lightIcons = map[string]string{
	"table_shade":   "table_lamp",
	"flexible_lamp": "table_lamp",
	"table_wash":    "table_lamp",

	"christmas_tree": "park",

	"floor_shade":    "floor_lamp",
	"floor_lantern":  "floor_lamp",
	"bollard":        "floor_lamp",
	"ground_spot":    "floor_lamp",
	"recessed_floor": "floor_lamp",
	"wall_washer":    "floor_lamp",

	"pendant_round":      "light",
	"pendant_long":       "light",
	"ceiling_round":      "light",
	"ceiling_square":     "light",
	"single_spot":        "light",
	"double_spot":        "light",
	"recessed_ceiling":   "light",
	"pendant_spot":       "light",
	"ceiling_horizontal": "light",
	"ceiling_tube":       "light",

	"wall_lantern":     "wall_lamp",
	"wall_shade":       "wall_lamp",
	"wall_spot":        "wall_lamp",
	"up_and_down":      "wall_lamp",
	"up_and_down_down": "wall_lamp",
	"up_and_down_up":   "wall_lamp",
}

// Icon returns the icon name for an entity type and archetype.
// Unknown archetypes log a warning and fall back to a generic icon;
// unknown entity types return an empty string.
func Icon(entityType Type, archetype string, useDeviceIcons bool) string {
	switch entityType {
	case TypeRoom:
		if !useDeviceIcons {
			return RoomGroupIcon
		}
		return lookupIcon(roomIcons, archetype, RoomGroupIcon)
	case TypeLight:
		if !useDeviceIcons {
			return LightGroupIcon
		}
		return lookupIcon(lightIcons, archetype, LightFallbackIcon)
	default:
		log.Warn().Str("type", string(entityType)).Msg("Unsupported entity type")
		return ""
	}
}

// Icon returns the icon name for the entity.
func (e Entity) Icon(useDeviceIcons bool) string {
	return Icon(e.Type, e.Archetype, useDeviceIcons)
}

func lookupIcon(icons map[string]string, archetype, fallback string) string {
	if icon, ok := icons[archetype]; ok {
		return icon
	}
	log.Warn().
		Str("archetype", archetype).
		Str("fallback", fallback).
		Msg("Archetype has no corresponding icon")
	return fallback
}
