// Package ui provides the RoomFit desktop application.
//
// This file defines the compact Fyne theme used by the planner.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RoomFitTheme wraps the default Fyne theme with compact sizing so the
// palette, floor plan and fit panel fit side by side.
type RoomFitTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool
}

// NewRoomFitTheme returns a theme that follows the system light/dark setting.
func NewRoomFitTheme() *RoomFitTheme {
	return &RoomFitTheme{base: theme.DefaultTheme()}
}

// NewRoomFitThemeWithVariant returns a theme pinned to variant.
func NewRoomFitThemeWithVariant(variant fyne.ThemeVariant) *RoomFitTheme {
	return &RoomFitTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		fixed:   true,
	}
}

// ThemeForName maps the config value ("light", "dark", "system") to a theme.
func ThemeForName(name string) *RoomFitTheme {
	switch name {
	case "light":
		return NewRoomFitThemeWithVariant(theme.VariantLight)
	case "dark":
		return NewRoomFitThemeWithVariant(theme.VariantDark)
	default:
		return NewRoomFitTheme()
	}
}

// Color delegates to the base theme, using the pinned variant if any.
func (t *RoomFitTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *RoomFitTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *RoomFitTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns the compact sizing overrides.
func (t *RoomFitTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}

// Theme returns the theme selected in the app settings.
func (a *App) Theme() *RoomFitTheme {
	return ThemeForName(a.config.Theme)
}
