package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantSystem marks "follow the OS" for the theme variant.
const variantSystem fyne.ThemeVariant = 99

// CargoTheme wraps the default Fyne theme with compact sizing for the dense
// item tables of a load plan.
type CargoTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewCargoTheme returns a theme for the configured name: "light", "dark" or
// anything else for the system default.
func NewCargoTheme(name string) *CargoTheme {
	return &CargoTheme{base: theme.DefaultTheme(), variant: VariantForName(name)}
}

// VariantForName maps a config theme name to a Fyne variant.
func VariantForName(name string) fyne.ThemeVariant {
	switch name {
	case "light":
		return theme.VariantLight
	case "dark":
		return theme.VariantDark
	default:
		return variantSystem
	}
}

func (t *CargoTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

func (t *CargoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != variantSystem {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *CargoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *CargoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *CargoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
