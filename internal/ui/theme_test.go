package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestVariantForName(t *testing.T) {
	assert.Equal(t, theme.VariantLight, VariantForName("light"))
	assert.Equal(t, theme.VariantDark, VariantForName("dark"))
	assert.Equal(t, variantSystem, VariantForName("system"))
	assert.Equal(t, variantSystem, VariantForName(""))
}

func TestCargoThemeFixedVariant(t *testing.T) {
	base := theme.DefaultTheme()

	dark := NewCargoTheme("dark")
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))

	system := NewCargoTheme("system")
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantLight),
		system.Color(theme.ColorNameBackground, theme.VariantLight))
}

func TestCargoThemeCompactSizes(t *testing.T) {
	th := NewCargoTheme("light")
	assert.Equal(t, float32(12), th.Size(theme.SizeNameText))
	assert.Equal(t, float32(3), th.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}
