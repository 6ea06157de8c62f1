package timerview

import (
	"image/color"

	"eyetimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantTheme pins the default theme to one variant regardless of the OS setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// NewTheme returns the fyne theme for the saved preference.
func NewTheme(preference model.Theme) fyne.Theme {
	variant := theme.VariantDark
	if preference == model.ThemeLight {
		variant = theme.VariantLight
	}
	return &variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}
