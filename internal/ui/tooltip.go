package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only toolbar button with a hover tooltip.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// newPaletteButton creates a labelled palette button whose tooltip carries
// the template description.
func newPaletteButton(label, description string, icon fyne.Resource, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon(label, icon, tapped)
	btn.Alignment = widget.ButtonAlignLeading
	btn.SetToolTip(description)
	return btn
}
