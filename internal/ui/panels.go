package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/plan"
	"github.com/piwi3910/RoomFit/internal/state"
)

// paletteIcons maps palette icon names to theme icons.
var paletteIcons = map[string]fyne.Resource{
	"table":   theme.GridIcon(),
	"chair":   theme.AccountIcon(),
	"desk":    theme.ComputerIcon(),
	"shelf":   theme.ListIcon(),
	"cabinet": theme.StorageIcon(),
	"sofa":    theme.HomeIcon(),
	"bed":     theme.MediaStopIcon(),
	"lamp":    theme.InfoIcon(),
}

// ─── Palette ───────────────────────────────────────────────

func (a *App) buildPalette() fyne.CanvasObject {
	box := container.NewVBox(
		widget.NewLabelWithStyle("Furniture", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for _, t := range model.Palette() {
		tmpl := t
		icon, ok := paletteIcons[tmpl.Icon]
		if !ok {
			icon = theme.ContentAddIcon()
		}
		tip := tmpl.Description
		if tmpl.Price > 0 {
			tip = fmt.Sprintf("%s (%.0f)", tip, tmpl.Price)
		}
		box.Add(newPaletteButton(tmpl.Name, tip, icon, func() {
			a.store.Dispatch(state.AddFurniture{Template: tmpl})
		}))
	}
	return container.NewVScroll(box)
}

// ─── Fit Panel ─────────────────────────────────────────────

func (a *App) buildFitPanel() fyne.CanvasObject {
	a.statusLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.totalLabel = widget.NewLabel("")
	a.itemList = container.NewVBox()
	a.selectedPanel = container.NewVBox()

	summary := widget.NewCard("Fit", "", container.NewVBox(a.statusLabel, a.totalLabel))
	items := widget.NewCard("Items", "", a.itemList)
	selected := widget.NewCard("Selected", "", a.selectedPanel)

	return container.NewVScroll(container.NewVBox(summary, selected, items))
}

func (a *App) refreshFitPanel(s state.State, fp plan.FloorPlan) {
	overall := fp.Fit.Overall
	a.statusLabel.SetText(engine.StatusText(overall.Status))
	switch overall.Status {
	case model.StatusOK:
		a.statusLabel.Importance = widget.SuccessImportance
	case model.StatusOverlaps:
		a.statusLabel.Importance = widget.WarningImportance
	default:
		a.statusLabel.Importance = widget.DangerImportance
	}
	a.statusLabel.Refresh()

	layout := s.Layout()
	a.totalLabel.SetText(fmt.Sprintf("%d items, %.2f m x %.2f m, total %.2f",
		len(s.Items), s.Room.Width, s.Room.Length, layout.TotalPrice()))

	a.itemList.RemoveAll()
	if len(s.Items) == 0 {
		a.itemList.Add(widget.NewLabel("No furniture yet. Pick a piece from the palette."))
		a.itemList.Refresh()
		return
	}
	for _, shape := range fp.Shapes {
		id := shape.Item.ID
		btn := widget.NewButton(
			fmt.Sprintf("%s  %s", model.ItemLabel(shape.Item), engine.ItemStatusLabel(shape.Fit)),
			func() { a.store.Dispatch(state.SelectItem{ID: id}) },
		)
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		if shape.Fit.HasConflict() {
			btn.Importance = widget.DangerImportance
		}
		if id == s.SelectedID {
			btn.Importance = widget.HighImportance
		}
		a.itemList.Add(btn)
	}
	a.itemList.Refresh()
}

// ─── Selected Item ─────────────────────────────────────────

func (a *App) refreshSelectedPanel(s state.State, fp plan.FloorPlan) {
	a.selectedPanel.RemoveAll()
	defer a.selectedPanel.Refresh()

	item, ok := s.Find(s.SelectedID)
	if !ok {
		a.selectedPanel.Add(widget.NewLabel("Tap an item on the plan to select it."))
		return
	}
	fit := fp.Fit.Item(item.ID)
	box := engine.Footprint(item)
	update := func(u state.ItemUpdate) {
		a.store.Dispatch(state.UpdateFurniture{ID: item.ID, Update: u})
	}

	a.selectedPanel.Add(widget.NewLabelWithStyle(model.ItemLabel(item), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	status := widget.NewLabel(engine.ItemStatusLabel(fit))
	if fit.HasConflict() {
		status.Importance = widget.DangerImportance
	}
	a.selectedPanel.Add(status)
	if labels := engine.OverlapLabels(s.Items, fit); len(labels) > 0 {
		a.selectedPanel.Add(widget.NewLabel("Overlaps " + strings.Join(labels, ", ")))
	}
	a.selectedPanel.Add(widget.NewLabel(fmt.Sprintf("Footprint %.2f x %.2f m, height %.2f m", box.Width, box.Depth, box.Height)))

	// Position
	xEntry := widget.NewEntry()
	xEntry.SetText(strconv.FormatFloat(item.Position.X(), 'f', 2, 64))
	zEntry := widget.NewEntry()
	zEntry.SetText(strconv.FormatFloat(item.Position.Z(), 'f', 2, 64))
	priceEntry := widget.NewEntry()
	priceEntry.SetText(strconv.FormatFloat(item.PriceOrZero(), 'f', 2, 64))

	apply := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), func() {
		x, errX := strconv.ParseFloat(xEntry.Text, 64)
		z, errZ := strconv.ParseFloat(zEntry.Text, 64)
		price, errP := strconv.ParseFloat(priceEntry.Text, 64)
		if errX != nil || errZ != nil {
			dialog.ShowError(fmt.Errorf("position must be numeric"), a.window)
			return
		}
		if errP != nil || price < 0 {
			dialog.ShowError(fmt.Errorf("price must be a number >= 0"), a.window)
			return
		}
		u := state.MoveTo(x, item.Position.Y(), z)
		u.Price = &price
		update(u)
	})

	a.selectedPanel.Add(container.NewGridWithColumns(2,
		widget.NewLabel("X (m)"), xEntry,
		widget.NewLabel("Z (m)"), zEntry,
		widget.NewLabel("Price"), priceEntry,
	))
	a.selectedPanel.Add(apply)

	// Rotate and scale
	rot := item.RotationOrZero()
	a.selectedPanel.Add(widget.NewLabel(fmt.Sprintf("Rotation %.0f°, scale %.2f",
		mgl64.RadToDeg(rot.Y()), item.ScaleOrUnit().X())))
	a.selectedPanel.Add(container.NewGridWithColumns(4,
		newIconButtonWithTooltip(theme.NavigateBackIcon(), "Rotate left", func() { update(state.RotateQuarter(item, 1)) }),
		newIconButtonWithTooltip(theme.NavigateNextIcon(), "Rotate right", func() { update(state.RotateQuarter(item, -1)) }),
		newIconButtonWithTooltip(theme.ZoomOutIcon(), "Shrink", func() { update(state.ScaleStep(item, false)) }),
		newIconButtonWithTooltip(theme.ZoomInIcon(), "Grow", func() { update(state.ScaleStep(item, true)) }),
	))

	// Color
	colorSelect := widget.NewSelect(state.PresetColors, func(hex string) {
		if hex != item.Color {
			update(state.Recolor(hex))
		}
	})
	colorSelect.PlaceHolder = "Color..."
	if item.Color != "" {
		colorSelect.Selected = item.Color
	}
	a.selectedPanel.Add(container.NewGridWithColumns(2, widget.NewLabel("Color"), colorSelect))

	remove := widget.NewButtonWithIcon("Remove", theme.DeleteIcon(), func() {
		a.store.Dispatch(state.RemoveFurniture{ID: item.ID})
	})
	remove.Importance = widget.DangerImportance
	a.selectedPanel.Add(remove)
}
