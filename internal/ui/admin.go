package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/RoomFit/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(*val, 'f', -1, 64))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(*val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	boxesCheck := widget.NewCheck("", func(b bool) { cfg.ShowBoundingBoxes = b })
	boxesCheck.Checked = cfg.ShowBoundingBoxes

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Undo Steps", intEntry(&cfg.HistoryDepth)),
		widget.NewFormItem("Show Bounding Boxes at Start", boxesCheck),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Room Width (m)", floatEntry(&cfg.DefaultRoom.Width)),
		widget.NewFormItem("Default Room Length (m)", floatEntry(&cfg.DefaultRoom.Length)),
		widget.NewFormItem("Default Room Height (m)", floatEntry(&cfg.DefaultRoom.Height)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cfg.Normalize()
			a.config = cfg
			a.app.Settings().SetTheme(ThemeForName(cfg.Theme))
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved",
					"Settings have been saved. Undo depth applies after restart.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(460, 400))
	d.Show()
}

// showImportExportDialog displays the backup dialog for settings and templates.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, a.templates); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("roomfit-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and layout templates.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					path := reader.URI().Path()
					reader.Close()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.templates = backup.Templates
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					if err := project.SaveTemplates(project.DefaultTemplatePath(), a.templates); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported templates: %w", err), a.window)
						return
					}
					a.app.Settings().SetTheme(ThemeForName(a.config.Theme))
					a.SetupMenus()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and layout templates to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
