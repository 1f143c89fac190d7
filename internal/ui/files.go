package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/RoomFit/internal/export"
	"github.com/piwi3910/RoomFit/internal/importer"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/project"
	"github.com/piwi3910/RoomFit/internal/state"
)

// ─── Layout Files ──────────────────────────────────────────

func (a *App) newLayout() {
	a.store.Dispatch(state.LoadLayout{Layout: model.Layout{
		RoomDimensions: a.config.DefaultRoom,
		FurnitureItems: []model.FurnitureItem{},
	}})
	a.layoutPath = ""
	a.window.SetTitle(appTitle)
}

func (a *App) openLayout() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.loadLayoutFrom(path)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{project.LayoutExt}))
	d.Show()
}

func (a *App) loadLayoutFrom(path string) {
	layout, err := project.LoadLayout(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.store.Dispatch(state.LoadLayout{Layout: layout})
	a.setLayoutPath(path)
}

func (a *App) saveLayout() {
	if a.layoutPath == "" {
		a.saveLayoutAs()
		return
	}
	if err := project.SaveLayout(a.layoutPath, a.store.Export()); err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *App) saveLayoutAs() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if !strings.HasSuffix(path, project.LayoutExt) {
			path += project.LayoutExt
		}
		if err := project.SaveLayout(path, a.store.Export()); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setLayoutPath(path)
	}, a.window)
	d.SetFileName("room-layout" + project.LayoutExt)
	d.Show()
}

// ─── Templates ─────────────────────────────────────────────

func (a *App) saveAsTemplate() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Template name")
	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Optional description")

	dialog.ShowForm("Save as Template", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("template name is required"), a.window)
				return
			}
			if existing := a.templates.FindByName(name); existing != nil {
				a.templates.Remove(existing.ID)
			}
			a.templates.Add(model.NewLayoutTemplate(name, descEntry.Text, a.store.Export()))
			if err := project.SaveTemplates(project.DefaultTemplatePath(), a.templates); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save templates: %w", err), a.window)
			}
		},
		a.window,
	)
}

func (a *App) showTemplatePicker() {
	names := a.templates.Names()
	if len(names) == 0 {
		dialog.ShowInformation("No templates", "Save a layout as a template first.", a.window)
		return
	}

	picker := widget.NewSelect(names, nil)
	picker.SetSelected(names[0])

	dialog.ShowForm("New from Template", "Create", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Template", picker)},
		func(ok bool) {
			if !ok {
				return
			}
			tmpl := a.templates.FindByName(picker.Selected)
			if tmpl == nil {
				return
			}
			a.store.Dispatch(state.LoadLayout{Layout: tmpl.ToLayout(time.Now())})
			a.layoutPath = ""
			a.window.SetTitle(appTitle)
		},
		a.window,
	)
}

// ─── Room ──────────────────────────────────────────────────

func (a *App) showRoomDialog() {
	room := a.store.Snapshot().Room
	entry := func(v float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(v, 'f', -1, 64))
		return e
	}
	widthEntry := entry(room.Width)
	lengthEntry := entry(room.Length)
	heightEntry := entry(room.Height)

	form := dialog.NewForm("Room Dimensions", "Apply", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Length (m)", lengthEntry),
			widget.NewFormItem("Height (m)", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			l, _ := strconv.ParseFloat(lengthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			if w <= 0 || l <= 0 || h <= 0 {
				dialog.ShowError(fmt.Errorf("width, length, and height must be > 0"), a.window)
				return
			}
			a.store.Dispatch(state.SetRoomDimensions{Room: model.RoomDimensions{Width: w, Length: l, Height: h}})
		},
		a.window,
	)
	form.Resize(fyne.NewSize(360, 260))
	form.Show()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importCSV() {
	a.importWith(importer.ImportCSV, ".csv", ".txt")
}

func (a *App) importExcel() {
	a.importWith(importer.ImportExcel, ".xlsx")
}

func (a *App) importWith(run func(path string) importer.ImportResult, exts ...string) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.handleImportResult(run(path))
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(exts))
	d.Show()
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	for _, w := range result.Warnings {
		log.Printf("import: %s", w)
	}

	if len(result.Items) == 0 {
		return
	}

	a.store.Dispatch(state.ImportFurniture{Items: result.Items})

	msg := fmt.Sprintf("Successfully imported %d items.", len(result.Items))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	if len(result.Warnings) > 0 {
		msg += fmt.Sprintf("\n\n%d warnings were logged.", len(result.Warnings))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportPDF() {
	a.exportWith("PDF report", ".pdf", export.ExportPDF)
}

func (a *App) exportLabels() {
	a.exportWith("Item tags", "-tags.pdf", export.ExportLabels)
}

func (a *App) exportDXF() {
	a.exportWith("DXF drawing", ".dxf", export.ExportDXF)
}

func (a *App) exportSummary() {
	a.exportWith("Summary", ".xlsx", export.ExportSummary)
}

// exportWith asks for a destination and writes the current layout with fn.
func (a *App) exportWith(what, suffix string, fn func(path string, layout model.Layout) error) {
	layout := a.store.Export()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := fn(path, layout); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%s saved to %s", what, path), a.window)
	}, a.window)
	d.SetFileName(a.exportBaseName() + suffix)
	d.Show()
}

// exportBaseName derives export file names from the open layout file.
func (a *App) exportBaseName() string {
	if a.layoutPath == "" {
		return "room-layout"
	}
	return strings.TrimSuffix(filepath.Base(a.layoutPath), filepath.Ext(a.layoutPath))
}
