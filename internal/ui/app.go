package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/plan"
	"github.com/piwi3910/RoomFit/internal/project"
	"github.com/piwi3910/RoomFit/internal/state"
	"github.com/piwi3910/RoomFit/internal/ui/widgets"
)

const appTitle = "RoomFit - Room Layout Planner"

// App holds the window, the layout store and the UI references that are
// refreshed whenever the store changes.
type App struct {
	app       fyne.App
	window    fyne.Window
	store     *state.Store
	config    model.AppConfig
	templates model.TemplateStore

	// path of the layout file last opened or saved
	layoutPath string

	// UI references for dynamic updates
	floor         *widgets.FloorCanvas
	statusLabel   *widget.Label
	totalLabel    *widget.Label
	itemList      *fyne.Container
	selectedPanel *fyne.Container
	undoBtn       *ttwidget.Button
	redoBtn       *ttwidget.Button

	unsubscribe func()
}

// NewApp loads the saved config and templates and creates the layout store
// with the starter layout.
func NewApp(application fyne.App, window fyne.Window) *App {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = model.DefaultAppConfig()
	}
	templates, err := project.LoadTemplates(project.DefaultTemplatePath())
	if err != nil {
		log.Printf("templates: %v", err)
		templates = model.NewTemplateStore()
	}

	store := state.NewStore(state.Initial(), state.WithHistoryDepth(cfg.HistoryDepth))
	if cfg.ShowBoundingBoxes {
		store.Dispatch(state.ToggleBoundingBoxes{})
	}

	return &App{
		app:       application,
		window:    window,
		store:     store,
		config:    cfg,
		templates: templates,
	}
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.floor = widgets.NewFloorCanvas()
	a.floor.OnSelect = func(id string) {
		a.store.Dispatch(state.SelectItem{ID: id})
	}
	a.floor.OnMove = func(id string, x, z float64) {
		if item, ok := a.store.Snapshot().Find(id); ok {
			a.store.Dispatch(state.UpdateFurniture{ID: id, Update: state.MoveTo(x, item.Position.Y(), z)})
		}
	}

	split := container.NewHSplit(a.floor, a.buildFitPanel())
	split.Offset = 0.68

	content := container.NewBorder(
		a.buildToolbar(), nil,
		a.buildPalette(), nil,
		split,
	)

	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.unsubscribe = a.store.Subscribe(func(s state.State) {
		fyne.Do(func() { a.render(s) })
	})
	a.render(a.store.Snapshot())

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyDelete {
			a.removeSelected()
		}
	})

	return fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas())
}

// render redraws everything that depends on the layout.
func (a *App) render(s state.State) {
	fp := plan.Build(s.Layout())
	a.floor.SetPlan(fp, s.SelectedID, s.ShowBoundingBoxes)
	a.refreshFitPanel(s, fp)
	a.refreshSelectedPanel(s, fp)

	if a.store.CanUndo() {
		a.undoBtn.Enable()
	} else {
		a.undoBtn.Disable()
	}
	if a.store.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

// ─── Toolbar ───────────────────────────────────────────────

func (a *App) buildToolbar() fyne.CanvasObject {
	a.undoBtn = newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo)
	a.redoBtn = newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo)

	return container.NewHBox(
		newIconButtonWithTooltip(theme.DocumentCreateIcon(), "New layout", a.newLayout),
		newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open layout", a.openLayout),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save layout", a.saveLayout),
		widget.NewSeparator(),
		a.undoBtn,
		a.redoBtn,
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.ViewFullScreenIcon(), "Room dimensions", a.showRoomDialog),
		newIconButtonWithTooltip(theme.VisibilityIcon(), "Toggle bounding boxes", func() {
			a.store.Dispatch(state.ToggleBoundingBoxes{})
		}),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export PDF report", a.exportPDF),
	)
}

func (a *App) undo() {
	a.store.Undo()
}

func (a *App) redo() {
	a.store.Redo()
}

func (a *App) removeSelected() {
	if item, ok := a.store.Selected(); ok {
		a.store.Dispatch(state.RemoveFurniture{ID: item.ID})
	}
}

// ─── Menus ─────────────────────────────────────────────────

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := fyne.NewMenuItem("Open Recent", nil)
	recent.ChildMenu = a.recentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Layout", a.newLayout),
		fyne.NewMenuItem("New from Template...", a.showTemplatePicker),
		fyne.NewMenuItem("Open Layout...", a.openLayout),
		recent,
		fyne.NewMenuItem("Save Layout", a.saveLayout),
		fyne.NewMenuItem("Save Layout As...", a.saveLayoutAs),
		fyne.NewMenuItem("Save as Template...", a.saveAsTemplate),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Furniture from CSV...", a.importCSV),
		fyne.NewMenuItem("Import Furniture from Excel...", a.importExcel),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", a.exportPDF),
		fyne.NewMenuItem("Export Item Tags...", a.exportLabels),
		fyne.NewMenuItem("Export DXF...", a.exportDXF),
		fyne.NewMenuItem("Export Summary (Excel)...", a.exportSummary),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Remove Selected", a.removeSelected),
		fyne.NewMenuItem("Clear All Furniture", func() {
			dialog.ShowConfirm("Clear All", "Remove every item from the room?", func(ok bool) {
				if ok {
					a.store.Dispatch(state.ClearAll{})
				}
			}, a.window)
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Bounding Boxes", func() {
			a.store.Dispatch(state.ToggleBoundingBoxes{})
		}),
	)

	roomMenu := fyne.NewMenu("Room",
		fyne.NewMenuItem("Dimensions...", a.showRoomDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, roomMenu, helpMenu))
}

func (a *App) recentMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, p := range a.config.RecentLayouts {
		path := p
		items = append(items, fyne.NewMenuItem(path, func() {
			a.loadLayoutFrom(path)
		}))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("(none)", nil)
		none.Disabled = true
		items = append(items, none)
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About RoomFit",
		"RoomFit - Room Layout Planner\n\n"+
			"Place furniture in a rectangular room and check that\n"+
			"every piece fits inside the walls without overlapping.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// setLayoutPath records the current file, updates the title and the recent list.
func (a *App) setLayoutPath(path string) {
	a.layoutPath = path
	if path == "" {
		a.window.SetTitle(appTitle)
		return
	}
	a.window.SetTitle(fmt.Sprintf("%s [%s]", appTitle, path))
	a.config.AddRecentLayout(path)
	if err := a.saveConfig(); err != nil {
		log.Printf("config: %v", err)
	}
	a.SetupMenus()
}
