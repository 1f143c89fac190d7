// RoomFit - Room Layout Planner
//
// A cross-platform desktop application for arranging furniture in a
// rectangular room and checking that every piece fits.
//
// Build:
//   go build -o roomfit ./cmd/roomfit
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o roomfit.exe ./cmd/roomfit
//   GOOS=darwin  GOARCH=amd64 go build -o roomfit-darwin ./cmd/roomfit

package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/RoomFit/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("roomfit: ")

	application := app.NewWithID("com.piwi3910.roomfit")
	window := application.NewWindow("RoomFit - Room Layout Planner")

	appUI := ui.NewApp(application, window)
	application.Settings().SetTheme(appUI.Theme())
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1280, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
