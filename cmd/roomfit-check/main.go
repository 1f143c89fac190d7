// roomfit-check evaluates a saved room layout and optionally writes the
// same reports the desktop app exports.
//
// Usage:
//   roomfit-check [-pdf report.pdf] [-dxf plan.dxf] [-xlsx summary.xlsx] [-labels tags.pdf] layout.json
//   roomfit-check -default
//
// Exit status is 0 when every item fits, 1 when the layout has conflicts
// and 2 when the input could not be read or a report could not be written.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/export"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/project"
)

const (
	exitOK       = 0
	exitConflict = 1
	exitUsage    = 2
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("roomfit-check: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("roomfit-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pdfPath := fs.String("pdf", "", "write a PDF floor plan report")
	dxfPath := fs.String("dxf", "", "write a DXF floor plan")
	xlsxPath := fs.String("xlsx", "", "write an Excel summary")
	labelsPath := fs.String("labels", "", "write QR item tags as PDF")
	useDefault := fs.Bool("default", false, "check the built-in starter layout")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: roomfit-check [flags] layout.json")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	logger := log.New(stderr, log.Prefix(), log.Flags())

	var layout model.Layout
	switch {
	case *useDefault:
		layout = model.DefaultLayout()
	case fs.NArg() == 1:
		l, err := project.LoadLayout(fs.Arg(0))
		if err != nil {
			logger.Printf("%v", err)
			return exitUsage
		}
		layout = l
	default:
		fs.Usage()
		return exitUsage
	}

	fit := engine.ComputeFitState(layout.RoomDimensions, layout.FurnitureItems)
	printReport(stdout, layout, fit)

	exports := []struct {
		path string
		fn   func(string, model.Layout) error
	}{
		{*pdfPath, export.ExportPDF},
		{*dxfPath, export.ExportDXF},
		{*xlsxPath, export.ExportSummary},
		{*labelsPath, export.ExportLabels},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.fn(e.path, layout); err != nil {
			logger.Printf("%v", err)
			return exitUsage
		}
		logger.Printf("wrote %s", e.path)
	}

	if fit.Overall.Status != model.StatusOK {
		return exitConflict
	}
	return exitOK
}

func printReport(w io.Writer, layout model.Layout, fit model.FitState) {
	room := layout.RoomDimensions
	fmt.Fprintf(w, "Room %.2f x %.2f x %.2f m, %d items\n",
		room.Width, room.Length, room.Height, len(layout.FurnitureItems))
	fmt.Fprintf(w, "Status: %s (%s)\n", engine.StatusText(fit.Overall.Status), fit.Overall.Status)
	for _, item := range layout.FurnitureItems {
		fmt.Fprintf(w, "  %-24s %6.2f %6.2f  %s\n", model.ItemLabel(item),
			item.Position.X(), item.Position.Z(), engine.ItemStatusLabel(fit.Item(item.ID)))
	}
	for _, line := range engine.DescribeConflicts(layout.FurnitureItems, fit) {
		fmt.Fprintf(w, "Conflict: %s\n", line)
	}
	fmt.Fprintf(w, "Total price: %.2f\n", layout.TotalPrice())
}
