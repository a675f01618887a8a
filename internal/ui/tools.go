package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"GeoBoard/internal/export"
	"GeoBoard/internal/state"
)

var modeNames = map[string]state.Mode{
	"Euclidean": state.ModeEuclidean,
	"Affine":    state.ModeAffine,
	"Both":      state.ModeBoth,
}

func modeName(m state.Mode) string {
	switch m {
	case state.ModeEuclidean:
		return "Euclidean"
	case state.ModeAffine:
		return "Affine"
	default:
		return "Both"
	}
}

// NewToolbar builds the control strip above the canvas: mode selector,
// grid and animation toggles, PDF export and the share link.
func NewToolbar(fw *FigureWidget, win fyne.Window, shareLink string) fyne.CanvasObject {
	modeSelect := widget.NewSelect([]string{"Euclidean", "Affine", "Both"}, func(name string) {
		fw.figure.SetMode(modeNames[name])
		fw.Refresh()
	})
	modeSelect.SetSelected(modeName(fw.figure.Mode()))

	gridCheck := widget.NewCheck("Grid", fw.SetShowGrid)
	gridCheck.SetChecked(true)

	animCheck := widget.NewCheck("Animate", fw.SetAnimate)
	animCheck.SetChecked(true)

	exportBtn := widget.NewButton("Export PDF", func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := export.ExportPDF(path, fw.figure); err != nil {
				log.Printf("[UI] PDF export failed: %v", err)
				fw.SetStatus(fmt.Sprintf("Export failed: %v", err))
				return
			}
			fw.SetStatus("Exported " + path)
		}, win)
	})

	items := []fyne.CanvasObject{
		widget.NewLabel("Mode:"),
		modeSelect,
		widget.NewSeparator(),
		gridCheck,
		animCheck,
		widget.NewSeparator(),
		exportBtn,
		layout.NewSpacer(),
	}
	if shareLink != "" {
		items = append(items, widget.NewLabel("Share: "+shareLink))
	}
	return container.NewHBox(items...)
}
