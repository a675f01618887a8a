package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the main window and blocks until it closes. shareLink
// is shown in the toolbar when hosting; empty for viewers.
func RunApp(shareLink string, figure *FigureWidget) {
	myApp := app.New()
	myWindow := myApp.NewWindow("GeoBoard: Euclidean & Affine Planes")
	myWindow.Resize(fyne.NewSize(960, 720))

	toolbar := NewToolbar(figure, myWindow, shareLink)

	content := container.NewBorder(toolbar, figure.StatusBar(), nil, nil, figure)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
