package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Options configure the main window.
type Options struct {
	Title     string
	Width     float32
	Height    float32
	ShareLink string
}

// NewWindow lays out board in a window of a. Editable boards get the
// toolbar and keyboard shortcuts.
func NewWindow(a fyne.App, opts Options, board *BoardWidget) fyne.Window {
	win := a.NewWindow(opts.Title)
	win.Resize(fyne.NewSize(opts.Width, opts.Height))

	bottom := []fyne.CanvasObject{board.StatusBar()}
	if opts.ShareLink != "" {
		link := widget.NewEntry()
		link.SetText(opts.ShareLink)
		bottom = append(bottom, widget.NewLabel("Share:"), link)
	}
	statusBox := container.NewHBox(bottom...)

	var top fyne.CanvasObject
	if !board.ReadOnly() {
		top = NewToolbar(board, win)
		AddShortcuts(win, board)
	}

	win.SetContent(container.NewBorder(top, statusBox, nil, nil, board))
	return win
}
