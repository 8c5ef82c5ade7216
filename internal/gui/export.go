package gui

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/lingopad/internal"
	"codeberg.org/snonux/lingopad/internal/anki"
	"codeberg.org/snonux/lingopad/internal/app"
)

var exportFormats = []string{"APKG (Recommended)", "CSV (Legacy)"}

// exportPath joins dir and name, replacing the extension to match format
func exportPath(dir, name, format string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	stem = internal.SanitizeFilename(stem)
	if stem == "" {
		stem = "lingopad-vocabulary"
	}
	return filepath.Join(dir, stem+"."+format)
}

// onExportDeck asks where to write the vocabulary deck and exports it
func (a *Application) onExportDeck() {
	if a.view.Page != app.PageMain {
		return
	}

	formatSelect := widget.NewSelect(exportFormats, nil)
	formatSelect.SetSelected(exportFormats[0])
	if strings.EqualFold(filepath.Ext(a.config.DeckPath), ".csv") {
		formatSelect.SetSelected(exportFormats[1])
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(filepath.Base(a.config.DeckPath))

	selectedDir := filepath.Dir(a.config.DeckPath)
	if abs, err := filepath.Abs(selectedDir); err == nil {
		selectedDir = abs
	}
	dirLabel := widget.NewLabel(selectedDir)
	dirLabel.Truncation = fyne.TextTruncateEllipsis

	dirButton := widget.NewButton("Browse...", func() {
		folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			selectedDir = dir.Path()
			dirLabel.SetText(selectedDir)
		}, a.window)

		// Try to set initial directory
		if lister, err := storage.ListerForURI(storage.NewFileURI(selectedDir)); err == nil {
			folderDialog.SetLocation(lister)
		}

		folderDialog.Show()
	})

	content := container.NewVBox(
		widget.NewLabel("Export Format:"),
		formatSelect,
		widget.NewSeparator(),
		widget.NewLabel("File Name:"),
		nameEntry,
		widget.NewSeparator(),
		widget.NewLabel("Export Directory:"),
		container.NewBorder(nil, nil, nil, dirButton, dirLabel),
		widget.NewLabel(""),
		widget.NewRichTextFromMarkdown("**APKG**: Anki package with forward and reverse cards\n\n**CSV**: Plain text for manual import"),
	)

	confirm := dialog.NewCustomConfirm("Export to Anki", "Export", "Cancel", content, func(export bool) {
		if !export {
			return
		}
		format := anki.FormatAPKG
		if formatSelect.Selected == exportFormats[1] {
			format = anki.FormatCSV
		}
		a.dispatch(app.ExportDeck{Path: exportPath(selectedDir, nameEntry.Text, format)})
	}, a.window)
	confirm.Resize(fyne.NewSize(480, 0))
	confirm.Show()
}
