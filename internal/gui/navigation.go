package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/lingopad/internal/app"
)

// setupKeyboardShortcuts binds single-key shortcuts that apply while no
// input field has focus
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if a.window.Canvas().Focused() != nil {
			return
		}
		a.handleShortcutRune(r)
	})

	a.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			a.unfocus()
		}
	})
}

// handleShortcutRune runs the shortcut bound to r, if any
func (a *Application) handleShortcutRune(r rune) {
	switch r {
	case 'h', 'H', '?':
		a.onShowHotkeys()
		return
	case 'q', 'Q':
		a.app.Quit()
		return
	}

	if a.view.Page != app.PageMain {
		return
	}

	switch r {
	case '1':
		a.dispatch(app.SelectPanel{Panel: app.PanelTranslation})
	case '2':
		a.dispatch(app.SelectPanel{Panel: app.PanelNotes})
	case '3':
		a.dispatch(app.SelectPanel{Panel: app.PanelGame})
	case 'n', 'N':
		if a.view.Panel == app.PanelGame {
			a.onNextWord()
		}
	case 'x', 'X':
		a.onExportDeck()
	}
}

// onShowHotkeys shows the list of keyboard shortcuts
func (a *Application) onShowHotkeys() {
	hotkeys := `## Panels
**1** Translation  
**2** Note Taking  
**3** Word Guessing Game  

## Fields
**Esc** Unfocus field  
**Enter** Submit login or answer  

## Word Game
**n** Next word (after checking)  
**x** Export vocabulary to Anki  

## Help
**h** Show hotkeys  
**q** Quit application  

Shortcuts apply while no input field has focus.`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewVScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(360, 380))

	dialog.NewCustom("Hotkeys", "Close", scroll, a.window).Show()
}
