package gui

import (
	"fmt"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/lingopad/internal/app"
	"codeberg.org/snonux/lingopad/internal/languages"
)

func subheader(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func (a *Application) setupTranslationWidgets() {
	a.sourceText = newMultiLineEscEntry("Enter text to translate... Shift+Enter translates, Escape leaves the field", 6, a.unfocus, a.onTranslate)

	a.charCounter = widget.NewLabel("")
	a.charCounter.TextStyle = fyne.TextStyle{Italic: true}
	a.sourceText.OnChanged = func(string) { a.updateCharCounter() }
	a.updateCharCounter()

	names := languages.Names()
	a.sourceSelect = widget.NewSelect(names, nil)
	a.sourceSelect.SetSelected(names[0])
	a.targetSelect = widget.NewSelect(names, nil)
	a.targetSelect.SetSelected(languages.NameFor("fr"))

	a.swapButton = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onSwapLanguages)
	a.translateButton = widget.NewButtonWithIcon("Translate", theme.ConfirmIcon(), a.onTranslate)
	a.translateButton.Importance = widget.HighImportance
}

func (a *Application) updateCharCounter() {
	count := utf8.RuneCountInString(a.sourceText.Text)
	a.charCounter.SetText(fmt.Sprintf("%d / %d characters", count, a.config.MaxInputRunes))
	if count > a.config.MaxInputRunes {
		a.charCounter.Importance = widget.WarningImportance
	} else {
		a.charCounter.Importance = widget.MediumImportance
	}
	a.charCounter.Refresh()
}

func (a *Application) onSwapLanguages() {
	src, tgt := a.sourceSelect.Selected, a.targetSelect.Selected
	a.sourceSelect.SetSelected(tgt)
	a.targetSelect.SetSelected(src)
}

func (a *Application) onTranslate() {
	a.dispatch(app.Translate{
		Text:   a.sourceText.Text,
		Source: a.sourceSelect.Selected,
		Target: a.targetSelect.Selected,
	})
}

// translationPanel builds the text translation panel
func (a *Application) translationPanel(view app.View) fyne.CanvasObject {
	langRow := container.NewBorder(nil, nil, nil, a.swapButton,
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("Select Source Language:"), a.sourceSelect),
			container.NewVBox(widget.NewLabel("Select Target Language:"), a.targetSelect),
		),
	)

	content := container.NewVBox(
		subheader("Translate Text"),
		widget.NewLabel("Enter text to translate:"),
		a.sourceText,
		container.NewHBox(layout.NewSpacer(), a.charCounter),
		langRow,
		container.NewHBox(a.translateButton),
		newMessageList(view.Messages),
	)

	if view.Translation != "" {
		result := widget.NewLabel(view.Translation)
		result.Wrapping = fyne.TextWrapWord
		content.Add(result)
	}

	return content
}

func (a *Application) setupNotesWidgets() {
	a.noteEntry = newMultiLineEscEntry("Write your notes here... Shift+Enter saves, Escape leaves the field", 6, a.unfocus, a.onSaveNote)
	a.saveNoteButton = widget.NewButtonWithIcon("Save Note", theme.DocumentSaveIcon(), a.onSaveNote)
}

func (a *Application) onSaveNote() {
	a.dispatch(app.SaveNote{Note: a.noteEntry.Text})
}

// notesPanel builds the note taking panel
func (a *Application) notesPanel(view app.View) fyne.CanvasObject {
	content := container.NewVBox(
		subheader("Notes"),
		a.noteEntry,
		container.NewHBox(a.saveNoteButton),
		newMessageList(view.Messages),
	)

	if len(view.Notes) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(subheader("Saved Notes"))
		for _, note := range view.Notes {
			label := widget.NewLabel(note)
			label.Wrapping = fyne.TextWrapWord
			content.Add(label)
		}
	}

	return content
}

func (a *Application) setupGameWidgets() {
	a.answerEntry = newEscEntry("Your answer...", a.unfocus, a.onCheckAnswer)

	a.checkButton = widget.NewButtonWithIcon("Check", theme.ConfirmIcon(), a.onCheckAnswer)
	a.nextButton = ttwidget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), a.onNextWord)
	a.exportButton = ttwidget.NewButtonWithIcon("Export deck…", theme.UploadIcon(), a.onExportDeck)
}

func (a *Application) onCheckAnswer() {
	a.dispatch(app.CheckAnswer{Answer: a.answerEntry.Text})
}

func (a *Application) onNextWord() {
	if !a.view.CanAdvance {
		return
	}
	a.answerEntry.SetText("")
	a.dispatch(app.NextWord{})
}

// gamePanel builds the word guessing game panel
func (a *Application) gamePanel(view app.View) fyne.CanvasObject {
	prompt := widget.NewRichTextFromMarkdown(fmt.Sprintf("Translate this word into French: **%s**", view.GameWord))

	buttons := container.NewHBox(a.checkButton)
	if view.CanAdvance {
		buttons.Add(a.nextButton)
	}
	buttons.Add(layout.NewSpacer())
	buttons.Add(a.exportButton)

	return container.NewVBox(
		subheader("Word Guessing Game"),
		widget.NewLabelWithStyle("Translation from English to French", fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
		prompt,
		widget.NewLabel("Your answer:"),
		a.answerEntry,
		buttons,
		newMessageList(view.Messages),
	)
}
