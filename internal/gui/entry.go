package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// escEntry is a text entry that hands focus back to the window on Escape,
// so the single-key shortcuts work again without reaching for the mouse.
type escEntry struct {
	widget.Entry
	onEscape func()
}

// newEscEntry creates a single-line entry. onSubmit runs on Enter.
func newEscEntry(placeholder string, onEscape func(), onSubmit func()) *escEntry {
	e := &escEntry{onEscape: onEscape}
	e.PlaceHolder = placeholder
	e.ExtendBaseWidget(e)
	e.setSubmit(onSubmit)
	return e
}

// newMultiLineEscEntry creates a wrapping multi-line entry showing rows
// lines. onSubmit runs on Shift+Enter; plain Enter inserts a newline.
func newMultiLineEscEntry(placeholder string, rows int, onEscape func(), onSubmit func()) *escEntry {
	e := &escEntry{onEscape: onEscape}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.PlaceHolder = placeholder
	e.ExtendBaseWidget(e)
	e.SetMinRowsVisible(rows)
	e.setSubmit(onSubmit)
	return e
}

func (e *escEntry) setSubmit(onSubmit func()) {
	if onSubmit == nil {
		return
	}
	e.OnSubmitted = func(string) { onSubmit() }
}

// TypedKey intercepts Escape
func (e *escEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}
