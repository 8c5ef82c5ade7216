package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestEscEntry(t *testing.T) {
	test.NewTempApp(t)

	escaped, submitted := 0, 0
	e := newEscEntry("Your answer...", func() { escaped++ }, func() { submitted++ })
	assert.Equal(t, "Your answer...", e.PlaceHolder)
	assert.False(t, e.MultiLine)

	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, 1, escaped)

	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, 1, submitted)
}

func TestMultiLineEscEntry(t *testing.T) {
	test.NewTempApp(t)

	escaped, submitted := 0, 0
	e := newMultiLineEscEntry("Notes", 6, func() { escaped++ }, func() { submitted++ })
	assert.True(t, e.MultiLine)
	assert.Equal(t, fyne.TextWrapWord, e.Wrapping)

	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, 0, submitted, "plain Enter inserts a newline")
	assert.Equal(t, "\n", e.Text)

	e.KeyDown(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	e.KeyUp(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	assert.Equal(t, 1, submitted)

	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, 1, escaped)
}

func TestEscEntryWithoutSubmit(t *testing.T) {
	test.NewTempApp(t)

	e := newEscEntry("", nil, nil)
	assert.Nil(t, e.OnSubmitted)
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
}
