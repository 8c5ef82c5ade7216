package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/lingopad/internal/app"
)

// MessageList shows the inline messages of a view, colored by level
type MessageList struct {
	widget.BaseWidget

	container *fyne.Container
	labels    []*widget.Label
}

// newMessageList creates a message list for messages
func newMessageList(messages []app.Message) *MessageList {
	l := &MessageList{container: container.NewVBox()}

	for _, m := range messages {
		label := widget.NewLabel(m.Text)
		label.Wrapping = fyne.TextWrapWord
		label.Importance = importanceFor(m.Level)

		l.labels = append(l.labels, label)
		l.container.Add(container.NewBorder(nil, nil, widget.NewIcon(iconFor(m.Level)), nil, label))
	}

	l.ExtendBaseWidget(l)
	return l
}

// CreateRenderer implements fyne.Widget
func (l *MessageList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.container)
}

// Texts returns the shown message texts
func (l *MessageList) Texts() []string {
	texts := make([]string, 0, len(l.labels))
	for _, label := range l.labels {
		texts = append(texts, label.Text)
	}
	return texts
}

func importanceFor(level app.Level) widget.Importance {
	switch level {
	case app.LevelSuccess:
		return widget.SuccessImportance
	case app.LevelWarning:
		return widget.WarningImportance
	case app.LevelError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

func iconFor(level app.Level) fyne.Resource {
	switch level {
	case app.LevelSuccess:
		return theme.ConfirmIcon()
	case app.LevelWarning:
		return theme.WarningIcon()
	case app.LevelError:
		return theme.ErrorIcon()
	default:
		return theme.InfoIcon()
	}
}
