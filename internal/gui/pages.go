package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/lingopad/internal/app"
)

func (a *Application) setupLoginWidgets() {
	a.firstNameEntry = newEscEntry("Required", a.unfocus, a.onLogin)
	a.middleNameEntry = newEscEntry("Optional", a.unfocus, a.onLogin)
	a.lastNameEntry = newEscEntry("Required", a.unfocus, a.onLogin)
	a.emailEntry = newEscEntry("Required", a.unfocus, a.onLogin)

	a.loginForm = &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("First Name", a.firstNameEntry),
			widget.NewFormItem("Middle Name", a.middleNameEntry),
			widget.NewFormItem("Last Name", a.lastNameEntry),
			widget.NewFormItem("Email", a.emailEntry),
		},
		SubmitText: "Submit",
		OnSubmit:   a.onLogin,
	}
}

func (a *Application) onLogin() {
	a.dispatch(app.Login{
		FirstName:  a.firstNameEntry.Text,
		MiddleName: a.middleNameEntry.Text,
		LastName:   a.lastNameEntry.Text,
		Email:      a.emailEntry.Text,
	})
}

// loginPage builds the login form
func (a *Application) loginPage(view app.View) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("User Login", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	form := container.NewVBox(
		title,
		widget.NewSeparator(),
		a.loginForm,
		newMessageList(view.Messages),
	)

	// Keep the form at a readable width in the middle of the window
	return container.NewCenter(container.New(layout.NewGridWrapLayout(fyne.NewSize(460, 320)), form))
}

func (a *Application) setupSidebarWidgets() {
	a.logoutButton = ttwidget.NewButtonWithIcon("Logout", theme.LogoutIcon(), func() {
		a.dispatch(app.Logout{})
	})
	a.helpButton = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	options := make([]string, 0, len(app.Panels()))
	for _, p := range app.Panels() {
		options = append(options, string(p))
	}
	a.panelSelect = widget.NewSelect(options, func(selected string) {
		if a.rendering {
			return
		}
		a.dispatch(app.SelectPanel{Panel: app.Panel(selected)})
	})
}

// mainPage builds the sidebar and the selected feature panel
func (a *Application) mainPage(view app.View) fyne.CanvasObject {
	a.rendering = true
	a.panelSelect.SetSelected(string(view.Panel))
	a.rendering = false

	greeting := widget.NewLabelWithStyle(view.Greeting, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	sidebar := container.NewVBox(
		greeting,
		a.logoutButton,
		widget.NewSeparator(),
		widget.NewLabel("Choose an option:"),
		a.panelSelect,
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), a.helpButton),
	)

	var panel fyne.CanvasObject
	switch view.Panel {
	case app.PanelNotes:
		panel = a.notesPanel(view)
	case app.PanelGame:
		panel = a.gamePanel(view)
	default:
		panel = a.translationPanel(view)
	}

	return container.NewBorder(
		nil, nil,
		container.NewPadded(sidebar),
		nil,
		container.NewPadded(container.NewVScroll(panel)),
	)
}

func (a *Application) unfocus() {
	a.window.Canvas().Unfocus()
}
