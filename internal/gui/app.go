// Package gui is the Fyne frontend of lingopad. Every user interaction is
// turned into an app.Action; the returned app.View is then rendered by
// rebuilding the window content. Input widgets are kept across renders so
// typed text survives.
package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"codeberg.org/snonux/lingopad/internal"
	"codeberg.org/snonux/lingopad/internal/app"
	"codeberg.org/snonux/lingopad/internal/logging"
	"codeberg.org/snonux/lingopad/internal/translation"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	controller *app.Controller
	config     *Config
	logger     *zap.Logger
	ctx        context.Context

	// Login page
	firstNameEntry  *escEntry
	middleNameEntry *escEntry
	lastNameEntry   *escEntry
	emailEntry      *escEntry
	loginForm       *widget.Form

	// Sidebar
	logoutButton *ttwidget.Button
	helpButton   *ttwidget.Button
	panelSelect  *widget.Select

	// Translation panel
	sourceText      *escEntry
	sourceSelect    *widget.Select
	targetSelect    *widget.Select
	swapButton      *ttwidget.Button
	translateButton *widget.Button
	charCounter     *widget.Label

	// Notes panel
	noteEntry      *escEntry
	saveNoteButton *widget.Button

	// Word game panel
	answerEntry  *escEntry
	checkButton  *widget.Button
	nextButton   *ttwidget.Button
	exportButton *ttwidget.Button

	// State management
	view      app.View
	rendering bool // Set while widgets are synced to a view
}

// Config holds GUI application configuration
type Config struct {
	DeckPath      string // Suggested file for vocabulary export
	MaxInputRunes int    // Shown by the character counter
	Logger        *zap.Logger
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		DeckPath:      "lingopad-vocabulary.apkg",
		MaxInputRunes: translation.DefaultMaxInputRunes,
	}
}

// New creates a new GUI application on top of fyneApp
func New(fyneApp fyne.App, controller *app.Controller, config *Config) *Application {
	if config == nil {
		config = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if config.DeckPath == "" {
			config.DeckPath = defaults.DeckPath
		}
		if config.MaxInputRunes <= 0 {
			config.MaxInputRunes = defaults.MaxInputRunes
		}
	}

	fyneApp.SetIcon(GetAppIcon())

	a := &Application{
		app:        fyneApp,
		controller: controller,
		config:     config,
		logger:     logging.OrNop(config.Logger).Named("gui"),
		ctx:        context.Background(),
	}

	a.setupUI()
	a.render(controller.Render())

	return a
}

// setupUI creates the window and the widgets that live across renders
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("lingopad v%s", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(900, 640))

	a.setupLoginWidgets()
	a.setupSidebarWidgets()
	a.setupTranslationWidgets()
	a.setupNotesWidgets()
	a.setupGameWidgets()

	a.setupKeyboardShortcuts()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// dispatch hands action to the controller and renders the resulting view
func (a *Application) dispatch(action app.Action) {
	a.logger.Debug("dispatch", zap.String("action", fmt.Sprintf("%T", action)))
	a.render(a.controller.Dispatch(a.ctx, action))
}

// render rebuilds the window content from view
func (a *Application) render(view app.View) {
	a.view = view

	var content fyne.CanvasObject
	switch view.Page {
	case app.PageMain:
		content = a.mainPage(view)
	default:
		content = a.loginPage(view)
	}

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.logoutButton.SetToolTip("Log out and return to the login form")
	a.helpButton.SetToolTip("Show hotkeys (h)")
	a.swapButton.SetToolTip("Swap source and target language")
	a.nextButton.SetToolTip("Next word (n)")
	a.exportButton.SetToolTip("Export the vocabulary to Anki (x)")
}

// View returns the view currently shown
func (a *Application) View() app.View {
	return a.view
}
