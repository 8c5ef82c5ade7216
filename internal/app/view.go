package app

// Page is the top-level page shown to the user
type Page int

const (
	PageLogin Page = iota
	PageMain
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageMain:
		return "main"
	default:
		return "unknown"
	}
}

// Panel is one of the feature panels of the main page
type Panel string

const (
	PanelTranslation Panel = "Translation"
	PanelNotes       Panel = "Note Taking"
	PanelGame        Panel = "Word Guessing Game"
)

// Panels returns the selectable panels in menu order
func Panels() []Panel {
	return []Panel{PanelTranslation, PanelNotes, PanelGame}
}

func validPanel(p Panel) bool {
	for _, known := range Panels() {
		if p == known {
			return true
		}
	}
	return false
}

// Level is the severity of a message
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is an inline notice shown after an action
type Message struct {
	Level Level
	Text  string
}

// View is everything a frontend needs to draw the current page. Messages
// and the translation result only live for the action that produced them.
type View struct {
	Page     Page
	Greeting string
	Panel    Panel
	Panels   []Panel
	Messages []Message

	// Translation panel
	Languages   []string
	Translation string

	// Notes panel, formatted as "<i>. <note>"
	Notes []string

	// Word game panel
	GameWord   string
	CanAdvance bool
}

// HasLevel reports whether the view carries a message of level l
func (v View) HasLevel(l Level) bool {
	for _, m := range v.Messages {
		if m.Level == l {
			return true
		}
	}
	return false
}
