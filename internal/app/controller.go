package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/snonux/lingopad/internal/languages"
	"codeberg.org/snonux/lingopad/internal/logging"
	"codeberg.org/snonux/lingopad/internal/session"
)

// Translator is the translation adapter as seen by the controller
type Translator interface {
	Translate(ctx context.Context, text, src, tgt string) string
	LoadError() error
}

// DeckExporter writes the game vocabulary to a deck file
type DeckExporter interface {
	ExportDeck(path string) error
}

// Controller routes actions to the session and the feature panels
type Controller struct {
	session    *session.Session
	translator Translator
	exporter   DeckExporter
	logger     *zap.Logger

	panel       Panel
	messages    []Message
	translation string
}

// NewController creates a controller showing the login page. exporter may
// be nil, in which case deck export reports an error.
func NewController(sess *session.Session, translator Translator, exporter DeckExporter, logger *zap.Logger) *Controller {
	return &Controller{
		session:    sess,
		translator: translator,
		exporter:   exporter,
		logger:     logging.OrNop(logger).Named("app").With(zap.String("session", sess.ID())),
		panel:      PanelTranslation,
	}
}

// Session returns the session owned by the controller
func (c *Controller) Session() *session.Session {
	return c.session
}

// Dispatch applies action and returns the next view. While logged out,
// everything but Login is ignored.
func (c *Controller) Dispatch(ctx context.Context, action Action) View {
	c.messages = nil
	c.translation = ""

	if action == nil {
		return c.Render()
	}
	if _, isLogin := action.(Login); !isLogin && !c.session.LoggedIn() {
		c.logger.Debug("ignoring action while logged out", zap.String("action", fmt.Sprintf("%T", action)))
		return c.Render()
	}

	action.apply(ctx, c)
	return c.Render()
}

// Render builds the view for the current state without changing it, apart
// from starting the word game on first entry into its panel.
func (c *Controller) Render() View {
	user, ok := c.session.User()
	if !ok {
		return View{
			Page:     PageLogin,
			Messages: c.copyMessages(),
		}
	}

	view := View{
		Page:        PageMain,
		Greeting:    fmt.Sprintf("Welcome, %s!", user.FirstName),
		Panel:       c.panel,
		Panels:      Panels(),
		Messages:    c.copyMessages(),
		Languages:   languages.Names(),
		Translation: c.translation,
	}

	switch c.panel {
	case PanelNotes:
		for i, note := range c.session.Notes() {
			view.Notes = append(view.Notes, fmt.Sprintf("%d. %s", i+1, note))
		}
	case PanelGame:
		g := c.session.Game()
		view.GameWord = g.Current()
		view.CanAdvance = g.Checked()
	}

	return view
}

func (c *Controller) addMessage(level Level, format string, args ...interface{}) {
	c.messages = append(c.messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

func (c *Controller) copyMessages() []Message {
	if len(c.messages) == 0 {
		return nil
	}
	result := make([]Message, len(c.messages))
	copy(result, c.messages)
	return result
}
