package app

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/lingopad/internal/game"
	"codeberg.org/snonux/lingopad/internal/languages"
	"codeberg.org/snonux/lingopad/internal/session"
	"codeberg.org/snonux/lingopad/internal/translation"
)

// Action is a user interaction handed to Controller.Dispatch
type Action interface {
	apply(ctx context.Context, c *Controller)
}

// Login submits the login form
type Login struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
}

func (a Login) apply(_ context.Context, c *Controller) {
	err := c.session.Login(session.UserProfile{
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		Email:      a.Email,
	})
	if err != nil {
		c.addMessage(LevelError, "Please fill in all required fields.")
		return
	}
	c.panel = PanelTranslation
}

// Logout returns to the login page
type Logout struct{}

func (Logout) apply(_ context.Context, c *Controller) {
	c.session.Logout()
}

// SelectPanel switches the feature panel
type SelectPanel struct {
	Panel Panel
}

func (a SelectPanel) apply(_ context.Context, c *Controller) {
	if !validPanel(a.Panel) {
		c.addMessage(LevelError, "Unknown option: %s", a.Panel)
		return
	}
	c.panel = a.Panel
}

// Translate runs a translation. Source and Target are display names from
// the language list.
type Translate struct {
	Text   string
	Source string
	Target string
}

func (a Translate) apply(ctx context.Context, c *Controller) {
	c.panel = PanelTranslation

	if strings.TrimSpace(a.Text) == "" {
		c.addMessage(LevelWarning, "Please enter text to translate.")
		return
	}

	src, err := languages.Resolve(a.Source)
	if err != nil {
		c.addMessage(LevelError, "Unknown source language: %s", a.Source)
		return
	}
	tgt, err := languages.Resolve(a.Target)
	if err != nil {
		c.addMessage(LevelError, "Unknown target language: %s", a.Target)
		return
	}

	c.translation = c.translator.Translate(ctx, a.Text, src.Code, tgt.Code)

	if loadErr := c.translator.LoadError(); loadErr != nil {
		c.addMessage(LevelError, "Failed to load model: %v", loadErr)
		return
	}
	if c.translation == translation.FailureMessage {
		c.addMessage(LevelError, "Translation failed.")
		return
	}
	c.addMessage(LevelSuccess, "Translated Text:")
}

// SaveNote appends a note to the session
type SaveNote struct {
	Note string
}

func (a SaveNote) apply(_ context.Context, c *Controller) {
	c.panel = PanelNotes

	if err := c.session.AddNote(a.Note); err != nil {
		c.addMessage(LevelWarning, "Cannot save an empty note.")
		return
	}
	c.addMessage(LevelSuccess, "Note saved!")
}

// CheckAnswer checks a guess for the current game word
type CheckAnswer struct {
	Answer string
}

func (a CheckAnswer) apply(_ context.Context, c *Controller) {
	c.panel = PanelGame

	g := c.session.Game()
	word := g.Current()
	result := g.Check(a.Answer)
	c.logger.Info("answer checked", zap.String("word", word), zap.Bool("correct", result.Correct))

	if result.Correct {
		c.addMessage(LevelSuccess, "Correct!")
		return
	}
	c.addMessage(LevelError, "Incorrect! The correct answer is: %s", result.Answer)
}

// NextWord draws the next game word
type NextWord struct{}

func (NextWord) apply(_ context.Context, c *Controller) {
	c.panel = PanelGame

	if err := c.session.Game().Next(); errors.Is(err, game.ErrNotChecked) {
		c.addMessage(LevelWarning, "Check your answer before moving on.")
	}
}

// ExportDeck writes the game vocabulary as an Anki deck
type ExportDeck struct {
	Path string
}

func (a ExportDeck) apply(_ context.Context, c *Controller) {
	if c.exporter == nil {
		c.addMessage(LevelError, "Deck export is not available.")
		return
	}
	if err := c.exporter.ExportDeck(a.Path); err != nil {
		c.logger.Error("deck export failed", zap.String("path", a.Path), zap.Error(err))
		c.addMessage(LevelError, "Failed to export deck: %v", err)
		return
	}
	c.addMessage(LevelSuccess, "Deck exported to %s", a.Path)
}
