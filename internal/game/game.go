// Package game implements the English to French word guessing game.
package game

import (
	"errors"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotChecked is returned by Next before the current word was checked
var ErrNotChecked = errors.New("current word has not been checked yet")

// Pair is one vocabulary entry
type Pair struct {
	Word        string // English prompt
	Translation string // Expected French answer
}

var vocabulary = []Pair{
	{"hello", "bonjour"},
	{"goodbye", "au revoir"},
	{"thank you", "merci"},
	{"please", "s'il vous plaît"},
	{"love", "amour"},
	{"friend", "ami"},
	{"family", "famille"},
	{"happy", "heureux"},
	{"sad", "triste"},
	{"food", "nourriture"},
	{"water", "eau"},
	{"book", "livre"},
	{"music", "musique"},
	{"sun", "soleil"},
	{"moon", "lune"},
}

// Vocabulary returns the fixed word list
func Vocabulary() []Pair {
	result := make([]Pair, len(vocabulary))
	copy(result, vocabulary)
	return result
}

// TranslationOf returns the expected answer for word
func TranslationOf(word string) (string, bool) {
	for _, p := range vocabulary {
		if p.Word == word {
			return p.Translation, true
		}
	}
	return "", false
}

// Result is the outcome of checking an answer
type Result struct {
	Correct bool
	Answer  string // The expected translation
}

// Game tracks the word currently asked and whether it was checked
type Game struct {
	rng     *rand.Rand
	current string
	checked bool
}

// New starts a game with a uniformly drawn first word
func New(rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.draw()
	return g
}

// Current returns the English word being asked
func (g *Game) Current() string {
	return g.current
}

// Checked reports whether the current word was checked
func (g *Game) Checked() bool {
	return g.checked
}

// Check compares answer with the expected translation of the current word.
// It does not advance the game.
func (g *Game) Check(answer string) Result {
	expected, _ := TranslationOf(g.current)
	g.checked = true
	return Result{
		Correct: Matches(answer, expected),
		Answer:  expected,
	}
}

// Next draws a new word. The draw is uniform over the whole list, so the
// previous word may come up again.
func (g *Game) Next() error {
	if !g.checked {
		return ErrNotChecked
	}
	g.draw()
	g.checked = false
	return nil
}

func (g *Game) draw() {
	g.current = vocabulary[g.rng.Intn(len(vocabulary))].Word
}

// Matches compares an answer with the expected translation, ignoring
// surrounding whitespace and case
func Matches(answer, expected string) bool {
	lower := cases.Lower(language.Und)
	return lower.String(strings.TrimSpace(answer)) == lower.String(expected)
}
