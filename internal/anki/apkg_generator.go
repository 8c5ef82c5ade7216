package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/lingopad/internal"
)

// Anki 2.1 legacy collection schema (version 11)
const collectionSchema = `
CREATE TABLE col (id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
	scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL, usn integer NOT NULL,
	ls integer NOT NULL, conf text NOT NULL, models text NOT NULL, decks text NOT NULL,
	dconf text NOT NULL, tags text NOT NULL);
CREATE TABLE notes (id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
	mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL, flds text NOT NULL,
	sfld text NOT NULL, csum integer NOT NULL, flags integer NOT NULL, data text NOT NULL);
CREATE TABLE cards (id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
	ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL, type integer NOT NULL,
	queue integer NOT NULL, due integer NOT NULL, ivl integer NOT NULL, factor integer NOT NULL,
	reps integer NOT NULL, lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
	odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL);
CREATE TABLE revlog (id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
	ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL, factor integer NOT NULL,
	time integer NOT NULL, type integer NOT NULL);
CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL);
CREATE INDEX ix_notes_csum ON notes (csum);
CREATE INDEX ix_notes_usn ON notes (usn);
CREATE INDEX ix_cards_usn ON cards (usn);
CREATE INDEX ix_cards_nid ON cards (nid);
CREATE INDEX ix_cards_sched ON cards (did, queue, due);
CREATE INDEX ix_revlog_usn ON revlog (usn);
CREATE INDEX ix_revlog_cid ON revlog (cid);
`

const (
	collectionFile = "collection.anki2"
	mediaFile      = "media"

	// Joins note fields in the flds column
	fieldSeparator = "\x1f"

	defaultDeckID   = 1
	defaultConfigID = 1
)

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	fields   Fields
	cards    []Card
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string, fields Fields) *APKGGenerator {
	if fields == (Fields{}) {
		fields = DefaultFields()
	}
	now := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
		fields:   fields,
	}
}

// AddCard adds a card to the generator
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateAPKG writes the package to outputPath
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "lingopad_apkg_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, collectionFile)
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := writePackage(outputPath, dbPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}
	return nil
}

// createDatabase builds the collection database at dbPath
func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(collectionSchema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}
	if err := g.insertNotes(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}
	return nil
}

type collectionConf struct {
	ActiveDecks  []int64 `json:"activeDecks"`
	CurDeck      int64   `json:"curDeck"`
	CurModel     string  `json:"curModel"`
	NextPos      int     `json:"nextPos"`
	SchedVer     int     `json:"schedVer"`
	SortType     string  `json:"sortType"`
	CollapseTime int     `json:"collapseTime"`
}

type deck struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Desc      string `json:"desc"`
	Mod       int64  `json:"mod"`
	USN       int    `json:"usn"`
	Conf      int64  `json:"conf"`
	Dyn       int    `json:"dyn"`
	Collapsed bool   `json:"collapsed"`
	NewToday  [2]int `json:"newToday"`
	RevToday  [2]int `json:"revToday"`
	LrnToday  [2]int `json:"lrnToday"`
	TimeToday [2]int `json:"timeToday"`
}

type deckOptions struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Mod      int64        `json:"mod"`
	USN      int          `json:"usn"`
	Dyn      int          `json:"dyn"`
	MaxTaken int          `json:"maxTaken"`
	New      newOptions   `json:"new"`
	Lapse    lapseOptions `json:"lapse"`
	Rev      revOptions   `json:"rev"`
}

type newOptions struct {
	Delays        []int `json:"delays"`
	Ints          []int `json:"ints"`
	InitialFactor int   `json:"initialFactor"`
	PerDay        int   `json:"perDay"`
	Order         int   `json:"order"`
}

type lapseOptions struct {
	Delays     []int `json:"delays"`
	MinInt     int   `json:"minInt"`
	LeechFails int   `json:"leechFails"`
}

type revOptions struct {
	PerDay int     `json:"perDay"`
	Ease4  float64 `json:"ease4"`
	MaxIvl int     `json:"maxIvl"`
	IvlFct float64 `json:"ivlFct"`
}

type noteType struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Type      int             `json:"type"`
	Mod       int64           `json:"mod"`
	USN       int             `json:"usn"`
	SortField int             `json:"sortf"`
	DeckID    int64           `json:"did"`
	Fields    []noteField     `json:"flds"`
	Templates []cardTemplate  `json:"tmpls"`
	CSS       string          `json:"css"`
	LatexPre  string          `json:"latexPre"`
	LatexPost string          `json:"latexPost"`
	Req       [][]interface{} `json:"req"`
	Tags      []string        `json:"tags"`
}

type noteField struct {
	Name  string   `json:"name"`
	Ord   int      `json:"ord"`
	Font  string   `json:"font"`
	Size  int      `json:"size"`
	Media []string `json:"media"`
}

type cardTemplate struct {
	Name  string `json:"name"`
	Ord   int    `json:"ord"`
	QFmt  string `json:"qfmt"`
	AFmt  string `json:"afmt"`
	BQFmt string `json:"bqfmt"`
	BAFmt string `json:"bafmt"`
}

// insertCollection writes the single col row holding decks and note types
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()
	id := func(n int64) string { return strconv.FormatInt(n, 10) }

	decks := map[string]deck{
		id(defaultDeckID): newDeck(defaultDeckID, "Default", "", now),
		id(g.deckID):      newDeck(g.deckID, g.deckName, "Vocabulary exported by lingopad", now),
	}
	models := map[string]noteType{id(g.modelID): g.vocabularyNoteType(now)}
	dconf := map[string]deckOptions{id(defaultConfigID): defaultDeckOptions(now)}
	conf := collectionConf{
		ActiveDecks:  []int64{defaultDeckID},
		CurDeck:      defaultDeckID,
		CurModel:     id(g.modelID),
		NextPos:      1,
		SchedVer:     1,
		SortType:     "noteFld",
		CollapseTime: 1200,
	}

	columns := make([]string, 0, 4)
	for _, v := range []interface{}{conf, models, decks, dconf} {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		columns = append(columns, string(data))
	}

	_, err := db.Exec(`INSERT INTO col VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		now, now*1000, now*1000, columns[0], columns[1], columns[2], columns[3])
	return err
}

func newDeck(id int64, name, desc string, mod int64) deck {
	return deck{ID: id, Name: name, Desc: desc, Mod: mod, Conf: defaultConfigID}
}

func defaultDeckOptions(mod int64) deckOptions {
	return deckOptions{
		ID:       defaultConfigID,
		Name:     "Default",
		Mod:      mod,
		MaxTaken: 60,
		New:      newOptions{Delays: []int{1, 10}, Ints: []int{1, 4, 7}, InitialFactor: 2500, PerDay: 20, Order: 1},
		Lapse:    lapseOptions{Delays: []int{10}, MinInt: 1, LeechFails: 8},
		Rev:      revOptions{PerDay: 100, Ease4: 1.3, MaxIvl: 36500, IvlFct: 1},
	}
}

// vocabularyNoteType describes the vocabulary note: three fields, a forward and a
// reverse card
func (g *APKGGenerator) vocabularyNoteType(mod int64) noteType {
	return noteType{
		ID:     g.modelID,
		Name:   "lingopad Vocabulary (Basic + Reverse)",
		Mod:    mod,
		USN:    -1,
		DeckID: g.deckID,
		Fields: []noteField{
			{Name: g.fields.Front, Ord: 0, Font: "Arial", Size: 20, Media: []string{}},
			{Name: g.fields.Back, Ord: 1, Font: "Arial", Size: 20, Media: []string{}},
			{Name: "Notes", Ord: 2, Font: "Arial", Size: 16, Media: []string{}},
		},
		Templates: []cardTemplate{
			{Name: "Forward", Ord: 0, QFmt: questionTemplate(g.fields.Front), AFmt: answerTemplate(g.fields.Back)},
			{Name: "Reverse", Ord: 1, QFmt: questionTemplate(g.fields.Back), AFmt: answerTemplate(g.fields.Front)},
		},
		CSS:       cardCSS,
		LatexPre:  latexPre,
		LatexPost: `\end{document}`,
		Req:       [][]interface{}{{0, "all", []int{0}}, {1, "all", []int{1}}},
		Tags:      []string{},
	}
}

func questionTemplate(field string) string {
	return `<div class="prompt">{{` + field + `}}</div>`
}

func answerTemplate(field string) string {
	return `{{FrontSide}}
<hr id="answer">
<div class="answer">{{` + field + `}}</div>
{{#Notes}}<div class="notes">{{Notes}}</div>{{/Notes}}`
}

const latexPre = `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`

const cardCSS = `.card { font-family: Arial, sans-serif; font-size: 20px; text-align: center; color: #333; background: white; }
.prompt { font-size: 28px; font-weight: bold; color: #2c3e50; margin: 20px 0; }
.answer { font-size: 32px; font-weight: bold; color: #2471a3; margin: 20px 0; }
.notes { font-size: 16px; font-style: italic; color: #7f8c8d; }
hr#answer { border: 0; border-top: 1px solid #ecf0f1; }`

// insertNotes writes one note and two new cards per vocabulary card
func (g *APKGGenerator) insertNotes(db *sql.DB) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	noteStmt, err := tx.Prepare(`INSERT INTO notes VALUES (?, ?, ?, ?, -1, '', ?, ?, 0, 0, '')`)
	if err != nil {
		return err
	}
	defer noteStmt.Close()

	// type, queue and due mark the card as new, due at its queue position
	cardStmt, err := tx.Prepare(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`)
	if err != nil {
		return err
	}
	defer cardStmt.Close()

	base := time.Now().UnixMilli()
	mod := base / 1000
	for i, card := range g.cards {
		noteID := base + int64(i)*3
		flds := strings.Join([]string{card.Front, card.Back, card.Notes}, fieldSeparator)
		guid := "lp_" + internal.GenerateNoteID(card.Front)

		if _, err = noteStmt.Exec(noteID, guid, g.modelID, mod, flds, card.Front); err != nil {
			return fmt.Errorf("failed to insert note %q: %w", card.Front, err)
		}
		for ord := int64(0); ord < 2; ord++ {
			if _, err = cardStmt.Exec(noteID+ord+1, noteID, g.deckID, ord, mod, noteID+ord); err != nil {
				return fmt.Errorf("failed to insert card %d of note %q: %w", ord, card.Front, err)
			}
		}
	}

	return tx.Commit()
}

// writePackage zips the collection database and an empty media map into
// outputPath
func writePackage(outputPath, dbPath string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(out)
	if err := addZipFile(zw, collectionFile, dbPath); err != nil {
		out.Close()
		return err
	}

	// Decks carry no media, but Anki expects the mapping
	w, err := zw.Create(mediaFile)
	if err == nil {
		_, err = io.WriteString(w, "{}")
	}
	if err != nil {
		out.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func addZipFile(zw *zip.Writer, name, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
