// Package languages holds the fixed set of languages offered for
// translation and maps display names to two-letter codes.
package languages

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnsupported is returned for names or codes outside the supported set
var ErrUnsupported = errors.New("unsupported language")

// Language is a selectable translation language
type Language struct {
	Name string // Display name shown in selects
	Code string // Two-letter ISO 639-1 code
}

// Order matches the select boxes; the first entry is the default.
var supported = []Language{
	{"English", "en"},
	{"French", "fr"},
	{"German", "de"},
	{"Spanish", "es"},
	{"Italian", "it"},
	{"Portuguese", "pt"},
	{"Dutch", "nl"},
	{"Russian", "ru"},
	{"Chinese (Simplified)", "zh"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
	{"Hindi", "hi"},
	{"Arabic", "ar"},
	{"Turkish", "tr"},
	{"Swedish", "sv"},
	{"Greek", "el"},
	{"Polish", "pl"},
	{"Danish", "da"},
	{"Finnish", "fi"},
	{"Hebrew", "he"},
	{"Indonesian", "id"},
	{"Thai", "th"},
	{"Vietnamese", "vi"},
}

// All returns the supported languages in display order
func All() []Language {
	result := make([]Language, len(supported))
	copy(result, supported)
	return result
}

// Names returns the display names in display order
func Names() []string {
	names := make([]string, len(supported))
	for i, l := range supported {
		names[i] = l.Name
	}
	return names
}

// IsSupported reports whether code is one of the supported two-letter codes
func IsSupported(code string) bool {
	_, ok := byCode(code)
	return ok
}

// Resolve looks up a language by display name or code, case-insensitively
func Resolve(nameOrCode string) (Language, error) {
	key := strings.TrimSpace(nameOrCode)
	for _, l := range supported {
		if strings.EqualFold(l.Name, key) || strings.EqualFold(l.Code, key) {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnsupported, nameOrCode)
}

// NameFor returns the display name for a supported code, or the code itself
func NameFor(code string) string {
	if l, ok := byCode(code); ok {
		return l.Name
	}
	return code
}

// Tag returns the BCP 47 tag for a supported code
func Tag(code string) (language.Tag, error) {
	if !IsSupported(code) {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupported, code)
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language code %q: %w", code, err)
	}
	tag, err := language.Compose(base)
	if err != nil {
		return language.Und, err
	}
	return tag, nil
}

// Autonym returns the language's own name for itself, e.g. "français" for fr
func Autonym(code string) string {
	tag, err := Tag(code)
	if err != nil {
		return code
	}
	return display.Self.Name(tag)
}

func byCode(code string) (Language, bool) {
	for _, l := range supported {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
