package translation

import "sync"

// TranslationCache memoizes results per request. Translations are a pure
// function of text and language pair once the model is loaded.
type TranslationCache struct {
	mu           sync.Mutex
	translations map[Request]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[Request]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(req Request, translation string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.translations[req] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(req Request) (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	translation, ok := tc.translations[req]
	return translation, ok
}

// Len returns the number of cached translations
func (tc *TranslationCache) Len() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.translations)
}
