package translation

import (
	"regexp"
	"strings"
)

// Sentence markers, padding and __xx__ language tokens that seq2seq models
// emit around the decoded sentence
var edgeTokens = regexp.MustCompile(`^(\s*(</?s>|<pad>|__[a-z]{2,3}__))+|((</?s>|<pad>)\s*)+$`)

// Padding and unknown-word tokens can appear anywhere; one following space
// goes with them
var innerTokens = regexp.MustCompile(`(<pad>|<unk>) ?`)

// StripSpecialTokens removes special tokens from decoded model output. The
// text between them, whitespace included, is kept as is apart from trimming
// the ends.
func StripSpecialTokens(s string) string {
	s = edgeTokens.ReplaceAllString(s, "")
	s = innerTokens.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Truncate limits s to at most max runes
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
