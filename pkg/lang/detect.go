package lang

import (
	"github.com/abadojack/whatlanggo"
)

// Detect guesses the language of text and returns its identifier.
// ok is false when detection is unreliable or the language has no identifier.
func Detect(text string) (name string, ok bool) {
	if text == "" {
		return "", false
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", false
	}
	name, ok = iso6391[info.Lang.Iso6391()]
	return name, ok
}
