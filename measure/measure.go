// Package measure classifies the measure words that can appear in a
// Chef ingredient-list line as dry or liquid.
package measure

import (
	"strings"

	"github.com/bcicen/go-units"
)

// Kind is the classification of a measure word.
type Kind int

const (
	Dry Kind = iota
	Liquid
)

// dryWords and liquidWords are the closed vocabulary spec.md names
// explicitly ("g", "kg", "pinch(es)", "cup(s)" / "ml", "l", "dash(es)"),
// plus "teaspoon(s)" and "tablespoon(s)" on the dry side. This table is authoritative: it is always consulted before the
// go-units fallback.
var dryWords = map[string]bool{
	"g":           true,
	"kg":          true,
	"pinch":       true,
	"pinches":     true,
	"cup":         true,
	"cups":        true,
	"teaspoon":    true,
	"teaspoons":   true,
	"tablespoon":  true,
	"tablespoons": true,
}

var liquidWords = map[string]bool{
	"ml":     true,
	"l":      true,
	"dash":   true,
	"dashes": true,
}

// measureTypeWords are the "heaped"/"level" modifiers; both force dry.
var measureTypeWords = map[string]bool{
	"heaped": true,
	"level":  true,
}

// IsMeasureType reports whether word (already lowercased) is a
// measure-type modifier ("heaped"/"level").
func IsMeasureType(word string) bool {
	return measureTypeWords[word]
}

// Classify looks word (already lowercased) up against the closed table
// first, then falls back to github.com/bcicen/go-units, classifying by
// the unit's mass (dry) vs volume (liquid) quantity. ok is false when
// word is not recognized as a measure word by either source, in which
// case the caller should treat word as part of the ingredient name
// instead.
func Classify(word string) (kind Kind, ok bool) {
	if dryWords[word] {
		return Dry, true
	}
	if liquidWords[word] {
		return Liquid, true
	}

	u, err := units.Find(word)
	if err != nil {
		return Dry, false
	}
	// go-units reports a unit's quantity as a string ("mass", "volume",
	// "temperature", ...) rather than a closed enum; compare against the
	// string form instead of named constants, since the exact exported
	// symbol for this isn't confirmed.
	switch strings.ToLower(string(u.Quantity)) {
	case "volume":
		return Liquid, true
	case "mass":
		return Dry, true
	default:
		return Dry, false
	}
}

// IsMeasureWord reports whether word (already lowercased) is recognized
// as a measure word by Classify, without needing its classification.
func IsMeasureWord(word string) bool {
	_, ok := Classify(word)
	return ok
}
