package runtime

import "fmt"

// Ingredient is a runtime scalar: a real value plus the liquid flag
// that controls its output formatting and its eligibility for
// AddAllStatement aggregation. Grounded on spec.md §3 and
// original_source/src/interpreter/ingredient.rs.
type Ingredient struct {
	Value  float64
	Liquid bool
}

// Clone returns a value copy, matching the "ingredient values are
// copied on push" memory model spec.md §5 describes.
func (i Ingredient) Clone() Ingredient {
	return i
}

// Char renders the ingredient as a single rune, the way Liquefy'd
// ingredients are emitted: the integer-truncated value interpreted as
// a Unicode code point, or the "<missingno>" placeholder if that isn't
// a valid one.
func (i Ingredient) Char() string {
	cp := int32(i.Value)
	if cp < 0 || !validRune(cp) {
		return "<missingno>"
	}
	return string(cp)
}

func validRune(r int32) bool {
	return r >= 0 && r <= 0x10FFFF && !(r >= 0xD800 && r <= 0xDFFF)
}

// String renders the ingredient per its own liquid/dry rule: a
// character for liquid ingredients, or its bare numeric value for dry
// ones.
func (i Ingredient) String() string {
	if i.Liquid {
		return i.Char()
	}
	return fmt.Sprintf("%v", i.Value)
}
