package runtime

import (
	"strings"
	"testing"
)

func TestScopedMapReadThrough(t *testing.T) {
	parent := NewScopedMap[int, []Ingredient](nil)
	parent.Set(1, []Ingredient{{Value: 42}})

	child := NewScopedMap[int, []Ingredient](parent)
	v, ok := child.Get(1)
	if !ok || len(v) != 1 || v[0].Value != 42 {
		t.Fatalf("expected read-through to parent, got %+v ok=%v", v, ok)
	}
	if keys := child.LocalKeys(); len(keys) != 0 {
		t.Fatalf("Get must not create a local binding, got keys %v", keys)
	}
}

func TestScopedMapCopyOnWrite(t *testing.T) {
	parent := NewScopedMap[int, []Ingredient](nil)
	parent.Set(1, []Ingredient{{Value: 1}})

	child := NewScopedMap[int, []Ingredient](parent)
	local := child.Ensure(1, cloneBowl, func() []Ingredient { return nil })
	local = append(local, Ingredient{Value: 2})
	child.Set(1, local)

	parentVal, _ := parent.Get(1)
	if len(parentVal) != 1 {
		t.Fatalf("parent must be unaffected by child write, got %+v", parentVal)
	}
	childVal, _ := child.Get(1)
	if len(childVal) != 2 {
		t.Fatalf("expected child's local write to stick, got %+v", childVal)
	}
}

func cloneBowl(b []Ingredient) []Ingredient {
	cp := make([]Ingredient, len(b))
	copy(cp, b)
	return cp
}

func TestIngredientChar(t *testing.T) {
	i := Ingredient{Value: 72, Liquid: true}
	if i.Char() != "H" {
		t.Fatalf("expected \"H\", got %q", i.Char())
	}
}

func TestIngredientCharMissingno(t *testing.T) {
	i := Ingredient{Value: -1, Liquid: true}
	if i.Char() != "<missingno>" {
		t.Fatalf("expected <missingno>, got %q", i.Char())
	}
}

func TestReadNumber(t *testing.T) {
	buf := NewInputBuffer(strings.NewReader("72.5 done\n"))
	if v := buf.ReadNumber(); v != 72.5 {
		t.Fatalf("expected 72.5, got %v", v)
	}
}

func TestReadNumberNegative(t *testing.T) {
	buf := NewInputBuffer(strings.NewReader("-3\n"))
	if v := buf.ReadNumber(); v != -3 {
		t.Fatalf("expected -3, got %v", v)
	}
}

func TestReadNumberSignResetsOnSkippedChar(t *testing.T) {
	// A "-" followed by a non-digit is not a sign for the number that
	// eventually follows: the skip resets it.
	tests := []string{"- 5\n", "a-b5\n"}
	for _, in := range tests {
		buf := NewInputBuffer(strings.NewReader(in))
		if v := buf.ReadNumber(); v != 5 {
			t.Errorf("ReadNumber(%q) = %v, want 5", in, v)
		}
	}
}

func TestReadChar(t *testing.T) {
	buf := NewInputBuffer(strings.NewReader("ab"))
	r, ok := buf.ReadChar()
	if !ok || r != 'a' {
		t.Fatalf("expected 'a', got %q ok=%v", r, ok)
	}
}
