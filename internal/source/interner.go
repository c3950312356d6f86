package source

import (
	"slices"
)

// StringID names one interned string. The zero value is the empty string.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates token text. Python source repeats the same short
// strings heavily (self, def, parentheses), so the lexer funnels identifier
// and operator text through one of these instead of allocating per token.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern stores s and returns its ID, reusing the existing entry if s was
// seen before.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}

	// Own copy so the entry never aliases a caller's buffer.
	cpy := string([]byte(s))
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Canonical returns the single shared string equal to b, interning it on
// first sight. The map lookup on string(b) does not allocate on the hit path.
func (in *Interner) Canonical(b []byte) string {
	if id, ok := in.index[string(b)]; ok {
		return in.byID[id]
	}
	return in.byID[in.Intern(string(b))]
}

// Lookup resolves an ID back to its string.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup resolves an ID and panics on an invalid one.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Has reports whether id names an interned string.
func (in *Interner) Has(id StringID) bool {
	return int(id) < len(in.byID)
}

// Len counts interned strings, the implicit empty string included.
func (in *Interner) Len() int {
	return len(in.byID)
}

// Snapshot copies out every interned string in ID order.
func (in *Interner) Snapshot() []string {
	return slices.Clone(in.byID)
}
