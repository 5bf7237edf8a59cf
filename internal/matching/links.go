package matching

// LinkKind tags a manual override pair.
type LinkKind string

const (
	// KindLink forces two names to be treated as the same show.
	KindLink LinkKind = "link"
	// KindUnlink forces two names apart no matter how similar they look.
	KindUnlink LinkKind = "unlink"
)

type linkEntry struct {
	a, b string
	kind LinkKind
}

// LinkTable holds manual link/unlink overrides. Pairs are unordered and at
// most one tag is active per pair: putting a link removes a prior unlink for
// the same pair and vice versa. Names are stored raw; override matching is
// intentionally more permissive than the normalized automatic heuristics.
type LinkTable struct {
	entries []linkEntry
}

// NewLinkTable returns an empty override table.
func NewLinkTable() *LinkTable {
	return &LinkTable{}
}

// Put records an override for the unordered pair {a, b}, replacing any
// existing tag for the same pair.
func (t *LinkTable) Put(a, b string, kind LinkKind) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		if samePair(e.a, e.b, a, b) {
			continue
		}
		kept = append(kept, e)
	}
	t.entries = append(kept, linkEntry{a: a, b: b, kind: kind})
}

// Len reports the number of active overrides.
func (t *LinkTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Each visits every active override.
func (t *LinkTable) Each(fn func(a, b string, kind LinkKind)) {
	if t == nil {
		return
	}
	for _, e := range t.entries {
		fn(e.a, e.b, e.kind)
	}
}

// lookup returns the active tag covering the pair {name1, name2}, if any.
// The scan runs in two phases, both kept from the historical behavior: a
// membership check filters candidate entries, then exact set equality makes
// the decision.
func (t *LinkTable) lookup(name1, name2 string) (LinkKind, bool) {
	if t == nil {
		return "", false
	}
	for _, e := range t.entries {
		// Candidate filter: both of the entry's names must occur among
		// the queried names.
		in := func(s string) bool { return s == name1 || s == name2 }
		if !in(e.a) || !in(e.b) {
			continue
		}
		if samePair(e.a, e.b, name1, name2) {
			return e.kind, true
		}
	}
	return "", false
}

// samePair compares two unordered pairs for set equality.
func samePair(a1, b1, a2, b2 string) bool {
	if a1 > b1 {
		a1, b1 = b1, a1
	}
	if a2 > b2 {
		a2, b2 = b2, a2
	}
	return a1 == a2 && b1 == b2
}
