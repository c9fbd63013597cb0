package refconf

// Store is the deduplicated table of reference definitions, keyed by
// canonical system name.
//
// INVARIANTS:
//   - Keys are canonical (lowercase) system names; identity is defined
//     over the key only, never the URL.
//   - Insert never replaces an existing entry (first write wins).
//   - No iteration order is guaranteed.
//
// Thread-safety model: a Store is mutated only by the load that
// populates it. After the load finishes it is read-only and safe for
// concurrent Lookup/Count calls. There is no mutation API beyond Insert.
type Store struct {
	refs map[string]*Reference
}

// NewStore creates an empty reference table.
func NewStore() *Store {
	return &Store{refs: make(map[string]*Reference)}
}

// Insert adds a reference definition under the canonical form of
// system. If the key already exists the call is a no-op and the new
// candidate is discarded. Returns true if an insertion occurred.
//
// A duplicate is not an error condition; callers wanting a diagnostic
// use the return value.
func (s *Store) Insert(system, url string) bool {
	key := CanonicalName(system)
	if _, exists := s.refs[key]; exists {
		return false
	}
	s.refs[key] = &Reference{System: key, URL: url}
	return true
}

// Lookup returns the entry stored under the canonical form of name.
// The comma-ok result distinguishes a missing key; the returned
// Reference is owned by the Store and must not be mutated.
func (s *Store) Lookup(name string) (*Reference, bool) {
	ref, ok := s.refs[CanonicalName(name)]
	return ref, ok
}

// Count returns the number of distinct canonical keys stored.
func (s *Store) Count() int {
	return len(s.refs)
}
