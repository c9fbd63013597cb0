package refconf

// Reference is a single stored reference definition.
//
// System is always in canonical (lowercase) form - construction goes
// through CanonicalName. URL is kept verbatim from the input line; it
// may be empty when a Reference is built purely as a lookup probe.
type Reference struct {
	System string `json:"system"`
	URL    string `json:"url,omitempty"`
}

// CanonicalName case-folds a system name into its table-key form.
//
// Folding is byte-wise ASCII: only 'A'..'Z' change. Multi-byte UTF-8
// sequences pass through untouched, which keeps key identity stable for
// files that predate any Unicode-awareness in the grammar.
func CanonicalName(system string) string {
	b := []byte(system)
	changed := false
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
			changed = true
		}
	}
	if !changed {
		return system
	}
	return string(b)
}
