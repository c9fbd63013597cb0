// Package refconf loads reference definitions into an in-memory table
// for the signature engine.
//
// A reference definition names an external lookup system (cve, bugtraq,
// a vendor knowledge base) and the URL prefix used to render references
// attached to signatures. Definitions live in a plain-text file, one
// directive per line:
//
//	config reference: <system> <url>
//
// Blank lines and #-comments are skipped. The system identifier must
// start with a letter and may contain letters, digits, hyphen and
// underscore; the url is free-form text.
//
// KEY PROPERTIES:
//
// Canonical keys:
// System names are case-folded (byte-wise ASCII) before storage and
// lookup. "CVE", "cve" and "Cve" address the same entry.
//
// First write wins:
// A duplicate system name is dropped, never merged or overwritten. The
// first occurrence in file order is the one retained.
//
// Tolerant parsing:
// A line that does not match the directive grammar is logged and
// skipped; it never aborts the load. Only failure to acquire the input
// (or a read error on it) is fatal, and it is returned to the caller as
// a typed LoadError rather than terminating the process.
//
// The Store is mutated only during a load. Once Load returns, the table
// is read-only and safe for concurrent lookups. A Loader is single-use:
// construct a fresh one per load.
package refconf
