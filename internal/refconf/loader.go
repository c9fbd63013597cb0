package refconf

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// DefaultPath is the compiled-in location of the reference definitions
// file, used when the host config provides no override.
const DefaultPath = "reference.config"

// MalformedLine records a non-blank, non-comment line that failed the
// directive grammar.
type MalformedLine struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Result summarizes one complete load pass.
type Result struct {
	LinesRead  int             `json:"lines_read"`
	Skipped    int             `json:"skipped"`
	Added      int             `json:"added"`
	Duplicates int             `json:"duplicates"`
	Malformed  []MalformedLine `json:"malformed,omitempty"`
}

// Loader runs one load of a reference definitions file into a Store.
//
// A Loader is single-use: it owns its input stream and match state for
// exactly one Load call. Construct a fresh Loader per load; this keeps
// repeated and concurrent loads free of shared state.
type Loader struct {
	path    string
	source  io.Reader
	logger  *slog.Logger
	metrics *Metrics
	loadID  string
	spent   bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPath sets the input file path. Ignored when a reader is injected.
func WithPath(path string) LoaderOption {
	return func(l *Loader) {
		l.path = path
	}
}

// WithReader injects the input stream directly, bypassing file
// acquisition. Used by tests to load from in-memory buffers.
func WithReader(r io.Reader) LoaderOption {
	return func(l *Loader) {
		l.source = r
		l.path = ""
	}
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithMetrics attaches load counters.
func WithMetrics(m *Metrics) LoaderOption {
	return func(l *Loader) {
		l.metrics = m
	}
}

// NewLoader creates a Loader reading from DefaultPath unless overridden
// by options. Each Loader carries a UUIDv7 load id that tags all its
// log records, correlating per-line diagnostics with the load summary.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		path:   DefaultPath,
		logger: slog.Default(),
		loadID: uuid.Must(uuid.NewV7()).String(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load populates store from the loader's input.
//
// Acquisition failure (file cannot be opened) and mid-parse read errors
// are fatal and returned as *LoadError; the caller decides whether to
// abort, retry another path, or continue with an empty table. Per-line
// grammar mismatches are logged, recorded in the Result, and skipped.
// Duplicate system names are dropped silently (debug log only), keeping
// the first occurrence in file order.
func (l *Loader) Load(store *Store) (*Result, error) {
	if l.spent {
		return nil, errors.New("refconf: Loader is single-use, create a new one per load")
	}
	l.spent = true

	input := l.source
	if input == nil {
		f, err := os.Open(l.path)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeOpenFailed, Path: l.path, Err: err}
		}
		defer f.Close()
		input = f
	}

	log := l.logger.With("load_id", l.loadID)
	res := &Result{}

	// bufio.Reader instead of bufio.Scanner: a line is never too long to
	// read, so an oversized line stays a per-line concern instead of
	// aborting the load.
	reader := bufio.NewReader(input)
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, &LoadError{Code: ErrCodeReadFailed, Path: l.path, Err: readErr}
		}
		if line != "" {
			lineNo++
			res.LinesRead++
			l.count(func(m *Metrics) { m.LinesScanned.Inc() })
			l.parseLine(store, res, log, line, lineNo)
		}
		if readErr == io.EOF {
			break
		}
	}

	log.Info("reference definitions loaded",
		"added", res.Added,
		"duplicates", res.Duplicates,
		"malformed", len(res.Malformed),
		"skipped", res.Skipped)
	return res, nil
}

// parseLine classifies and matches one raw line, updating store and res.
func (l *Loader) parseLine(store *Store, res *Result, log *slog.Logger, line string, lineNo int) {
	if isBlankOrComment(line) {
		res.Skipped++
		return
	}

	system, value, ok := matchDirective(line)
	if !ok {
		text := strings.TrimSpace(line)
		res.Malformed = append(res.Malformed, MalformedLine{
			Line: lineNo,
			Text: text,
		})
		l.count(func(m *Metrics) { m.MalformedLines.Inc() })
		log.Error("invalid reference definition",
			"path", l.path,
			"line", lineNo,
			"text", text)
		return
	}

	if store.Insert(system, value) {
		res.Added++
		l.count(func(m *Metrics) { m.ReferencesLoaded.Inc() })
	} else {
		res.Duplicates++
		l.count(func(m *Metrics) { m.DuplicatesDropped.Inc() })
		log.Debug("duplicate reference dropped",
			"system", CanonicalName(system),
			"line", lineNo)
	}
}

// count applies fn when metrics are attached.
func (l *Loader) count(fn func(*Metrics)) {
	if l.metrics != nil {
		fn(l.metrics)
	}
}
