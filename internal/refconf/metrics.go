package refconf

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds counters for reference-config loads. Optional: a Loader
// without metrics skips all counting.
type Metrics struct {
	LinesScanned      prometheus.Counter
	ReferencesLoaded  prometheus.Counter
	DuplicatesDropped prometheus.Counter
	MalformedLines    prometheus.Counter
}

// NewMetrics creates the load counters. Call Register to expose them.
func NewMetrics() *Metrics {
	return &Metrics{
		LinesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warden",
			Subsystem: "refconf",
			Name:      "lines_scanned_total",
			Help:      "Total number of input lines scanned during loads",
		}),
		ReferencesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warden",
			Subsystem: "refconf",
			Name:      "references_loaded_total",
			Help:      "Total number of reference definitions stored",
		}),
		DuplicatesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warden",
			Subsystem: "refconf",
			Name:      "duplicates_dropped_total",
			Help:      "Total number of duplicate system names dropped",
		}),
		MalformedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "warden",
			Subsystem: "refconf",
			Name:      "malformed_lines_total",
			Help:      "Total number of lines rejected by the directive grammar",
		}),
	}
}

// Register registers all counters with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.LinesScanned,
		m.ReferencesLoaded,
		m.DuplicatesDropped,
		m.MalformedLines,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
