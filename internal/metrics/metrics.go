package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"macromate/internal/models"
)

var (
	queryLookupDesc = prometheus.NewDesc(
		"macromate_query_lookups_total",
		"Total chatbot query lookups by label and outcome",
		[]string{"label", "outcome"},
		nil,
	)
)

// LookupStore persists lookup counts.
type LookupStore interface {
	IncrementQueryLookups(ctx context.Context, deltas []models.QueryLookupDelta) error
	GetAllQueryLookups(ctx context.Context) ([]models.QueryLookup, error)
}

// QueryCollector is a custom Prometheus collector that reads query lookup
// counts from the store on each scrape.
type QueryCollector struct {
	store LookupStore
}

// NewQueryCollector creates a collector backed by store.
func NewQueryCollector(store LookupStore) *QueryCollector {
	return &QueryCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *QueryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queryLookupDesc
}

// Collect queries the store for all lookups and emits them as counters.
func (c *QueryCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllQueryLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect query lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			queryLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Label,
			l.Outcome,
		)
	}
}

type lookupKey struct {
	label   string
	outcome string
}

// Recorder buffers lookup counts in memory until Flush writes them out.
type Recorder struct {
	store LookupStore

	mu      sync.Mutex
	pending map[lookupKey]int64
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store LookupStore) *Recorder {
	return &Recorder{store: store, pending: make(map[lookupKey]int64)}
}

// Record counts one lookup.
func (r *Recorder) Record(label, outcome string) {
	r.mu.Lock()
	r.pending[lookupKey{label, outcome}]++
	r.mu.Unlock()
}

// Pending returns the number of distinct buffered label/outcome pairs.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Flush writes buffered counts to the store. On failure the counts are
// merged back so the next flush retries them.
func (r *Recorder) Flush(ctx context.Context) error {
	r.mu.Lock()
	if len(r.pending) == 0 {
		r.mu.Unlock()
		return nil
	}
	batch := r.pending
	r.pending = make(map[lookupKey]int64)
	r.mu.Unlock()

	deltas := make([]models.QueryLookupDelta, 0, len(batch))
	for k, n := range batch {
		deltas = append(deltas, models.QueryLookupDelta{Label: k.label, Outcome: k.outcome, Count: n})
	}

	if err := r.store.IncrementQueryLookups(ctx, deltas); err != nil {
		r.mu.Lock()
		for k, n := range batch {
			r.pending[k] += n
		}
		r.mu.Unlock()
		return err
	}
	return nil
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup. Returns the recorder for the flush job.
func Init(store LookupStore) *Recorder {
	recorderOnce.Do(func() {
		recorder = NewRecorder(store)
		prometheus.MustRegister(NewQueryCollector(store))
	})
	return recorder
}

// RecordQueryLookup records a resolution outcome. Labels are topic ids,
// catalog names or the resolution kind, never raw query text. It is a no-op
// until Init is called.
func RecordQueryLookup(label, outcome string) {
	if recorder == nil {
		return
	}
	recorder.Record(label, outcome)
}

// LookupLabel chooses the statistics label and outcome for a result.
func LookupLabel(res models.ResolutionResult) (label, outcome string) {
	outcome = string(res.Kind)
	if res.Cached {
		outcome = string(models.KindCached)
	}
	switch {
	case res.MatchedTopic != "":
		label = res.MatchedTopic
	case res.Kind == models.KindTabularLookup:
		label = res.Source
	default:
		label = string(res.Kind)
	}
	return label, outcome
}
