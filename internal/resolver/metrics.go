package resolver

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"macromate/internal/models"
)

var (
	// resolutionsTotal counts resolved queries.
	// Labels: kind (predefined, tabular_lookup, fallback, error), cached (true, false)
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "macromate",
		Subsystem: "chatbot",
		Name:      "resolutions_total",
		Help:      "Total chatbot resolutions by kind and cache hit",
	}, []string{"kind", "cached"})

	resolutionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "macromate",
		Subsystem: "chatbot",
		Name:      "resolution_duration_milliseconds",
		Help:      "Time spent resolving a chatbot query",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	})
)

func observe(res models.ResolutionResult) {
	resolutionsTotal.WithLabelValues(string(res.Kind), strconv.FormatBool(res.Cached)).Inc()
	if res.Kind != models.KindError {
		resolutionDuration.Observe(res.ElapsedMS)
	}
}
