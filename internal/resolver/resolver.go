// Package resolver answers chatbot queries by consulting, in order, the
// response cache, the knowledge base, the tabular catalogs and finally a
// fixed help message.
package resolver

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"macromate/internal/knowledge"
	"macromate/internal/models"
	"macromate/internal/validation"
)

const tracerName = "macromate.resolver"

// Fixed answers.
const (
	EmptyQueryMessage = "Please ask me a fitness-related question!"

	FallbackMessage = `I don’t have a specific answer to that question yet, but I’m trained to provide information on the following topics:

Workouts:
• Beginner workout plans
• Home workouts (no equipment)
• Muscle building programs

Nutrition:
• High protein foods
• Meal planning
• Weight loss diet tips

Cardio:
• Best cardio exercises
• Fat loss strategies

General Fitness:
• Water intake guidelines
• Rest and recovery
• Supplements guide

Try asking: "Give me a beginner workout plan" or "What foods are high in protein?"
`
)

// TabularConfidence is the confidence reported for catalog matches.
const TabularConfidence = 0.80

var (
	ErrNilKnowledgeBase = errors.New("resolver requires a knowledge base")
	ErrNilCache         = errors.New("resolver requires a cache")
)

// Cache stores knowledge-base answers by normalized query.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (models.ResolutionResult, bool)
	Add(key string, value models.ResolutionResult)
	Len() int
}

// TabularSearcher finds the first catalog row matching a normalized query.
type TabularSearcher interface {
	Search(normalizedQuery string) (models.TabularMatch, bool)
	CatalogCount() int
}

// Clock supplies the current time for elapsed-time measurement.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Resolver turns a free-text query into a ResolutionResult.
// It is safe for concurrent use.
type Resolver struct {
	kb     *knowledge.KnowledgeBase
	search TabularSearcher
	cache  Cache
	clock  Clock
}

// New builds a Resolver. search may be nil, in which case the tabular tier is
// skipped. A nil clock uses the system clock.
func New(kb *knowledge.KnowledgeBase, search TabularSearcher, cache Cache, clock Clock) (*Resolver, error) {
	if kb == nil {
		return nil, ErrNilKnowledgeBase
	}
	if cache == nil {
		return nil, ErrNilCache
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Resolver{kb: kb, search: search, cache: cache, clock: clock}, nil
}

// Resolve answers query. It never fails: an empty query produces a result of
// kind error and anything unmatched produces the fallback.
func (r *Resolver) Resolve(ctx context.Context, query string) models.ResolutionResult {
	_, span := otel.Tracer(tracerName).Start(ctx, "resolver.Resolver.Resolve",
		trace.WithAttributes(attribute.Int("query_length", len(query))),
	)
	defer span.End()

	res := r.resolve(query)

	span.SetAttributes(
		attribute.String("kind", string(res.Kind)),
		attribute.Bool("cached", res.Cached),
		attribute.Float64("confidence", res.Confidence),
	)
	if res.MatchedTopic != "" {
		span.SetAttributes(attribute.String("matched_topic", res.MatchedTopic))
	}
	observe(res)
	return res
}

func (r *Resolver) resolve(query string) models.ResolutionResult {
	normalized := validation.NormalizeQuery(query)
	if normalized == "" {
		return models.ResolutionResult{
			Text:   EmptyQueryMessage,
			Kind:   models.KindError,
			Source: models.SourceNone,
		}
	}

	start := r.clock.Now()

	if cached, ok := r.cache.Get(normalized); ok {
		cached.ElapsedMS = r.since(start)
		cached.Cached = true
		return cached
	}

	if topic, ok := r.kb.Lookup(normalized); ok {
		res := models.ResolutionResult{
			Text:         topic.Response,
			Kind:         models.KindPredefined,
			Source:       models.SourceKnowledgeBase,
			Confidence:   topic.Confidence,
			MatchedTopic: topic.ID,
		}
		r.cache.Add(normalized, res)
		res.ElapsedMS = r.since(start)
		return res
	}

	if r.search != nil {
		if match, ok := r.search.Search(normalized); ok {
			return models.ResolutionResult{
				Text:       match.Answer,
				Kind:       models.KindTabularLookup,
				Source:     match.Source,
				Confidence: TabularConfidence,
				ElapsedMS:  r.since(start),
			}
		}
	}

	return models.ResolutionResult{
		Text:       FallbackMessage,
		Kind:       models.KindFallback,
		Source:     models.SourceNone,
		Confidence: 0,
		ElapsedMS:  r.since(start),
	}
}

func (r *Resolver) since(start time.Time) float64 {
	return float64(r.clock.Now().Sub(start)) / float64(time.Millisecond)
}

// Statistics reports the resolver's configuration and cache occupancy.
func (r *Resolver) Statistics() models.ResolverStatistics {
	catalogs := 0
	if r.search != nil {
		catalogs = r.search.CatalogCount()
	}
	return models.ResolverStatistics{
		TopicCount:    r.kb.Len(),
		CatalogCount:  catalogs,
		CacheSize:     r.cache.Len(),
		TopicsCovered: r.kb.IDs(),
	}
}
