package models

// ResolutionKind identifies which tier produced a chatbot answer.
type ResolutionKind string

// Resolution kinds
const (
	KindCached        ResolutionKind = "cached"
	KindPredefined    ResolutionKind = "predefined"
	KindTabularLookup ResolutionKind = "tabular_lookup"
	KindFallback      ResolutionKind = "fallback"
	KindError         ResolutionKind = "error"
)

// Source labels
const (
	SourceKnowledgeBase = "Built-in knowledge base"
	SourceNone          = "none"
)

// ResolutionResult is the answer to a single chatbot query.
type ResolutionResult struct {
	Text         string         `json:"response"`
	Kind         ResolutionKind `json:"type"`
	Source       string         `json:"sources"`
	Confidence   float64        `json:"confidence"`
	MatchedTopic string         `json:"matched_topic,omitempty"`
	ElapsedMS    float64        `json:"processing_time_ms"`
	Cached       bool           `json:"cached,omitempty"`
}

// ResolverStatistics is read-only introspection of the chatbot.
type ResolverStatistics struct {
	TopicCount    int      `json:"total_topics"`
	CatalogCount  int      `json:"csv_files_loaded"`
	CacheSize     int      `json:"cache_size"`
	TopicsCovered []string `json:"topics_covered"`
}
