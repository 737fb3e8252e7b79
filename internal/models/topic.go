package models

// Topic is a knowledge base entry answered verbatim when one of its triggers
// appears in a query.
type Topic struct {
	ID         string   `yaml:"id" json:"id"`
	Triggers   []string `yaml:"triggers" json:"triggers"`
	Response   string   `yaml:"response" json:"response"`
	Confidence float64  `yaml:"confidence" json:"confidence"`
}
