package search

// Config controls ranking and excerpt rendering at query time (mirrors
// stork's SearchConfig). Defaults match the reference implementation.
type Config struct {
	ExcerptLength    int
	NumberOfResults  int
	NumberOfExcerpts int
}

// DefaultConfig returns stork's published defaults: 150-byte excerpts, the
// top 10 documents, 5 excerpts per document.
func DefaultConfig() Config {
	return Config{
		ExcerptLength:    150,
		NumberOfResults:  10,
		NumberOfExcerpts: 5,
	}
}
