package domain

// SongRecord is an immutable song from the library. Records are owned
// by the library store and shared read-only across the pipeline.
type SongRecord struct {
	ID     string
	Number *int
	Title  string
	Lyrics string
}

// Query is one parsed target-list line. At least one of Number and
// Title is set; Raw always keeps the original trimmed line.
type Query struct {
	Raw    string
	Number *int
	Title  string
}
