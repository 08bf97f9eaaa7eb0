package songbase

// libraryFile mirrors the top level of a songbase library export.
type libraryFile struct {
	Songs []fileSong `json:"songs"`
	Books []fileBook `json:"books"`
}

// fileSong represents a single song record in the export.
type fileSong struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Lyrics string `json:"lyrics"`
}

// fileBook represents a hymnal section of the export. Songs maps song
// identifiers (as decimal strings) to the hymn number under which the
// song appears in that book.
type fileBook struct {
	Name  string            `json:"name"`
	Songs map[string]string `json:"songs"`
}
