package quote

// Stats holds basic collection counts.
type Stats struct {
	Total      int
	Categories int
	Authors    int
	Rated      int
}

// Collect computes statistics over the given quotes.
func Collect(quotes []Quote) Stats {
	stats := Stats{
		Total:      len(quotes),
		Categories: len(CategoryNames(quotes)),
		Authors:    len(AuthorNames(quotes)),
	}
	for _, q := range quotes {
		if q.IsRated() {
			stats.Rated++
		}
	}
	return stats
}
