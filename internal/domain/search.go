package domain

// SearchResult is one row of the admin command palette's aggregated search.
// Href is the portal path the palette navigates to on enter.
type SearchResult struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Href     string `json:"href"`
}
