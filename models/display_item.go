package models

// DisplayItem is a single row of a launcher script-filter result.
type DisplayItem struct {
	Title     string         `json:"title"`
	Subtitle  string         `json:"subtitle"`
	Arg       string         `json:"arg"`
	Text      ItemText       `json:"text"`
	Variables map[string]any `json:"variables"`
}

type ItemText struct {
	Copy      string `json:"copy"`
	LargeType string `json:"largetype"`
}

// Document is the envelope the launcher reads from stdout.
type Document struct {
	Items []DisplayItem `json:"items"`
}
