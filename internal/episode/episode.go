package episode

// Episode is one scraped release candidate. Records are produced by a data
// source scraper and are immutable afterwards except for ShowName, which is
// attached once the owning show is known.
type Episode struct {
	Title         string `json:"title"`
	Download      string `json:"download"`
	Episode       int    `json:"episode"`
	Time          int64  `json:"time"`
	SubtitleGroup string `json:"subtitle_group"`
	Source        string `json:"source_name"`
	ShowName      string `json:"show_name,omitempty"`
}
