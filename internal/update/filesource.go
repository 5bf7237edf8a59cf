package update

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"anisub/internal/binder"
	"anisub/internal/episode"
)

// FileSource serves show and episode records from a JSON feed file. It is
// the offline counterpart of a site scraper: an external process drops the
// scraped data in a file and the update run consumes it.
type FileSource struct {
	id       string
	shows    []*binder.PerSourceShow
	episodes map[string][]episode.Episode
}

type feedDocument struct {
	Source string     `json:"source"`
	Shows  []feedShow `json:"shows"`
}

type feedShow struct {
	Name           string            `json:"name"`
	Keyword        string            `json:"keyword"`
	Cover          string            `json:"cover"`
	UpdateWeekday  int               `json:"update_weekday"`
	SubtitleGroups []string          `json:"subtitle_groups"`
	Episodes       []episode.Episode `json:"episodes"`
}

// LoadFeed parses a feed file. Records with an out-of-range weekday fail
// the load; that is scraper corruption, not user error.
func LoadFeed(path string) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	var doc feedDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", path, err)
	}
	if doc.Source == "" {
		return nil, fmt.Errorf("feed %s: missing source id", path)
	}

	src := &FileSource{
		id:       doc.Source,
		episodes: make(map[string][]episode.Episode, len(doc.Shows)),
	}
	for _, fs := range doc.Shows {
		show, err := binder.NewPerSourceShow(fs.Name, fs.Keyword, doc.Source, binder.Weekday(fs.UpdateWeekday))
		if err != nil {
			return nil, fmt.Errorf("feed %s: show %q: %w", path, fs.Name, err)
		}
		show.Cover = fs.Cover
		show.SubtitleGroups = fs.SubtitleGroups
		src.shows = append(src.shows, show)
		src.episodes[fs.Keyword] = fs.Episodes
	}
	return src, nil
}

func (f *FileSource) ID() string { return f.id }

func (f *FileSource) Shows(context.Context) ([]*binder.PerSourceShow, error) {
	return f.shows, nil
}

func (f *FileSource) Episodes(_ context.Context, keyword string) ([]episode.Episode, error) {
	return f.episodes[keyword], nil
}
