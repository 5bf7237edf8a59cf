package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"anisub/internal/episode"
)

// Download is one queued episode awaiting the download consumer.
type Download struct {
	ID       string
	ShowName string
	Title    string
	URL      string
	Episode  int
	QueuedAt time.Time
}

// EnqueueDownloads records filtered episodes for the download consumer.
// An episode number already queued for the same show is skipped, so repeated
// update runs do not duplicate work. It returns the number actually queued.
func (s *Store) EnqueueDownloads(ctx context.Context, showName string, episodes []episode.Episode) (int, error) {
	queued := 0
	for _, ep := range episodes {
		res, err := s.execResultWithRetry(ctx, `
			INSERT INTO downloads (id, show_name, title, url, episode, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (show_name, episode) DO NOTHING`,
			uuid.NewString(), showName, ep.Title, ep.Download, ep.Episode,
			time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return queued, fmt.Errorf("enqueue download %q: %w", ep.Title, err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected > 0 {
			queued++
		}
	}
	return queued, nil
}

// ListDownloads returns queued downloads, newest first.
func (s *Store) ListDownloads(ctx context.Context) ([]Download, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, show_name, title, url, episode, created_at
		FROM downloads ORDER BY created_at DESC, show_name, episode`)
	if err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}
	defer rows.Close()

	var downloads []Download
	for rows.Next() {
		var (
			d       Download
			created string
		)
		if err := rows.Scan(&d.ID, &d.ShowName, &d.Title, &d.URL, &d.Episode, &created); err != nil {
			return nil, fmt.Errorf("scan download: %w", err)
		}
		if d.QueuedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("download %s: parse created_at: %w", d.ID, err)
		}
		downloads = append(downloads, d)
	}
	return downloads, rows.Err()
}
