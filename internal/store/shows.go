package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"anisub/internal/binder"
)

// UpsertCanonicalShow inserts or refreshes a canonical show from the
// schedule feed. The derived has-data-source flag is preserved on update;
// only the binder recomputes it.
func (s *Store) UpsertCanonicalShow(ctx context.Context, show *binder.CanonicalShow) error {
	if err := show.UpdateWeekday.Validate(); err != nil {
		return err
	}
	return s.execWithRetry(ctx, `
		INSERT INTO shows (id, name, update_weekday, status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			update_weekday = excluded.update_weekday,
			status = excluded.status`,
		show.ID, show.Name, int(show.UpdateWeekday), string(show.Status))
}

// ListCanonicalShows returns every canonical show ordered by id.
func (s *Store) ListCanonicalShows(ctx context.Context) ([]*binder.CanonicalShow, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, update_weekday, status, has_data_source FROM shows ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var shows []*binder.CanonicalShow
	for rows.Next() {
		var (
			show    binder.CanonicalShow
			weekday int
			status  string
			flag    int
		)
		if err := rows.Scan(&show.ID, &show.Name, &weekday, &status, &flag); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		show.UpdateWeekday = binder.Weekday(weekday)
		if err := show.UpdateWeekday.Validate(); err != nil {
			return nil, fmt.Errorf("show %d: %w", show.ID, err)
		}
		show.Status = binder.Status(status)
		show.HasDataSource = flag != 0
		shows = append(shows, &show)
	}
	return shows, rows.Err()
}

// GetCanonicalShow returns one show by id.
func (s *Store) GetCanonicalShow(ctx context.Context, id int64) (*binder.CanonicalShow, error) {
	ctx = ensureContext(ctx)
	var (
		show    binder.CanonicalShow
		weekday int
		status  string
		flag    int
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, update_weekday, status, has_data_source FROM shows WHERE id = ?", id).
		Scan(&show.ID, &show.Name, &weekday, &status, &flag)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("show %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}
	show.UpdateWeekday = binder.Weekday(weekday)
	if err := show.UpdateWeekday.Validate(); err != nil {
		return nil, fmt.Errorf("show %d: %w", show.ID, err)
	}
	show.Status = binder.Status(status)
	show.HasDataSource = flag != 0
	return &show, nil
}

// SetHasDataSource persists a recomputed flag value.
func (s *Store) SetHasDataSource(ctx context.Context, id int64, flag bool) error {
	value := 0
	if flag {
		value = 1
	}
	return s.execWithRetry(ctx, "UPDATE shows SET has_data_source = ? WHERE id = ?", value, id)
}

// UpsertSourceShow inserts or refreshes a per-source show record keyed by
// (source_id, keyword). A canonical binding already present in the database
// is never cleared by a re-scrape.
func (s *Store) UpsertSourceShow(ctx context.Context, show *binder.PerSourceShow) error {
	if err := show.UpdateWeekday.Validate(); err != nil {
		return err
	}
	groups, err := marshalStrings(show.SubtitleGroups)
	if err != nil {
		return err
	}
	return s.execWithRetry(ctx, `
		INSERT INTO source_shows (id, source_id, keyword, name, cover, update_weekday, subtitle_groups, canonical_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (source_id, keyword) DO UPDATE SET
			name = excluded.name,
			cover = excluded.cover,
			update_weekday = excluded.update_weekday,
			subtitle_groups = excluded.subtitle_groups,
			canonical_id = COALESCE(source_shows.canonical_id, excluded.canonical_id)`,
		uuid.NewString(), show.SourceID, show.Keyword, show.Name, show.Cover,
		int(show.UpdateWeekday), groups, nullableInt64(show.CanonicalID))
}

// ListSourceShows returns every per-source show ordered by source and keyword.
func (s *Store) ListSourceShows(ctx context.Context) ([]*binder.PerSourceShow, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
		SELECT source_id, keyword, name, cover, update_weekday, subtitle_groups, canonical_id
		FROM source_shows ORDER BY source_id, keyword`)
	if err != nil {
		return nil, fmt.Errorf("list source shows: %w", err)
	}
	defer rows.Close()

	var shows []*binder.PerSourceShow
	for rows.Next() {
		var (
			show      binder.PerSourceShow
			weekday   int
			groups    string
			canonical sql.NullInt64
		)
		if err := rows.Scan(&show.SourceID, &show.Keyword, &show.Name, &show.Cover, &weekday, &groups, &canonical); err != nil {
			return nil, fmt.Errorf("scan source show: %w", err)
		}
		show.UpdateWeekday = binder.Weekday(weekday)
		if err := show.UpdateWeekday.Validate(); err != nil {
			return nil, fmt.Errorf("source show %s/%s: %w", show.SourceID, show.Keyword, err)
		}
		if show.SubtitleGroups, err = unmarshalStrings(groups); err != nil {
			return nil, fmt.Errorf("source show %s/%s: %w", show.SourceID, show.Keyword, err)
		}
		show.CanonicalID = fromNullableInt64(canonical)
		shows = append(shows, &show)
	}
	return shows, rows.Err()
}

// SaveBinding persists a canonical id produced by the binder.
func (s *Store) SaveBinding(ctx context.Context, sourceID, keyword string, canonicalID int64) error {
	return s.execWithRetry(ctx,
		"UPDATE source_shows SET canonical_id = ? WHERE source_id = ? AND keyword = ?",
		canonicalID, sourceID, keyword)
}
