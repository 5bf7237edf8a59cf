package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"anisub/internal/filter"
)

// Subscription ties a canonical show to the filter settings used when
// gathering its episodes.
type Subscription struct {
	ID     string
	ShowID int64
	Filter filter.Spec
}

// AddSubscription subscribes to a show. Subscribing twice to the same show
// replaces the previous filter settings.
func (s *Store) AddSubscription(ctx context.Context, showID int64, spec filter.Spec) error {
	include, err := marshalStrings(spec.Include)
	if err != nil {
		return err
	}
	exclude, err := marshalStrings(spec.Exclude)
	if err != nil {
		return err
	}
	sources, err := marshalStrings(spec.Sources)
	if err != nil {
		return err
	}
	groups, err := marshalStrings(spec.SubtitleGroups)
	if err != nil {
		return err
	}
	return s.execWithRetry(ctx, `
		INSERT INTO subscriptions (id, show_id, include, exclude, regex, data_sources, subtitle_groups)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (show_id) DO UPDATE SET
			include = excluded.include,
			exclude = excluded.exclude,
			regex = excluded.regex,
			data_sources = excluded.data_sources,
			subtitle_groups = excluded.subtitle_groups`,
		uuid.NewString(), showID, include, exclude, spec.Regex, sources, groups)
}

// RemoveSubscription drops the subscription for a show.
func (s *Store) RemoveSubscription(ctx context.Context, showID int64) error {
	return s.execWithRetry(ctx, "DELETE FROM subscriptions WHERE show_id = ?", showID)
}

// GetSubscription returns the subscription for one show.
func (s *Store) GetSubscription(ctx context.Context, showID int64) (*Subscription, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `
		SELECT id, show_id, include, exclude, regex, data_sources, subtitle_groups
		FROM subscriptions WHERE show_id = ?`, showID)
	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subscription for show %d: %w", showID, ErrNotFound)
	}
	return sub, err
}

// ListSubscriptions returns every subscription ordered by show id.
func (s *Store) ListSubscriptions(ctx context.Context) ([]*Subscription, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, show_id, include, exclude, regex, data_sources, subtitle_groups
		FROM subscriptions ORDER BY show_id`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (*Subscription, error) {
	var (
		sub     Subscription
		include string
		exclude string
		sources string
		groups  string
	)
	if err := row.Scan(&sub.ID, &sub.ShowID, &include, &exclude, &sub.Filter.Regex, &sources, &groups); err != nil {
		return nil, err
	}
	var err error
	if sub.Filter.Include, err = unmarshalStrings(include); err != nil {
		return nil, fmt.Errorf("subscription %s: %w", sub.ID, err)
	}
	if sub.Filter.Exclude, err = unmarshalStrings(exclude); err != nil {
		return nil, fmt.Errorf("subscription %s: %w", sub.ID, err)
	}
	if sub.Filter.Sources, err = unmarshalStrings(sources); err != nil {
		return nil, fmt.Errorf("subscription %s: %w", sub.ID, err)
	}
	if sub.Filter.SubtitleGroups, err = unmarshalStrings(groups); err != nil {
		return nil, fmt.Errorf("subscription %s: %w", sub.ID, err)
	}
	return &sub, nil
}
