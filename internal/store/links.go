package store

import (
	"context"
	"fmt"

	"anisub/internal/matching"
)

// PutLink records a manual override for the unordered pair {a, b}. The pair
// is stored sorted so link and unlink for the same two names share one row.
func (s *Store) PutLink(ctx context.Context, a, b string, kind matching.LinkKind) error {
	if a > b {
		a, b = b, a
	}
	return s.execWithRetry(ctx, `
		INSERT INTO links (name_a, name_b, kind)
		VALUES (?, ?, ?)
		ON CONFLICT (name_a, name_b) DO UPDATE SET kind = excluded.kind`,
		a, b, string(kind))
}

// DeleteLink removes any override for the unordered pair {a, b}.
func (s *Store) DeleteLink(ctx context.Context, a, b string) error {
	if a > b {
		a, b = b, a
	}
	return s.execWithRetry(ctx, "DELETE FROM links WHERE name_a = ? AND name_b = ?", a, b)
}

// LoadLinks materializes the full override table for a matching pass.
func (s *Store) LoadLinks(ctx context.Context) (*matching.LinkTable, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT name_a, name_b, kind FROM links ORDER BY name_a, name_b")
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}
	defer rows.Close()

	table := matching.NewLinkTable()
	for rows.Next() {
		var a, b, kind string
		if err := rows.Scan(&a, &b, &kind); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		table.Put(a, b, matching.LinkKind(kind))
	}
	return table, rows.Err()
}
