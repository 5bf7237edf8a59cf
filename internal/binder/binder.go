package binder

import (
	"log/slog"

	"anisub/internal/logging"
	"anisub/internal/matching"
)

// BindThreshold is the exclusive similarity score a candidate must beat for a
// binding to be recorded.
const BindThreshold = 60

// Binding pairs a per-source show with the canonical show it was bound to.
type Binding struct {
	Source    *PerSourceShow
	Canonical *CanonicalShow
	Score     int
}

// Binder runs the reconciliation pass. It holds no mutable state beyond its
// collaborators and is safe to share across concurrent per-show passes.
type Binder struct {
	matcher *matching.Matcher
	logger  *slog.Logger
}

// New constructs a Binder using the supplied name matcher.
func New(matcher *matching.Matcher, logger *slog.Logger) *Binder {
	return &Binder{
		matcher: matcher,
		logger:  logging.NewComponentLogger(logger, "binder"),
	}
}

// Bind matches every unbound per-source show against the canonical list and
// records a binding when the best score exceeds BindThreshold. Ties keep the
// first-seen candidate. Already-bound records are skipped, which makes the
// pass idempotent. The returned flag map carries the recomputed
// has-data-source value for every canonical show; the shows are updated
// in place as well.
//
// An empty canonical list is not an error: it simply yields no bindings.
func (b *Binder) Bind(sources []*PerSourceShow, canonical []*CanonicalShow, links *matching.LinkTable) ([]Binding, map[int64]bool) {
	bindings := make([]Binding, 0)
	for _, src := range sources {
		if src == nil || src.Bound() {
			continue
		}
		var best *CanonicalShow
		bestScore := 0
		for _, c := range canonical {
			if c == nil {
				continue
			}
			score := b.matcher.Similarity(src.Name, c.Name, links)
			if best == nil || score > bestScore {
				best = c
				bestScore = score
			}
		}
		if best == nil || bestScore <= BindThreshold {
			// A no-match outcome is valid: the record stays unbound.
			continue
		}
		src.CanonicalID = best.ID
		bindings = append(bindings, Binding{Source: src, Canonical: best, Score: bestScore})
		b.logger.Info("per-source show bound",
			logging.String("source", src.SourceID),
			logging.String("keyword", src.Keyword),
			logging.String("name", src.Name),
			logging.Int64("canonical_id", best.ID),
			logging.Int("score", bestScore),
		)
	}

	flags := b.recomputeFlags(sources, canonical)
	return bindings, flags
}

// recomputeFlags derives has-data-source for each canonical show: true iff
// the show is still updating and at least one bound per-source show points
// at it. Ended shows always clear the flag.
func (b *Binder) recomputeFlags(sources []*PerSourceShow, canonical []*CanonicalShow) map[int64]bool {
	pointed := make(map[int64]bool, len(sources))
	for _, src := range sources {
		if src.Bound() {
			pointed[src.CanonicalID] = true
		}
	}
	flags := make(map[int64]bool, len(canonical))
	for _, c := range canonical {
		if c == nil {
			continue
		}
		flag := c.Status == StatusUpdating && pointed[c.ID]
		if c.HasDataSource != flag {
			c.HasDataSource = flag
		}
		flags[c.ID] = flag
	}
	return flags
}
