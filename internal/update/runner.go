package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"anisub/internal/binder"
	"anisub/internal/config"
	"anisub/internal/episode"
	"anisub/internal/filter"
	"anisub/internal/logging"
	"anisub/internal/matching"
	"anisub/internal/store"
)

// ErrAlreadyRunning indicates another update run holds the lock.
var ErrAlreadyRunning = errors.New("update: another run is in progress")

// Source is a scraper for one tracker site. Implementations perform all
// their I/O here; the rest of the run is pure computation over the results.
type Source interface {
	ID() string
	// Shows lists the site's show records.
	Shows(ctx context.Context) ([]*binder.PerSourceShow, error)
	// Episodes lists episode candidates for one show keyword. Titles are
	// raw as scraped; episode numbers may be unset.
	Episodes(ctx context.Context, keyword string) ([]episode.Episode, error)
}

// Summary reports what a run did.
type Summary struct {
	SourceShows   int
	Bound         int
	Subscriptions int
	Queued        int
}

// Runner executes update runs against a store and a set of sources.
type Runner struct {
	store    *store.Store
	cfg      *config.Config
	sources  []Source
	binder   *binder.Binder
	pipeline *filter.Pipeline
	logger   *slog.Logger
	lockPath string
}

// NewRunner wires an update runner from its collaborators.
func NewRunner(st *store.Store, cfg *config.Config, sources []Source, logger *slog.Logger) *Runner {
	globals := filter.Globals{
		Exclude:        cfg.Filter.Exclude,
		Include:        cfg.Filter.Include,
		IncludeEnabled: cfg.Filter.IncludeEnabled,
		Weights:        cfg.Filter.Weights,
	}
	return &Runner{
		store:    st,
		cfg:      cfg,
		sources:  sources,
		binder:   binder.New(matching.NewMatcher(nil), logger),
		pipeline: filter.NewPipeline(globals, logger),
		logger:   logging.NewComponentLogger(logger, "update"),
		lockPath: cfg.LockPath(),
	}
}

// Run performs one full update pass. Concurrent runs are rejected with
// ErrAlreadyRunning rather than queued.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	lock := flock.New(r.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	defer func() { _ = lock.Unlock() }()

	summary := &Summary{}

	if err := r.refreshSourceShows(ctx, summary); err != nil {
		return nil, err
	}
	links, err := r.store.LoadLinks(ctx)
	if err != nil {
		return nil, err
	}
	sourceShows, err := r.bindPass(ctx, links, summary)
	if err != nil {
		return nil, err
	}
	if err := r.updateSubscriptions(ctx, sourceShows, summary); err != nil {
		return nil, err
	}

	r.logger.Info("update run finished",
		logging.Int("source_shows", summary.SourceShows),
		logging.Int("bound", summary.Bound),
		logging.Int("subscriptions", summary.Subscriptions),
		logging.Int("queued", summary.Queued),
	)
	return summary, nil
}

// refreshSourceShows scrapes every source's show list into the store. A
// failing source is logged and skipped so one dead site does not stall the
// whole run.
func (r *Runner) refreshSourceShows(ctx context.Context, summary *Summary) error {
	for _, src := range r.sources {
		shows, err := src.Shows(ctx)
		if err != nil {
			r.logger.Warn("source show listing failed, skipping source",
				logging.String("source", src.ID()),
				logging.Error(err),
			)
			continue
		}
		for _, show := range shows {
			show.SourceID = src.ID()
			if err := r.store.UpsertSourceShow(ctx, show); err != nil {
				return fmt.Errorf("source %s: %w", src.ID(), err)
			}
			summary.SourceShows++
		}
	}
	return nil
}

// bindPass binds unbound source shows and persists the results. It returns
// the full source show list for the subscription pass.
func (r *Runner) bindPass(ctx context.Context, links *matching.LinkTable, summary *Summary) ([]*binder.PerSourceShow, error) {
	sourceShows, err := r.store.ListSourceShows(ctx)
	if err != nil {
		return nil, err
	}
	canonical, err := r.store.ListCanonicalShows(ctx)
	if err != nil {
		return nil, err
	}

	bindings, flags := r.binder.Bind(sourceShows, canonical, links)
	for _, b := range bindings {
		if err := r.store.SaveBinding(ctx, b.Source.SourceID, b.Source.Keyword, b.Canonical.ID); err != nil {
			return nil, err
		}
	}
	for id, flag := range flags {
		if err := r.store.SetHasDataSource(ctx, id, flag); err != nil {
			return nil, err
		}
	}
	summary.Bound = len(bindings)
	return sourceShows, nil
}

// updateSubscriptions fans out across subscriptions with a bounded pool.
// Each worker touches disjoint shows; the store and lookup tables are safe
// for concurrent reads.
func (r *Runner) updateSubscriptions(ctx context.Context, sourceShows []*binder.PerSourceShow, summary *Summary) error {
	subs, err := r.store.ListSubscriptions(ctx)
	if err != nil {
		return err
	}
	summary.Subscriptions = len(subs)

	byCanonical := make(map[int64][]*binder.PerSourceShow)
	for _, show := range sourceShows {
		if show.Bound() {
			byCanonical[show.CanonicalID] = append(byCanonical[show.CanonicalID], show)
		}
	}
	byID := make(map[string]Source, len(r.sources))
	for _, src := range r.sources {
		byID[src.ID()] = src
	}

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.cfg.Update.Workers)
	for _, sub := range subs {
		sub := sub
		group.Go(func() error {
			queued, err := r.updateOne(ctx, sub, byCanonical[sub.ShowID], byID)
			if err != nil {
				return err
			}
			mu.Lock()
			summary.Queued += queued
			mu.Unlock()
			return nil
		})
	}
	return group.Wait()
}

func (r *Runner) updateOne(ctx context.Context, sub *store.Subscription, feeds []*binder.PerSourceShow, sources map[string]Source) (int, error) {
	show, err := r.store.GetCanonicalShow(ctx, sub.ShowID)
	if err != nil {
		return 0, err
	}

	var candidates []episode.Episode
	for _, feed := range feeds {
		if !sourceAllowed(sub.Filter.Sources, feed.SourceID) {
			continue
		}
		src, ok := sources[feed.SourceID]
		if !ok {
			continue
		}
		episodes, err := src.Episodes(ctx, feed.Keyword)
		if err != nil {
			r.logger.Warn("episode listing failed, skipping feed",
				logging.String("source", feed.SourceID),
				logging.String("keyword", feed.Keyword),
				logging.Error(err),
			)
			continue
		}
		for _, ep := range episodes {
			if !groupAllowed(sub.Filter.SubtitleGroups, ep.SubtitleGroup) {
				continue
			}
			if ep.Episode == 0 {
				ep.Episode = episode.ParseEpisode(ep.Title)
			}
			ep.Source = feed.SourceID
			ep.ShowName = show.Name
			candidates = append(candidates, ep)
		}
	}

	filtered := r.pipeline.Apply(candidates, sub.Filter, filter.ApplyOptions{
		IncludeOld: r.cfg.Update.IncludeOld,
		Rank:       true,
	})
	queued, err := r.store.EnqueueDownloads(ctx, show.Name, filtered)
	if err != nil {
		return 0, err
	}
	if queued > 0 {
		r.logger.Info("episodes queued",
			logging.String("show", show.Name),
			logging.Int("queued", queued),
		)
	}
	return queued, nil
}

func sourceAllowed(allowed []string, sourceID string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, id := range allowed {
		if id == sourceID {
			return true
		}
	}
	return false
}

func groupAllowed(allowed []string, group string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, id := range allowed {
		if id == group {
			return true
		}
	}
	return false
}
