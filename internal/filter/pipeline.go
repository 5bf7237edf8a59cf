package filter

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"anisub/internal/episode"
	"anisub/internal/logging"
)

// batchToken marks collection/batch releases. It is always excluded,
// independent of any configured term.
const batchToken = "合集"

// maxAge is the default freshness window for candidates: three 30-day months.
const maxAge = 90 * 24 * time.Hour

// Spec is one subscription's filter configuration. It is mutated by user
// commands and read here without modification.
type Spec struct {
	Include        []string `json:"include" toml:"include"`
	Exclude        []string `json:"exclude" toml:"exclude"`
	Regex          string   `json:"regex" toml:"regex"`
	Sources        []string `json:"data_sources" toml:"data_sources"`
	SubtitleGroups []string `json:"subtitle_groups" toml:"subtitle_groups"`
}

// Globals carries the process-wide filter configuration loaded once per run.
type Globals struct {
	Exclude        []string
	Include        []string
	IncludeEnabled bool
	Weights        map[string]int
}

// ApplyOptions select the caller-controlled stages. The zero value gives the
// ad hoc search behavior: fresh episodes only, input order preserved.
type ApplyOptions struct {
	// IncludeOld disables the 90-day age cutoff.
	IncludeOld bool
	// Rank sorts the surviving episodes by descending keyword weight.
	Rank bool
}

// Pipeline applies filter stages in a fixed order. It holds only read-only
// configuration and is safe for concurrent use across subscriptions.
type Pipeline struct {
	globals Globals
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the time source used by the age cutoff stage.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPipeline constructs a Pipeline around the global filter configuration.
func NewPipeline(globals Globals, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		globals: globals,
		logger:  logging.NewComponentLogger(logger, "filter"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply runs the stage cascade over candidates and returns the survivors.
// Stage order is fixed: include, global include, exclude, regex, age cutoff,
// dedup, then optional ranking. The input slice is not modified.
func (p *Pipeline) Apply(candidates []episode.Episode, spec Spec, opts ApplyOptions) []episode.Episode {
	out := make([]episode.Episode, len(candidates))
	copy(out, candidates)

	out = p.applyInclude(out, spec.Include)
	out = p.applyGlobalInclude(out)
	out = p.applyExclude(out, spec.Exclude)
	out = p.applyRegex(out, spec.Regex)
	if !opts.IncludeOld {
		out = p.applyAgeCutoff(out)
	}
	out = dedupByNumber(out)
	if opts.Rank {
		p.rank(out)
	}
	return out
}

// applyInclude keeps episodes whose title contains every include term. With
// no terms the stage passes everything through.
func (p *Pipeline) applyInclude(eps []episode.Episode, include []string) []episode.Episode {
	if len(include) == 0 {
		return eps
	}
	kept := eps[:0]
	for _, ep := range eps {
		if containsAll(ep.Title, include) {
			kept = append(kept, ep)
		}
	}
	return kept
}

// applyGlobalInclude keeps episodes containing at least one globally required
// term. It runs in addition to the per-subscription include stage.
func (p *Pipeline) applyGlobalInclude(eps []episode.Episode) []episode.Episode {
	if !p.globals.IncludeEnabled || len(p.globals.Include) == 0 {
		return eps
	}
	kept := eps[:0]
	for _, ep := range eps {
		if containsAny(ep.Title, p.globals.Include) {
			kept = append(kept, ep)
		}
	}
	return kept
}

// applyExclude drops episodes matching any term from the union of the
// subscription excludes, the global excludes, and the batch token.
func (p *Pipeline) applyExclude(eps []episode.Episode, exclude []string) []episode.Episode {
	terms := make([]string, 0, len(exclude)+len(p.globals.Exclude)+1)
	terms = append(terms, exclude...)
	terms = append(terms, p.globals.Exclude...)
	terms = append(terms, batchToken)

	kept := eps[:0]
	for _, ep := range eps {
		if !containsAny(ep.Title, terms) {
			kept = append(kept, ep)
		}
	}
	return kept
}

// applyRegex keeps episodes whose title matches the user regex. A regex that
// fails to compile makes the stage a no-op so a typo never empties the list.
func (p *Pipeline) applyRegex(eps []episode.Episode, pattern string) []episode.Episode {
	if pattern == "" {
		return eps
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		p.logger.Warn("invalid filter regex, stage skipped",
			logging.String("pattern", pattern),
			logging.Error(err),
		)
		return eps
	}
	kept := eps[:0]
	for _, ep := range eps {
		if re.MatchString(ep.Title) {
			kept = append(kept, ep)
		}
	}
	return kept
}

func (p *Pipeline) applyAgeCutoff(eps []episode.Episode) []episode.Episode {
	cutoff := p.now().Add(-maxAge).Unix()
	kept := eps[:0]
	for _, ep := range eps {
		if ep.Time >= cutoff {
			kept = append(kept, ep)
		}
	}
	return kept
}

// dedupByNumber keeps the first episode seen for each distinct number.
func dedupByNumber(eps []episode.Episode) []episode.Episode {
	seen := make(map[int]struct{}, len(eps))
	kept := eps[:0]
	for _, ep := range eps {
		if _, dup := seen[ep.Episode]; dup {
			continue
		}
		seen[ep.Episode] = struct{}{}
		kept = append(kept, ep)
	}
	return kept
}

// rank sorts episodes by descending keyword weight. The sort is stable so
// equally weighted episodes keep their input order.
func (p *Pipeline) rank(eps []episode.Episode) {
	if len(p.globals.Weights) == 0 {
		return
	}
	sort.SliceStable(eps, func(i, j int) bool {
		return p.weight(eps[i].Title) > p.weight(eps[j].Title)
	})
}

func (p *Pipeline) weight(title string) int {
	total := 0
	for keyword, w := range p.globals.Weights {
		if strings.Contains(title, keyword) {
			total += w
		}
	}
	return total
}

func containsAll(title string, terms []string) bool {
	lower := strings.ToLower(title)
	for _, term := range terms {
		if !strings.Contains(lower, strings.ToLower(term)) {
			return false
		}
	}
	return true
}

func containsAny(title string, terms []string) bool {
	lower := strings.ToLower(title)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
