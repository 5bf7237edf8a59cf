package filter

import (
	"testing"
	"time"

	"anisub/internal/episode"
)

var testNow = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestPipeline(globals Globals) *Pipeline {
	return NewPipeline(globals, nil, WithClock(func() time.Time { return testNow }))
}

func fresh(title string, number int) episode.Episode {
	return episode.Episode{
		Title:   title,
		Episode: number,
		Time:    testNow.Add(-24 * time.Hour).Unix(),
	}
}

func titles(eps []episode.Episode) []string {
	out := make([]string, len(eps))
	for i, ep := range eps {
		out[i] = ep.Title
	}
	return out
}

func TestApplyIncludeRequiresAllTerms(t *testing.T) {
	p := newTestPipeline(Globals{})
	candidates := []episode.Episode{
		fresh("[Sub] Show - 01 [720p][简体]", 1),
		fresh("[Sub] Show - 02 [720p]", 2),
		fresh("[Sub] Show - 03 [简体]", 3),
	}

	got := p.Apply(candidates, Spec{Include: []string{"720p", "简体"}}, ApplyOptions{})
	if len(got) != 1 || got[0].Episode != 1 {
		t.Errorf("include AND kept %v, want only episode 1", titles(got))
	}
}

func TestApplyIncludeCaseInsensitive(t *testing.T) {
	p := newTestPipeline(Globals{})
	candidates := []episode.Episode{fresh("[Sub] Show - 01 [720P]", 1)}

	got := p.Apply(candidates, Spec{Include: []string{"720p"}}, ApplyOptions{})
	if len(got) != 1 {
		t.Errorf("include should match case-insensitively, kept %v", titles(got))
	}
}

func TestApplyGlobalIncludeAnyTerm(t *testing.T) {
	p := newTestPipeline(Globals{
		Include:        []string{"1080", "简体"},
		IncludeEnabled: true,
	})
	candidates := []episode.Episode{
		fresh("Show - 01 [1080p]", 1),
		fresh("Show - 02 [简体]", 2),
		fresh("Show - 03 [720p]", 3),
	}

	got := p.Apply(candidates, Spec{}, ApplyOptions{})
	if len(got) != 2 {
		t.Errorf("global include OR kept %v, want episodes 1 and 2", titles(got))
	}
}

func TestApplyGlobalIncludeDisabled(t *testing.T) {
	p := newTestPipeline(Globals{Include: []string{"1080"}})
	candidates := []episode.Episode{fresh("Show - 01 [720p]", 1)}

	got := p.Apply(candidates, Spec{}, ApplyOptions{})
	if len(got) != 1 {
		t.Error("disabled global include must not drop anything")
	}
}

func TestApplyExcludeUnion(t *testing.T) {
	p := newTestPipeline(Globals{Exclude: []string{"繁体"}})
	candidates := []episode.Episode{
		fresh("Show - 01 [简体]", 1),
		fresh("Show - 02 [繁体]", 2),
		fresh("Show - 03 [内封]", 3),
	}

	got := p.Apply(candidates, Spec{Exclude: []string{"内封"}}, ApplyOptions{})
	if len(got) != 1 || got[0].Episode != 1 {
		t.Errorf("exclude union kept %v, want only episode 1", titles(got))
	}
}

func TestApplyExcludeAlwaysDropsBatches(t *testing.T) {
	p := newTestPipeline(Globals{})
	candidates := []episode.Episode{
		fresh("Show 01-12 合集 [1080p]", 0),
		fresh("Show - 05 [1080p]", 5),
	}

	got := p.Apply(candidates, Spec{}, ApplyOptions{})
	if len(got) != 1 || got[0].Episode != 5 {
		t.Errorf("batch release survived: %v", titles(got))
	}
}

func TestApplyExcludeMonotonicNarrowing(t *testing.T) {
	p := newTestPipeline(Globals{})
	candidates := []episode.Episode{
		fresh("Show - 01 [720p]", 1),
		fresh("Show - 02 [1080p]", 2),
		fresh("Show - 03 [720p]", 3),
	}

	base := p.Apply(candidates, Spec{}, ApplyOptions{})
	narrowed := p.Apply(candidates, Spec{Exclude: []string{"720p"}}, ApplyOptions{})
	if len(narrowed) > len(base) {
		t.Errorf("adding an exclude term grew the output: %d > %d", len(narrowed), len(base))
	}
	for _, ep := range narrowed {
		if ep.Episode != 2 {
			t.Errorf("excluded episode %d survived", ep.Episode)
		}
	}
}

func TestApplyRegexFilter(t *testing.T) {
	p := newTestPipeline(Globals{})
	candidates := []episode.Episode{
		fresh("Show - 01 [1080p]", 1),
		fresh("Show - 02 [720p]", 2),
	}

	got := p.Apply(candidates, Spec{Regex: `1080p`}, ApplyOptions{})
	if len(got) != 1 || got[0].Episode != 1 {
		t.Errorf("regex filter kept %v, want only episode 1", titles(got))
	}
}

func TestApplyRegexFailsOpen(t *testing.T) {
	p := newTestPipeline(Globals{})
	candidates := []episode.Episode{
		fresh("Show - 01", 1),
		fresh("Show - 02", 2),
	}

	got := p.Apply(candidates, Spec{Regex: `([unclosed`}, ApplyOptions{})
	if len(got) != 2 {
		t.Errorf("broken regex must be a no-op, kept %v", titles(got))
	}
}

func TestApplyAgeCutoff(t *testing.T) {
	p := newTestPipeline(Globals{})
	old := episode.Episode{
		Title:   "Show - 01",
		Episode: 1,
		Time:    testNow.Add(-91 * 24 * time.Hour).Unix(),
	}
	candidates := []episode.Episode{old, fresh("Show - 02", 2)}

	got := p.Apply(candidates, Spec{}, ApplyOptions{})
	if len(got) != 1 || got[0].Episode != 2 {
		t.Errorf("age cutoff kept %v, want only the fresh episode", titles(got))
	}

	all := p.Apply(candidates, Spec{}, ApplyOptions{IncludeOld: true})
	if len(all) != 2 {
		t.Errorf("IncludeOld should keep stale episodes, kept %v", titles(all))
	}
}

func TestApplyDedupKeepsFirst(t *testing.T) {
	p := newTestPipeline(Globals{})
	candidates := []episode.Episode{
		fresh("A 720p", 1),
		fresh("A 1080p", 1),
		fresh("B 720p", 2),
	}

	got := p.Apply(candidates, Spec{}, ApplyOptions{})
	if len(got) != 2 {
		t.Fatalf("dedup kept %d episodes, want 2", len(got))
	}
	if got[0].Title != "A 720p" {
		t.Errorf("dedup kept %q, want the first candidate in input order", got[0].Title)
	}
}

func TestApplyRanking(t *testing.T) {
	p := newTestPipeline(Globals{Weights: map[string]int{"1080": 10, "简体": 5}})
	candidates := []episode.Episode{
		fresh("Show - 01 [720p]", 1),
		fresh("Show - 02 [1080p][简体]", 2),
		fresh("Show - 03 [1080p]", 3),
	}

	got := p.Apply(candidates, Spec{}, ApplyOptions{Rank: true})
	want := []int{2, 3, 1}
	for i, ep := range got {
		if ep.Episode != want[i] {
			t.Fatalf("ranked order %v, want episodes %v", titles(got), want)
		}
	}
}

func TestApplyRankingStableOnTies(t *testing.T) {
	p := newTestPipeline(Globals{Weights: map[string]int{"1080": 10}})
	candidates := []episode.Episode{
		fresh("first [1080p]", 1),
		fresh("second [1080p]", 2),
	}

	got := p.Apply(candidates, Spec{}, ApplyOptions{Rank: true})
	if got[0].Episode != 1 || got[1].Episode != 2 {
		t.Errorf("tied weights must keep input order, got %v", titles(got))
	}
}

func TestApplyWithoutRankPreservesInputOrder(t *testing.T) {
	p := newTestPipeline(Globals{Weights: map[string]int{"1080": 10}})
	candidates := []episode.Episode{
		fresh("low [720p]", 1),
		fresh("high [1080p]", 2),
	}

	got := p.Apply(candidates, Spec{}, ApplyOptions{})
	if got[0].Episode != 1 {
		t.Errorf("without Rank the pipeline must preserve input order, got %v", titles(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	p := newTestPipeline(Globals{Weights: map[string]int{"1080": 10}})
	candidates := []episode.Episode{
		fresh("low [720p]", 1),
		fresh("high [1080p]", 2),
	}

	p.Apply(candidates, Spec{}, ApplyOptions{Rank: true})
	if candidates[0].Episode != 1 || candidates[1].Episode != 2 {
		t.Error("Apply reordered the caller's slice")
	}
}
