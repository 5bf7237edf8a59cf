package binder

import (
	"testing"

	"anisub/internal/matching"
)

func newTestBinder() *Binder {
	return New(matching.NewMatcher(nil), nil)
}

func mustCanonical(t *testing.T, id int64, name string, status Status) *CanonicalShow {
	t.Helper()
	c, err := NewCanonicalShow(id, name, WeekdayUnknown, status)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustSource(t *testing.T, name, keyword, sourceID string) *PerSourceShow {
	t.Helper()
	s, err := NewPerSourceShow(name, keyword, sourceID, WeekdayUnknown)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBindMatchesAboveThreshold(t *testing.T) {
	b := newTestBinder()
	canonical := []*CanonicalShow{
		mustCanonical(t, 1, "海贼王", StatusUpdating),
		mustCanonical(t, 2, "进击的巨人", StatusUpdating),
	}
	sources := []*PerSourceShow{
		mustSource(t, "海贼王 One Piece", "op-1", "mikan"),
	}

	bindings, flags := b.Bind(sources, canonical, nil)
	if len(bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bindings))
	}
	if bindings[0].Canonical.ID != 1 || bindings[0].Score != 100 {
		t.Errorf("binding = id %d score %d, want id 1 score 100", bindings[0].Canonical.ID, bindings[0].Score)
	}
	if sources[0].CanonicalID != 1 {
		t.Errorf("source canonical id = %d, want 1", sources[0].CanonicalID)
	}
	if !flags[1] {
		t.Error("bound canonical show should have data source flag set")
	}
	if flags[2] {
		t.Error("unbound canonical show should have data source flag cleared")
	}
}

func TestBindNeverBindsAtOrBelowThreshold(t *testing.T) {
	b := newTestBinder()
	canonical := []*CanonicalShow{
		mustCanonical(t, 1, "完全无关的节目", StatusUpdating),
	}
	sources := []*PerSourceShow{
		mustSource(t, "something entirely different", "x", "mikan"),
	}

	bindings, flags := b.Bind(sources, canonical, nil)
	if len(bindings) != 0 {
		t.Fatalf("got %d bindings, want 0", len(bindings))
	}
	if sources[0].Bound() {
		t.Error("source should stay unbound below threshold")
	}
	if flags[1] {
		t.Error("flag should be false with no bound sources")
	}
}

func TestBindIdempotent(t *testing.T) {
	b := newTestBinder()
	canonical := []*CanonicalShow{
		mustCanonical(t, 7, "孤独摇滚", StatusUpdating),
	}
	sources := []*PerSourceShow{
		mustSource(t, "孤独摇滚！", "btr", "mikan"),
	}

	first, _ := b.Bind(sources, canonical, nil)
	if len(first) != 1 {
		t.Fatalf("first pass bound %d, want 1", len(first))
	}
	second, flags := b.Bind(sources, canonical, nil)
	if len(second) != 0 {
		t.Errorf("second pass bound %d, want 0 (already bound)", len(second))
	}
	if sources[0].CanonicalID != 7 {
		t.Errorf("canonical id changed to %d on second pass", sources[0].CanonicalID)
	}
	if !flags[7] {
		t.Error("flag should survive the second pass")
	}
}

func TestBindNeverUnbinds(t *testing.T) {
	b := newTestBinder()
	canonical := []*CanonicalShow{
		mustCanonical(t, 1, "别的节目", StatusUpdating),
	}
	src := mustSource(t, "海贼王", "op", "mikan")
	src.CanonicalID = 42 // bound to a show no longer in the candidate list

	bindings, _ := b.Bind([]*PerSourceShow{src}, canonical, nil)
	if len(bindings) != 0 {
		t.Fatalf("got %d bindings, want 0", len(bindings))
	}
	if src.CanonicalID != 42 {
		t.Errorf("canonical id = %d, binder must never unset a binding", src.CanonicalID)
	}
}

func TestBindEndedShowClearsFlag(t *testing.T) {
	b := newTestBinder()
	ended := mustCanonical(t, 3, "已完结的节目", StatusEnded)
	ended.HasDataSource = true
	src := mustSource(t, "已完结的节目", "done", "mikan")
	src.CanonicalID = 3

	_, flags := b.Bind([]*PerSourceShow{src}, []*CanonicalShow{ended}, nil)
	if flags[3] {
		t.Error("ended show must not count toward has data source")
	}
	if ended.HasDataSource {
		t.Error("flag should be cleared on the show itself")
	}
}

func TestBindEmptyCanonicalList(t *testing.T) {
	b := newTestBinder()
	sources := []*PerSourceShow{mustSource(t, "海贼王", "op", "mikan")}

	bindings, flags := b.Bind(sources, nil, nil)
	if len(bindings) != 0 || len(flags) != 0 {
		t.Errorf("empty canonical list should yield nothing, got %d bindings %d flags", len(bindings), len(flags))
	}
}

func TestBindTiesKeepFirstSeen(t *testing.T) {
	b := newTestBinder()
	canonical := []*CanonicalShow{
		mustCanonical(t, 1, "银魂", StatusUpdating),
		mustCanonical(t, 2, "银魂", StatusUpdating),
	}
	sources := []*PerSourceShow{mustSource(t, "银魂", "gintama", "mikan")}

	bindings, _ := b.Bind(sources, canonical, nil)
	if len(bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bindings))
	}
	if bindings[0].Canonical.ID != 1 {
		t.Errorf("tie bound id %d, want first-seen id 1", bindings[0].Canonical.ID)
	}
}

func TestBindHonorsManualLink(t *testing.T) {
	b := newTestBinder()
	links := matching.NewLinkTable()
	links.Put("OVERLORD IV", "不死者之王 第四季", matching.KindLink)

	canonical := []*CanonicalShow{
		mustCanonical(t, 9, "不死者之王 第四季", StatusUpdating),
	}
	sources := []*PerSourceShow{mustSource(t, "OVERLORD IV", "ov4", "mikan")}

	bindings, _ := b.Bind(sources, canonical, links)
	if len(bindings) != 1 || bindings[0].Score != 100 {
		t.Fatalf("manual link should bind with score 100, got %+v", bindings)
	}
}

func TestWeekdayValidation(t *testing.T) {
	if _, err := NewPerSourceShow("x", "k", "s", Weekday(9)); err == nil {
		t.Error("expected error for out-of-range weekday")
	}
	if _, err := NewCanonicalShow(1, "x", Weekday(-1), StatusUpdating); err == nil {
		t.Error("expected error for negative weekday")
	}
	if _, err := NewCanonicalShow(1, "x", Sunday, StatusUpdating); err != nil {
		t.Errorf("Sunday should validate, got %v", err)
	}
}
