package episode

import "testing"

func TestParseEpisode(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{
			name:  "dash separated number",
			title: "[Mabors Sub] Sakamoto Desu ga - 02 [GB][720P][PSV&PC]",
			want:  2,
		},
		{
			name:  "bracketed episode",
			title: "[啊啊字幕组] [在下坂本,有何贵干][12][GB][720P][PSV&PC]",
			want:  12,
		},
		{
			name:  "numeric range is a batch",
			title: "[从零开始的异世界生活 第二季_Re Zero S2][34-35][繁体][720P][MP4]",
			want:  0,
		},
		{
			name:  "cjk digit marker",
			title: "海贼王 第996话 MP4 720P",
			want:  996,
		},
		{
			name:  "cjk digit marker without prefix",
			title: "进击的巨人 12集 简中",
			want:  12,
		},
		{
			name:  "cjk numeral marker",
			title: "银魂 第十二話",
			want:  12,
		},
		{
			name:  "cjk numeral marker traditional",
			title: "排球少年 第二十四話 繁體",
			want:  24,
		},
		{
			name:  "version suffix",
			title: "[Lilith-Raws] 奇蛋物语 [08 v2][Baha][WEB-DL]",
			want:  8,
		},
		{
			name:  "bracketed minimum skips resolution",
			title: "[Sub][08][1080][Web]",
			want:  8,
		},
		{
			name:  "full range marker",
			title: "[字幕组] 某科学的超电磁炮 全24話 合集",
			want:  0,
		},
		{
			name:  "full range cjk numerals",
			title: "[字幕组] 轻音少女 全十三集",
			want:  0,
		},
		{
			name:  "cjk numbered range",
			title: "[字幕组] 紫罗兰永恒花园 第01-13話",
			want:  0,
		},
		{
			name:  "year alone is not an episode",
			title: "[Moozzi2] Spirited Away [2001][BD 1920x1080]",
			want:  0,
		},
		{
			name:  "large number kept as spare",
			title: "[SweetSub] 某动画 1080 修正合集版",
			want:  1080,
		},
		{
			name:  "no number at all",
			title: "[字幕组] 剧场版 总集篇 前篇",
			want:  0,
		},
		{
			name:  "empty title",
			title: "",
			want:  0,
		},
		{
			name:  "ova token",
			title: "出包王女 Darkness 14 (OVA) [BD 1080P]",
			want:  14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEpisode(tt.title)
			if got != tt.want {
				t.Errorf("ParseEpisode(%q) = %d, want %d", tt.title, got, tt.want)
			}
			if got < 0 {
				t.Errorf("ParseEpisode(%q) = %d, episode numbers are never negative", tt.title, got)
			}
		})
	}
}

func TestParseEpisodeDeterministic(t *testing.T) {
	title := "[Lilith-Raws] 奇蛋物语 [08 v2][Baha][WEB-DL]"
	first := ParseEpisode(title)
	for i := 0; i < 20; i++ {
		if got := ParseEpisode(title); got != first {
			t.Fatalf("ParseEpisode not deterministic: %d vs %d", got, first)
		}
	}
}

func TestRangeGuardBeatsLaterRules(t *testing.T) {
	// A range marker wins even when a later token looks like a clean episode.
	title := "[字幕组] 某动画 第01-12話 另含 [05]"
	if got := ParseEpisode(title); got != 0 {
		t.Errorf("ParseEpisode(%q) = %d, want 0 (range guard)", title, got)
	}
}

func TestRulePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		rule  string
		title string
		want  int
		ok    bool
	}{
		{"range guard declines plain title", "range_guard", "Show - 05", 0, false},
		{"cjk digit", "cjk_digit_marker", "第12話", 12, true},
		{"cjk numeral declines digits", "cjk_numeral_marker", "第12話", 0, false},
		{"cjk numeral converts", "cjk_numeral_marker", "第十一話", 11, true},
		{"versioned", "versioned_bracket", "[08 v2]", 8, true},
		{"bracketed min", "bracketed_minimum", "[03][1080]", 3, true},
		{"bracketed year declines", "bracketed_minimum", "[2016][1080p]", 0, false},
		{"token scan spare", "token_scan", "raw 1080 only", 1080, true},
	}

	byName := make(map[string]rule, len(rules))
	for _, r := range rules {
		byName[r.name] = r
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, found := byName[tt.rule]
			if !found {
				t.Fatalf("rule %q not registered", tt.rule)
			}
			got, ok := r.try(tt.title)
			if ok != tt.ok || got != tt.want {
				t.Errorf("%s.try(%q) = (%d, %v), want (%d, %v)", tt.rule, tt.title, got, ok, tt.want, tt.ok)
			}
		})
	}
}
