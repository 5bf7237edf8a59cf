package nameutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "One Piece", "one piece"},
		{"traditional to simplified", "海賊王", "海贼王"},
		{"fullwidth ascii", "ＯＮＥ　ＰＩＥＣＥ", "one piece"},
		{"fullwidth punctuation", "進擊的巨人！", "进击的巨人!"},
		{"ideographic space", "坂本　です", "坂本 です"},
		{"mixed", "進擊的巨人 Ｓ２", "进击的巨人 s2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, nil)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeStepOrder(t *testing.T) {
	// Simplification must happen before lowercasing so a custom table keyed
	// on traditional characters still applies to uppercase-adjacent text.
	table := ConversionTable{'貓': '猫'}
	if got := Normalize("黑貓", table); got != "黑猫" {
		t.Errorf("Normalize with custom table = %q, want %q", got, "黑猫")
	}
}

func TestNormalizeCustomTableOverridesDefault(t *testing.T) {
	// An injected table replaces the default entirely.
	table := ConversionTable{}
	if got := Normalize("海賊王", table); got != "海賊王" {
		t.Errorf("Normalize with empty table = %q, conversion should not apply", got)
	}
}
