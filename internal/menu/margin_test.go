package menu

import "testing"

func TestClassifyMargin(t *testing.T) {
	tests := []struct {
		percentage int
		want       MarginTier
		wantLabel  string
	}{
		{0, MarginLow, "Low Margin Item"},
		{64, MarginLow, "Low Margin Item"},
		{65, MarginMedium, "Med. Margin Item"},
		{70, MarginMedium, "Med. Margin Item"},
		{74, MarginMedium, "Med. Margin Item"},
		{75, MarginHigh, "High Margin Item"},
		{100, MarginHigh, "High Margin Item"},
	}

	for _, tt := range tests {
		got := ClassifyMargin(tt.percentage)
		if got != tt.want {
			t.Errorf("ClassifyMargin(%d) = %v, want %v", tt.percentage, got, tt.want)
		}
		if got.Label() != tt.wantLabel {
			t.Errorf("ClassifyMargin(%d).Label() = %q, want %q", tt.percentage, got.Label(), tt.wantLabel)
		}
	}
}
