package audio

import (
	"strings"
	"testing"
)

func TestIsFormatCompatibleCrossProduct(t *testing.T) {
	for _, f := range SupportedFormats() {
		for _, q := range Qualities() {
			got := IsFormatCompatible(f, q)
			denied := (f == FormatWAV || f == FormatFLAC) && q == QualityLow
			if got == denied {
				t.Errorf("%s/%s: expected compatible=%t", f, q, !denied)
			}
		}
	}
}

func TestIsFormatCompatibleEdgeInputs(t *testing.T) {
	// Out-of-enumeration inputs resolve to false, never to a panic.
	if IsFormatCompatible(Format("ogg"), QualityMedium) {
		t.Error("uncataloged format must be incompatible")
	}
	if IsFormatCompatible(FormatAAC, Quality(99)) {
		t.Error("out-of-range quality must be incompatible")
	}
	if IsFormatCompatible(FormatAAC, Quality(-1)) {
		t.Error("negative quality must be incompatible")
	}
}

func TestRecommendedQualities(t *testing.T) {
	tests := []struct {
		recordingType string
		format        Format
		expected      []Quality
	}{
		// music prefers ultra; wav at low is denylisted.
		{"music", FormatWAV, []Quality{QualityUltra, QualityHigh, QualityMedium}},
		{"music", FormatOpus, []Quality{QualityUltra, QualityHigh, QualityMedium, QualityLow}},
		{"voice", FormatAAC, []Quality{QualityMedium, QualityLow}},
		// flac for a medium-preference type loses low to the denylist.
		{"voice", FormatFLAC, []Quality{QualityMedium}},
		{"meeting", FormatMP3, []Quality{QualityHigh, QualityMedium, QualityLow}},
	}
	for _, tt := range tests {
		t.Run(tt.recordingType+"/"+string(tt.format), func(t *testing.T) {
			got := RecommendedQualities(tt.recordingType, tt.format)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestRecommendedQualitiesNeverEmpty(t *testing.T) {
	for _, f := range SupportedFormats() {
		got := RecommendedQualities("voice", f)
		if len(got) == 0 {
			t.Errorf("%s: recommended tiers must not be empty", f)
		}
	}
}

func TestRecommendationMentionsRecordingType(t *testing.T) {
	tests := []struct {
		recordingType string
		mention       string
	}{
		{"meeting", "meeting"},
		{"music", "music"},
		{"  Voice ", "voice"},
		{"something-else", "default"},
	}
	for _, tt := range tests {
		t.Run(tt.recordingType, func(t *testing.T) {
			text := FormatRecommendation(FormatAAC, QualityMedium, tt.recordingType)
			if !strings.Contains(text, tt.mention) {
				t.Errorf("recommendation %q does not mention %q", text, tt.mention)
			}
		})
	}
}

func TestRecommendationFlagsDenylistedPair(t *testing.T) {
	text := FormatRecommendation(FormatWAV, QualityLow, "voice")
	if !strings.Contains(text, "not a sensible pairing") {
		t.Errorf("expected the denylisted pair to be called out, got %q", text)
	}
}
