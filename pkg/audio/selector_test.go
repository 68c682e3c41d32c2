package audio

import (
	"testing"
	"time"
)

func constraint(maxMB float64, d time.Duration) *SizeConstraint {
	return &SizeConstraint{MaxFileSizeMB: maxMB, ExpectedDuration: d}
}

func TestSelectQualityUnconstrained(t *testing.T) {
	tests := []struct {
		recordingType string
		expected      Quality
	}{
		{"voice", QualityMedium},
		{"meeting", QualityHigh},
		{"music", QualityUltra},
		{"podcast", QualityMedium}, // unknown label, default profile
	}
	for _, tt := range tests {
		t.Run(tt.recordingType, func(t *testing.T) {
			if got := SelectQuality(FormatAAC, tt.recordingType, nil); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSelectQualityPreferenceWinsWhenItFits(t *testing.T) {
	// aac at high over 10 minutes is ~11.4 MB; a 20 MB bound fits the
	// preferred tier so no downgrade happens.
	got := SelectQuality(FormatAAC, "meeting", constraint(20, 10*time.Minute))
	if got != QualityHigh {
		t.Errorf("expected high, got %s", got)
	}
}

func TestSelectQualityDowngradesUntilFit(t *testing.T) {
	// wav for music over 30 minutes: ultra ~330 MB, high ~303 MB,
	// medium ~151 MB, low ~110 MB. A 120 MB bound lands on low.
	got := SelectQuality(FormatWAV, "music", constraint(120, 30*time.Minute))
	if got != QualityLow {
		t.Errorf("expected low, got %s", got)
	}
}

func TestSelectQualityBestEffortFloor(t *testing.T) {
	// Nothing fits a 10 MB bound for 30 minutes of wav; the selector
	// returns the lowest tier rather than failing.
	got := SelectQuality(FormatWAV, "music", constraint(10, 30*time.Minute))
	if got != QualityLow {
		t.Errorf("expected low, got %s", got)
	}
	if size, _ := EstimateFileSize(FormatWAV, got, 30*time.Minute); size <= 10 {
		t.Fatalf("test premise broken: %.2f MB unexpectedly fits", size)
	}
}

func TestSelectQualityNeverUpgrades(t *testing.T) {
	// A generous bound does not push the tier above the preferred one.
	got := SelectQuality(FormatOpus, "voice", constraint(10000, time.Minute))
	if got != QualityMedium {
		t.Errorf("expected medium, got %s", got)
	}
}

func TestSelectFormatPrioritizeQuality(t *testing.T) {
	for _, q := range Qualities() {
		if got := SelectFormat(q, true, false, nil); got != FormatWAV {
			t.Errorf("at %s: expected wav, got %s", q, got)
		}
	}
}

func TestSelectFormatPrioritizeSize(t *testing.T) {
	got := SelectFormat(QualityMedium, false, true, nil)
	if got != FormatOpus && got != FormatAMR {
		t.Errorf("expected one of the most-compressed formats, got %s", got)
	}
	if got != FormatAMR {
		t.Errorf("amr is the cheapest cataloged format at medium, got %s", got)
	}
}

func TestSelectFormatQualityBeatsSize(t *testing.T) {
	if got := SelectFormat(QualityHigh, true, true, nil); got != FormatWAV {
		t.Errorf("quality priority must win when both flags are set, got %s", got)
	}
}

func TestSelectFormatBalancedDefault(t *testing.T) {
	if got := SelectFormat(QualityMedium, false, false, nil); got != FormatAAC {
		t.Errorf("expected the balanced default aac, got %s", got)
	}
}

func TestSelectFormatConstraintPicksFirstFitting(t *testing.T) {
	// 5 MB over 10 minutes at medium: wav, flac, aac and mp3 all miss,
	// opus (~3.43 MB) is the first cataloged format that fits.
	got := SelectFormat(QualityMedium, false, false, constraint(5, 10*time.Minute))
	if got != FormatOpus {
		t.Errorf("expected opus, got %s", got)
	}
}

func TestSelectFormatConstraintFallsBackToCheapest(t *testing.T) {
	got := SelectFormat(QualityMedium, false, false, constraint(0.01, 10*time.Minute))
	if got != FormatAMR {
		t.Errorf("expected the minimum-size format amr, got %s", got)
	}
}

func TestOptimalQualityMusicScenario(t *testing.T) {
	// The lossless format for 30 minutes of music with a 10 MB bound can
	// never resolve above the tier that fits; with these tables nothing
	// fits, so the floor tier comes back — never ultra.
	maxMB := 10.0
	dur := 30 * time.Minute
	got := OptimalQuality(OptimalQualityRequest{
		Format:           FormatWAV,
		RecordingType:    "music",
		MaxFileSizeMB:    &maxMB,
		ExpectedDuration: &dur,
	})
	if got == QualityUltra || got == QualityHigh {
		t.Errorf("expected low or medium, got %s", got)
	}
}

func TestOptimalFormatSizeScenario(t *testing.T) {
	got := OptimalFormat(OptimalFormatRequest{Quality: QualityMedium, PrioritizeSize: true})
	if got != FormatOpus && got != FormatAMR {
		t.Errorf("expected one of the two smallest formats at medium, got %s", got)
	}
}

func TestOptimalFormatPartialConstraintIsUnconstrained(t *testing.T) {
	// A bound without an expected duration cannot be evaluated; the
	// request degrades to the balanced default.
	maxMB := 1.0
	got := OptimalFormat(OptimalFormatRequest{Quality: QualityMedium, MaxFileSizeMB: &maxMB})
	if got != FormatAAC {
		t.Errorf("expected aac, got %s", got)
	}
}
