package audio

import (
	"testing"
	"time"
)

func TestBuildConfigurationProfileDefaults(t *testing.T) {
	tests := []struct {
		recordingType  string
		format         Format
		quality        Quality
		channels       uint8
		noiseReduction bool
	}{
		{"voice", FormatAAC, QualityMedium, 1, true},
		{"meeting", FormatAAC, QualityHigh, 1, true},
		{"music", FormatAAC, QualityUltra, 2, false},
		{"unknown-thing", FormatAAC, QualityMedium, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.recordingType, func(t *testing.T) {
			cfg := BuildConfiguration(tt.recordingType, false, false, nil)
			if cfg.Format != tt.format {
				t.Errorf("format: expected %s, got %s", tt.format, cfg.Format)
			}
			if cfg.Quality != tt.quality {
				t.Errorf("quality: expected %s, got %s", tt.quality, cfg.Quality)
			}
			if cfg.Channels != tt.channels {
				t.Errorf("channels: expected %d, got %d", tt.channels, cfg.Channels)
			}
			if cfg.NoiseReduction != tt.noiseReduction {
				t.Errorf("noise reduction: expected %t", tt.noiseReduction)
			}
			if cfg.SampleRate != tt.quality.SampleRate() {
				t.Errorf("sample rate: expected %d, got %d", tt.quality.SampleRate(), cfg.SampleRate)
			}
			if cfg.VariableBitrate != tt.format.SupportsVBR() {
				t.Errorf("vbr flag must follow the format")
			}
			if cfg.EstimatedMBPerMinute <= 0 {
				t.Errorf("estimated rate must be positive, got %f", cfg.EstimatedMBPerMinute)
			}
		})
	}
}

func TestBuildConfigurationMatchesManualChain(t *testing.T) {
	// The composer is reproducible by chaining the selectors in its exact
	// order: format at the profile's provisional quality, then quality on
	// the chosen format.
	constraints := []*SizeConstraint{
		nil,
		constraint(5, 10*time.Minute),
		constraint(50, 30*time.Minute),
		constraint(0.01, time.Hour),
	}
	types := []string{"voice", "meeting", "music", "lecture", "???"}
	flags := []struct{ q, s bool }{{false, false}, {true, false}, {false, true}, {true, true}}

	for _, rt := range types {
		for _, fl := range flags {
			for _, c := range constraints {
				composed := BuildConfiguration(rt, fl.q, fl.s, c)

				profile := ProfileFor(rt)
				format := SelectFormat(profile.PreferredQuality, fl.q, fl.s, c)
				quality := SelectQuality(format, rt, c)

				if composed.Format != format || composed.Quality != quality {
					t.Errorf("%s q=%t s=%t c=%v: composer (%s/%s) diverges from manual chain (%s/%s)",
						rt, fl.q, fl.s, c, composed.Format, composed.Quality, format, quality)
				}
			}
		}
	}
}

func TestBuildConfigurationConstraintSatisfiedWhenFeasible(t *testing.T) {
	// 5 MB over 10 minutes is feasible for several lossy pairs; the
	// returned configuration must fit the bound.
	c := constraint(5, 10*time.Minute)
	cfg := BuildConfiguration("meeting", false, false, c)
	size, err := EstimateFileSize(cfg.Format, cfg.Quality, c.ExpectedDuration)
	if err != nil {
		t.Fatal(err)
	}
	if size > c.MaxFileSizeMB {
		t.Errorf("configuration %s/%s predicts %.2f MB, above the %.2f MB bound",
			cfg.Format, cfg.Quality, size, c.MaxFileSizeMB)
	}
}

func TestBuildConfigurationGracefulDegradation(t *testing.T) {
	// Nothing fits a bound this tight; the composer returns the minimal
	// size pair instead of failing.
	cfg := BuildConfiguration("meeting", false, false, constraint(0.001, time.Hour))
	if cfg.Format != FormatAMR || cfg.Quality != QualityLow {
		t.Errorf("expected the minimal-size pair amr/low, got %s/%s", cfg.Format, cfg.Quality)
	}
}

func TestOptimalConfigurationDeterminism(t *testing.T) {
	maxMB := 25.0
	dur := 45 * time.Minute
	req := OptimalConfigurationRequest{
		RecordingType:    "interview",
		PrioritizeSize:   true,
		MaxFileSizeMB:    &maxMB,
		ExpectedDuration: &dur,
	}
	first := OptimalConfiguration(req)
	for i := 0; i < 50; i++ {
		if OptimalConfiguration(req) != first {
			t.Fatal("identical requests produced different configurations")
		}
	}
}
