package audio

import (
	"encoding/json"
	"testing"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		input    string
		expected Quality
		wantErr  bool
	}{
		{"low", QualityLow, false},
		{"MEDIUM", QualityMedium, false},
		{" high ", QualityHigh, false},
		{"ultra", QualityUltra, false},
		{"extreme", QualityLow, true},
		{"", QualityLow, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: expected %t, got %v", tt.wantErr, err)
			}
			if err == nil && got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range SupportedFormats() {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("%s: expected round trip, got %s (%v)", f, got, err)
		}
	}
	if _, err := ParseFormat("wma"); err == nil {
		t.Error("expected error for uncataloged format")
	}
}

func TestQualityJSONRoundTrip(t *testing.T) {
	for _, q := range Qualities() {
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		var back Quality
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		if back != q {
			t.Errorf("expected %s, got %s", q, back)
		}
	}
}

func TestQualitySampleRates(t *testing.T) {
	expected := map[Quality]uint32{
		QualityLow:    16000,
		QualityMedium: 22050,
		QualityHigh:   44100,
		QualityUltra:  48000,
	}
	for q, rate := range expected {
		if q.SampleRate() != rate {
			t.Errorf("%s: expected %d Hz, got %d", q, rate, q.SampleRate())
		}
	}
}
