package audio

import (
	"math"
	"testing"
	"time"
)

func TestEstimateQualityMonotonicity(t *testing.T) {
	durations := []time.Duration{30 * time.Second, 5 * time.Minute, time.Hour}
	for _, f := range SupportedFormats() {
		for _, d := range durations {
			prev := -1.0
			for _, q := range Qualities() {
				size, err := EstimateFileSize(f, q, d)
				if err != nil {
					t.Fatalf("%s/%s: unexpected error: %v", f, q, err)
				}
				if size < prev {
					t.Errorf("%s over %v: size at %s (%.2f) below previous tier (%.2f)", f, d, q, size, prev)
				}
				prev = size
			}
		}
	}
}

func TestEstimateDurationLinearity(t *testing.T) {
	for _, f := range SupportedFormats() {
		for _, q := range Qualities() {
			single, err := EstimateFileSize(f, q, 10*time.Minute)
			if err != nil {
				t.Fatalf("%s/%s: %v", f, q, err)
			}
			double, err := EstimateFileSize(f, q, 20*time.Minute)
			if err != nil {
				t.Fatalf("%s/%s: %v", f, q, err)
			}
			// Two-decimal rounding of each estimate allows a cent of drift.
			if math.Abs(double-2*single) > 0.02 {
				t.Errorf("%s/%s: 20min estimate %.2f is not twice the 10min estimate %.2f", f, q, double, single)
			}
		}
	}
}

func TestEstimateCompressionOrdering(t *testing.T) {
	// At equal quality and duration the catalog orders formats strictly by
	// compression: wav > flac > mp3 > aac > opus > amr.
	byCompression := []Format{FormatWAV, FormatFLAC, FormatMP3, FormatAAC, FormatOpus, FormatAMR}
	for _, q := range Qualities() {
		prev := math.Inf(1)
		for _, f := range byCompression {
			size, err := EstimateFileSize(f, q, 5*time.Minute)
			if err != nil {
				t.Fatalf("%s/%s: %v", f, q, err)
			}
			if size >= prev {
				t.Errorf("at %s quality: %s estimate %.2f not strictly below %.2f", q, f, size, prev)
			}
			prev = size
		}
	}
}

func TestEstimateLosslessVersusLossy(t *testing.T) {
	pcm, err := EstimateFileSize(FormatWAV, QualityMedium, 5*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	lossy, err := EstimateFileSize(FormatOpus, QualityMedium, 5*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if pcm <= lossy {
		t.Errorf("PCM estimate %.2f should exceed high-compression lossy estimate %.2f", pcm, lossy)
	}
}

func TestEstimateDeterminism(t *testing.T) {
	first, err := EstimateFileSize(FormatAAC, QualityHigh, 42*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		again, err := EstimateFileSize(FormatAAC, QualityHigh, 42*time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("estimate changed between identical calls: %.4f vs %.4f", first, again)
		}
	}
}

func TestEstimateTwoDecimalRounding(t *testing.T) {
	size, err := EstimateFileSize(FormatMP3, QualityMedium, 7*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if size != math.Round(size*100)/100 {
		t.Errorf("estimate %.10f carries more than two decimal places", size)
	}
}

func TestEstimateUnknownFormat(t *testing.T) {
	if _, err := EstimateFileSize(Format("ogg"), QualityMedium, time.Minute); err == nil {
		t.Error("expected an error for a format outside the catalog")
	}
}

func TestByteCostCrossProductCoverage(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) == 0 {
		t.Fatal("catalog must not be empty")
	}
	for _, f := range formats {
		for _, q := range Qualities() {
			cost, err := byteCostPerMinute(f, q)
			if err != nil {
				t.Errorf("%s/%s: missing byte-cost entry: %v", f, q, err)
			}
			if cost <= 0 {
				t.Errorf("%s/%s: non-positive byte cost %f", f, q, cost)
			}
		}
	}
}
