package audio

import "fmt"

// incompatiblePairs lists nonsensical format/quality pairings. Capturing
// lossless audio at the lowest tier wastes the format without the fidelity,
// so the catalog flags those pairs. The denylist is advisory: selection may
// still return such a pair as a best-effort degradation.
var incompatiblePairs = map[Format]map[Quality]bool{
	FormatWAV:  {QualityLow: true},
	FormatFLAC: {QualityLow: true},
}

// IsFormatCompatible reports whether the pair has a cataloged byte-cost
// entry and is not denylisted. It never fails, including for values outside
// the enumerations.
func IsFormatCompatible(format Format, quality Quality) bool {
	if _, err := byteCostPerMinute(format, quality); err != nil {
		return false
	}
	return !incompatiblePairs[format][quality]
}

// RecommendedQualities returns the tiers the quality selector could actually
// settle on for this recording type and format: the profile's preferred tier
// and every tier below it, filtered for compatibility. Never empty; when
// filtering removes everything the lowest tier remains as the floor.
func RecommendedQualities(recordingType string, format Format) []Quality {
	preferred := ProfileFor(recordingType).PreferredQuality
	out := make([]Quality, 0, int(preferred)+1)
	for q := preferred; q >= QualityLow; q-- {
		if IsFormatCompatible(format, q) {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		out = append(out, QualityLow)
	}
	return out
}

// FormatRecommendation renders a human-readable summary of the choice. The
// exact wording is for display only; it always names the recording type.
func FormatRecommendation(format Format, quality Quality, recordingType string) string {
	profile := ProfileFor(recordingType)
	label := profile.RecordingType

	base := fmt.Sprintf("For %s recordings, %s at %s quality (%d Hz) is a good fit.",
		label, format, quality, quality.SampleRate())

	if !IsFormatCompatible(format, quality) {
		return fmt.Sprintf("%s Note: %s at %s quality is not a sensible pairing; consider %s quality instead.",
			base, format, quality, QualityMedium)
	}
	if quality < profile.PreferredQuality {
		return fmt.Sprintf("%s This is below the preferred %s tier for %s; expect reduced fidelity.",
			base, profile.PreferredQuality, label)
	}
	return base
}
