package audio

// RecordingConfiguration is the assembled recording plan handed to the
// capture pipeline. It is a plain immutable result value; nothing in this
// package retains or mutates it after construction.
type RecordingConfiguration struct {
	Format          Format  `json:"format"`
	Quality         Quality `json:"quality"`
	SampleRate      uint32  `json:"sampleRate"`
	Channels        uint8   `json:"channels"`
	NoiseReduction  bool    `json:"noiseReduction"`
	VariableBitrate bool    `json:"variableBitrate"`
	// EstimatedMBPerMinute is the predicted growth rate at the chosen pair.
	EstimatedMBPerMinute float64 `json:"estimatedMbPerMinute"`
}

// BuildConfiguration assembles a full recording configuration in two passes.
// Format choice needs a quality and quality choice needs a format, so the
// profile's preferred tier serves as the provisional quality for the format
// pass, then the quality pass may downgrade it against the real constraint.
// Chaining SelectFormat and SelectQuality by hand in that order yields the
// same configuration.
func BuildConfiguration(recordingType string, prioritizeQuality, prioritizeSize bool, constraint *SizeConstraint) RecordingConfiguration {
	profile := ProfileFor(recordingType)
	format := SelectFormat(profile.PreferredQuality, prioritizeQuality, prioritizeSize, constraint)
	quality := selectQuality(format, profile.PreferredQuality, constraint)

	perMinute := 0.0
	if cost, err := byteCostPerMinute(format, quality); err == nil {
		perMinute = cost / bytesPerMB
	}

	return RecordingConfiguration{
		Format:               format,
		Quality:              quality,
		SampleRate:           quality.SampleRate(),
		Channels:             profile.Channels,
		NoiseReduction:       profile.NoiseReduction,
		VariableBitrate:      format.SupportsVBR(),
		EstimatedMBPerMinute: perMinute,
	}
}
