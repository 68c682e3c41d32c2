// Package audio selects recording codecs, quality tiers and full recording
// configurations from declarative inputs, and predicts output file size
// before capture starts. Everything here is a pure function over a static
// catalog: no I/O, no shared mutable state, safe for concurrent use.
package audio

import "time"

// OptimalFormatRequest carries the recognized options for OptimalFormat.
// MaxFileSizeMB and ExpectedDuration are independently optional; the size
// constraint only applies when both are present. Omitting both priority
// flags means "balanced".
type OptimalFormatRequest struct {
	Quality           Quality
	PrioritizeQuality bool
	PrioritizeSize    bool
	MaxFileSizeMB     *float64
	ExpectedDuration  *time.Duration
}

// OptimalQualityRequest carries the recognized options for OptimalQuality.
type OptimalQualityRequest struct {
	Format           Format
	RecordingType    string
	MaxFileSizeMB    *float64
	ExpectedDuration *time.Duration
}

// OptimalConfigurationRequest carries the recognized options for
// OptimalConfiguration.
type OptimalConfigurationRequest struct {
	RecordingType     string
	PrioritizeQuality bool
	PrioritizeSize    bool
	MaxFileSizeMB     *float64
	ExpectedDuration  *time.Duration
}

func sizeConstraint(maxFileSizeMB *float64, expectedDuration *time.Duration) *SizeConstraint {
	if maxFileSizeMB == nil || expectedDuration == nil {
		return nil
	}
	return &SizeConstraint{
		MaxFileSizeMB:    *maxFileSizeMB,
		ExpectedDuration: *expectedDuration,
	}
}

// OptimalFormat picks a codec for the request's priorities and constraint.
func OptimalFormat(req OptimalFormatRequest) Format {
	return SelectFormat(req.Quality, req.PrioritizeQuality, req.PrioritizeSize,
		sizeConstraint(req.MaxFileSizeMB, req.ExpectedDuration))
}

// OptimalQuality picks a quality tier for the request's format and
// recording type.
func OptimalQuality(req OptimalQualityRequest) Quality {
	return SelectQuality(req.Format, req.RecordingType,
		sizeConstraint(req.MaxFileSizeMB, req.ExpectedDuration))
}

// OptimalConfiguration assembles a full recording configuration for the
// request.
func OptimalConfiguration(req OptimalConfigurationRequest) RecordingConfiguration {
	return BuildConfiguration(req.RecordingType, req.PrioritizeQuality, req.PrioritizeSize,
		sizeConstraint(req.MaxFileSizeMB, req.ExpectedDuration))
}
