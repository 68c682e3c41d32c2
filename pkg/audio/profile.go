package audio

import "strings"

// RecordingTypeProfile carries the defaults derived from a recording-purpose
// label: preferred quality tier, channel layout and whether noise reduction
// is worth enabling.
type RecordingTypeProfile struct {
	RecordingType    string
	PreferredQuality Quality
	Channels         uint8
	NoiseReduction   bool
}

const (
	channelsMono   = 1
	channelsStereo = 2
)

var recordingTypeProfiles = map[string]RecordingTypeProfile{
	"voice":     {PreferredQuality: QualityMedium, Channels: channelsMono, NoiseReduction: true},
	"memo":      {PreferredQuality: QualityMedium, Channels: channelsMono, NoiseReduction: true},
	"speech":    {PreferredQuality: QualityMedium, Channels: channelsMono, NoiseReduction: true},
	"dictation": {PreferredQuality: QualityMedium, Channels: channelsMono, NoiseReduction: true},
	"lecture":   {PreferredQuality: QualityMedium, Channels: channelsMono, NoiseReduction: true},
	"meeting":   {PreferredQuality: QualityHigh, Channels: channelsMono, NoiseReduction: true},
	"interview": {PreferredQuality: QualityHigh, Channels: channelsMono, NoiseReduction: true},
	"music":     {PreferredQuality: QualityUltra, Channels: channelsStereo, NoiseReduction: false},
}

// defaultProfile covers unknown and empty labels. Stereo at medium quality
// with no noise reduction is safe for anything a caller might record.
var defaultProfile = RecordingTypeProfile{
	RecordingType:    "default",
	PreferredQuality: QualityMedium,
	Channels:         channelsStereo,
	NoiseReduction:   false,
}

// ProfileFor resolves a recording-type label to its profile. Labels are
// matched case- and space-insensitively; unknown labels never fail, they
// resolve to the default profile.
func ProfileFor(recordingType string) RecordingTypeProfile {
	key := strings.ToLower(strings.TrimSpace(recordingType))
	if profile, ok := recordingTypeProfiles[key]; ok {
		profile.RecordingType = key
		return profile
	}
	return defaultProfile
}
