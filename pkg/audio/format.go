package audio

import (
	"errors"
	"fmt"
	"strings"
)

// Format identifies a supported recording codec.
type Format string

const (
	FormatWAV  Format = "wav"
	FormatFLAC Format = "flac"
	FormatAAC  Format = "aac"
	FormatMP3  Format = "mp3"
	FormatOpus Format = "opus"
	FormatAMR  Format = "amr"
)

// CompressionBand groups formats by their compression/fidelity trade-off.
type CompressionBand int

const (
	BandLossless CompressionBand = iota
	BandBalanced
	BandCompact
)

// ErrUnknownCombination indicates a format/quality pair with no byte-cost
// entry. The catalog covers the full cross-product, so hitting this for an
// enumerated pair is a table defect, not a runtime condition.
var ErrUnknownCombination = errors.New("unknown format/quality combination")

const bytesPerMB = 1024 * 1024

// kbpsBytesPerMinute converts a nominal codec bitrate to bytes per minute.
func kbpsBytesPerMinute(kbps float64) float64 {
	return kbps * 1000 / 8 * 60
}

// pcmBytesPerMinute is the raw cost of stereo s16le PCM at a sample rate.
func pcmBytesPerMinute(sampleRate float64) float64 {
	return sampleRate * 2 * 2 * 60
}

type formatSpec struct {
	band CompressionBand
	// compressionRatio is the typical output size relative to stereo PCM
	// at equal quality.
	compressionRatio float64
	variableBitrate  bool
	// bytesPerMinute holds the per-minute cost for every quality tier.
	// Liner PCM follows from sample rate arithmetic, FLAC sits near 58%
	// of PCM, and the lossy ladders use the codecs' published rates
	// (AAC 48/96/160/256 kbps, MP3 64/128/192/320, Opus 24/48/96/160,
	// AMR-NB/WB 6.6/12.2/18.25/23.85).
	bytesPerMinute map[Quality]float64
}

// catalogOrder fixes the declaration order reported by SupportedFormats and
// used for tie-breaking. Within each band, higher fidelity comes first.
var catalogOrder = []Format{
	FormatWAV,
	FormatFLAC,
	FormatAAC,
	FormatMP3,
	FormatOpus,
	FormatAMR,
}

// balancedDefault is returned when no priority flag and no constraint
// steer the format choice.
const balancedDefault = FormatAAC

var catalog = map[Format]formatSpec{
	FormatWAV: {
		band:             BandLossless,
		compressionRatio: 1.0,
		variableBitrate:  false,
		bytesPerMinute: map[Quality]float64{
			QualityLow:    pcmBytesPerMinute(16000),
			QualityMedium: pcmBytesPerMinute(22050),
			QualityHigh:   pcmBytesPerMinute(44100),
			QualityUltra:  pcmBytesPerMinute(48000),
		},
	},
	FormatFLAC: {
		band:             BandLossless,
		compressionRatio: 0.58,
		variableBitrate:  true,
		bytesPerMinute: map[Quality]float64{
			QualityLow:    pcmBytesPerMinute(16000) * 0.58,
			QualityMedium: pcmBytesPerMinute(22050) * 0.58,
			QualityHigh:   pcmBytesPerMinute(44100) * 0.58,
			QualityUltra:  pcmBytesPerMinute(48000) * 0.58,
		},
	},
	FormatAAC: {
		band:             BandBalanced,
		compressionRatio: 0.09,
		variableBitrate:  true,
		bytesPerMinute: map[Quality]float64{
			QualityLow:    kbpsBytesPerMinute(48),
			QualityMedium: kbpsBytesPerMinute(96),
			QualityHigh:   kbpsBytesPerMinute(160),
			QualityUltra:  kbpsBytesPerMinute(256),
		},
	},
	FormatMP3: {
		band:             BandBalanced,
		compressionRatio: 0.12,
		variableBitrate:  true,
		bytesPerMinute: map[Quality]float64{
			QualityLow:    kbpsBytesPerMinute(64),
			QualityMedium: kbpsBytesPerMinute(128),
			QualityHigh:   kbpsBytesPerMinute(192),
			QualityUltra:  kbpsBytesPerMinute(320),
		},
	},
	FormatOpus: {
		band:             BandCompact,
		compressionRatio: 0.045,
		variableBitrate:  true,
		bytesPerMinute: map[Quality]float64{
			QualityLow:    kbpsBytesPerMinute(24),
			QualityMedium: kbpsBytesPerMinute(48),
			QualityHigh:   kbpsBytesPerMinute(96),
			QualityUltra:  kbpsBytesPerMinute(160),
		},
	},
	FormatAMR: {
		band:             BandCompact,
		compressionRatio: 0.008,
		variableBitrate:  false,
		bytesPerMinute: map[Quality]float64{
			QualityLow:    kbpsBytesPerMinute(6.6),
			QualityMedium: kbpsBytesPerMinute(12.2),
			QualityHigh:   kbpsBytesPerMinute(18.25),
			QualityUltra:  kbpsBytesPerMinute(23.85),
		},
	},
}

// SupportedFormats returns every cataloged format in declaration order.
func SupportedFormats() []Format {
	out := make([]Format, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// ParseFormat resolves a caller-supplied format label.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := catalog[f]; !ok {
		return "", fmt.Errorf("unsupported format %q", s)
	}
	return f, nil
}

// Band reports the compression band a format belongs to.
func (f Format) Band() CompressionBand {
	return catalog[f].band
}

// SupportsVBR reports whether the codec supports variable bitrate.
func (f Format) SupportsVBR() bool {
	return catalog[f].variableBitrate
}

// CompressionRatio is the typical output size relative to stereo PCM.
func (f Format) CompressionRatio() float64 {
	return catalog[f].compressionRatio
}

func (f Format) String() string {
	return string(f)
}

// byteCostPerMinute returns the cataloged per-minute cost in bytes.
func byteCostPerMinute(format Format, quality Quality) (float64, error) {
	spec, ok := catalog[format]
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s", ErrUnknownCombination, format, quality)
	}
	cost, ok := spec.bytesPerMinute[quality]
	if !ok || cost <= 0 {
		return 0, fmt.Errorf("%w: %s/%s", ErrUnknownCombination, format, quality)
	}
	return cost, nil
}
