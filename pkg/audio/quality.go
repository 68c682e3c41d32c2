package audio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Quality is an ordered fidelity tier, independent of format.
// The total order low < medium < high < ultra drives downgrade walks.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityUltra
)

var qualityNames = map[Quality]string{
	QualityLow:    "low",
	QualityMedium: "medium",
	QualityHigh:   "high",
	QualityUltra:  "ultra",
}

// qualitySampleRates maps each tier to its implied capture sample rate.
var qualitySampleRates = map[Quality]uint32{
	QualityLow:    16000,
	QualityMedium: 22050,
	QualityHigh:   44100,
	QualityUltra:  48000,
}

// Qualities returns every tier in ascending order.
func Qualities() []Quality {
	return []Quality{QualityLow, QualityMedium, QualityHigh, QualityUltra}
}

// ParseQuality resolves a caller-supplied quality label.
func ParseQuality(s string) (Quality, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for q, name := range qualityNames {
		if name == key {
			return q, nil
		}
	}
	return QualityLow, fmt.Errorf("unsupported quality %q", s)
}

// SampleRate is the capture sample rate implied by the tier.
func (q Quality) SampleRate() uint32 {
	return qualitySampleRates[q]
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quality(%d)", int(q))
}

// MarshalJSON renders the tier by name so API payloads stay readable.
func (q Quality) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

func (q *Quality) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseQuality(name)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
