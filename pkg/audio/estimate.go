package audio

import (
	"math"
	"time"
)

// EstimateFileSize predicts the output size in megabytes for the given
// format, quality tier and recording duration. The estimate is the cataloged
// per-minute byte cost scaled linearly by duration, rounded to two decimal
// places. It is monotone in duration and quality, and anti-monotone when
// moving to a more compressed format at equal quality.
func EstimateFileSize(format Format, quality Quality, duration time.Duration) (float64, error) {
	cost, err := byteCostPerMinute(format, quality)
	if err != nil {
		return 0, err
	}
	mb := cost * duration.Minutes() / bytesPerMB
	return math.Round(mb*100) / 100, nil
}
