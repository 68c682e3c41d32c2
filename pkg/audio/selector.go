package audio

import "time"

// SizeConstraint is an optional hard upper bound on the predicted output
// size for an expected recording duration. Selection treats it as a ceiling
// and degrades best-effort when it cannot be met; it never fails.
type SizeConstraint struct {
	MaxFileSizeMB    float64
	ExpectedDuration time.Duration
}

// fits reports whether the pair's predicted size stays within the bound.
func (c *SizeConstraint) fits(format Format, quality Quality) bool {
	size, err := EstimateFileSize(format, quality, c.ExpectedDuration)
	if err != nil {
		return false
	}
	return size <= c.MaxFileSizeMB
}

// SelectQuality picks the quality tier for a format given the recording type.
// It starts at the profile's preferred tier; when a constraint is present it
// walks the tier order downward and returns the first tier that fits. When
// even the lowest tier misses the bound, the lowest tier is returned as the
// documented best-effort outcome; callers re-check the bound if they need
// strict enforcement.
func SelectQuality(format Format, recordingType string, constraint *SizeConstraint) Quality {
	return selectQuality(format, ProfileFor(recordingType).PreferredQuality, constraint)
}

func selectQuality(format Format, preferred Quality, constraint *SizeConstraint) Quality {
	if constraint == nil {
		return preferred
	}
	// Preference wins when it already fits; no search below it for a
	// theoretically smaller size.
	for q := preferred; q >= QualityLow; q-- {
		if constraint.fits(format, q) {
			return q
		}
	}
	return QualityLow
}

// SelectFormat picks a codec for the given quality tier and priority flags.
//
//   - prioritizeQuality: the costliest lossless-band format at that tier,
//     declaration order breaking ties. Beats prioritizeSize when both are set.
//   - prioritizeSize: the cheapest format at that tier.
//   - constraint only: the first format in declaration order that fits with
//     quality held fixed; none fitting, the cheapest format.
//   - neither: the catalog's balanced default.
func SelectFormat(quality Quality, prioritizeQuality, prioritizeSize bool, constraint *SizeConstraint) Format {
	switch {
	case prioritizeQuality:
		return costliestInBand(BandLossless, quality)
	case prioritizeSize:
		return cheapestFormat(quality)
	case constraint != nil:
		for _, f := range catalogOrder {
			if constraint.fits(f, quality) {
				return f
			}
		}
		return cheapestFormat(quality)
	default:
		return balancedDefault
	}
}

func costliestInBand(band CompressionBand, quality Quality) Format {
	var best Format
	bestCost := -1.0
	for _, f := range catalogOrder {
		if catalog[f].band != band {
			continue
		}
		cost, err := byteCostPerMinute(f, quality)
		if err != nil {
			continue
		}
		// Strict comparison keeps declaration order on ties.
		if cost > bestCost {
			best, bestCost = f, cost
		}
	}
	return best
}

func cheapestFormat(quality Quality) Format {
	var best Format
	bestCost := -1.0
	for _, f := range catalogOrder {
		cost, err := byteCostPerMinute(f, quality)
		if err != nil {
			continue
		}
		if bestCost < 0 || cost < bestCost {
			best, bestCost = f, cost
		}
	}
	return best
}
