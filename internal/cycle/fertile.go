package cycle

import "time"

// InFertileWindow reports whether date falls in the fertile window relative
// to anchorStart: [ovulationDay-FertileWindowLeadDays,
// ovulationDay+FertileWindowTrailDays], with ovulationDay = cycle -
// LutealPhaseDays. Returns false when no anchor is known.
func InFertileWindow(date time.Time, anchorStart time.Time, lengths Lengths) bool {
	if anchorStart.IsZero() || lengths.Cycle <= 0 {
		return false
	}
	offset := daysBetween(anchorStart, dateOnly(date))
	ovulationDay := lengths.Cycle - LutealPhaseDays
	return offset >= ovulationDay-FertileWindowLeadDays && offset <= ovulationDay+FertileWindowTrailDays
}
