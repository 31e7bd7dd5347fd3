package timeutil

import (
	"fmt"
	"time"
)

// ScheduleDateLayout is the compact date format (YYYYMMDD) used for the
// scoreboard query parameter and for per-date output directories.
const ScheduleDateLayout = "20060102"

// KickoffTBD is the label rendered when a kickoff time cannot be parsed.
const KickoffTBD = "TIME TBD"

// kickoffLayout matches scoreboard event dates, e.g. 2025-11-15T19:30Z.
// Events carrying seconds or an explicit offset fall back to KickoffTBD.
const kickoffLayout = "2006-01-02T15:04Z"

// centralOffset shifts UTC kickoffs into U.S. Central time. A fixed offset
// ignores daylight saving on purpose so output is stable year-round.
const centralOffset = -6 * time.Hour

// ResolveRunDate returns the schedule date to process. An empty argument
// selects today; a malformed one also falls back to today and reports the
// problem through the returned error so callers can log it.
func ResolveRunDate(arg string, now time.Time) (string, error) {
	if arg == "" {
		return now.Format(ScheduleDateLayout), nil
	}
	if _, err := time.Parse(ScheduleDateLayout, arg); err != nil {
		return now.Format(ScheduleDateLayout), fmt.Errorf("invalid date %q: %w", arg, err)
	}
	return arg, nil
}

// FormatKickoff converts a raw scoreboard kickoff into the Central-time
// label drawn on the graphic, e.g. "1:30 PM CT". Unparsable input yields
// KickoffTBD so a graphic is still produced.
func FormatKickoff(raw string) string {
	kickoff, err := time.Parse(kickoffLayout, raw)
	if err != nil {
		return KickoffTBD
	}
	return kickoff.Add(centralOffset).Format("3:04 PM") + " CT"
}
