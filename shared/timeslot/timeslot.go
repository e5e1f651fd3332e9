// Package timeslot implements minute-of-day arithmetic and slot generation for
// resource operating hours, including windows that close after local midnight.
//
// Times inside a midnight-crossing window are compared in an extended minute
// coordinate (values past 1439 denote the next calendar day). DisplayMinutes
// folds an extended value back into [0, 1439] and is only used for rendering,
// never for comparisons.
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"courtside/shared/constant"
)

var (
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM or HH:MM:SS")
	ErrInvalidStep     = errors.New("step must be a positive number of minutes")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// Slot is a candidate bookable interval. Start and End are minutes since local
// midnight, already folded into [0, 1439]; End < Start means the slot ends on
// the following calendar day.
type Slot struct {
	Start int
	End   int
}

// ToMinutes parses an "HH:MM" or "HH:MM:SS" clock time into minutes since
// local midnight, range [0, 1439]. Seconds are accepted and discarded.
func ToMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	if len(parts) == 3 {
		seconds, err := strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
		}
	}

	return hours*60 + minutes, nil
}

// ResolveClose returns the closing time in extended minute coordinates. A close
// numerically at or before the open means the window runs past midnight, so a
// full day is added. This is the single source of truth for midnight crossing.
func ResolveClose(openMinutes, closeMinutes int) int {
	if closeMinutes <= openMinutes {
		return closeMinutes + constant.MinutesPerDay
	}

	return closeMinutes
}

// CrossesMidnight reports whether the open/close pair denotes a window that
// closes after local midnight.
func CrossesMidnight(openMinutes, closeMinutes int) bool {
	return ResolveClose(openMinutes, closeMinutes) != closeMinutes
}

// DisplayMinutes folds an extended minute value back into [0, 1439] for
// rendering. Never use the result for comparisons.
func DisplayMinutes(extendedMinutes int) int {
	return extendedMinutes % constant.MinutesPerDay
}

// ProjectIntoWindow aligns a stored 0-1439 time with a window's extended
// coordinate space. In a midnight-crossing window a raw time earlier than the
// open belongs to the next-day portion and is shifted by a full day; in a
// same-day window every raw time passes through unchanged, including times
// outside the window entirely.
func ProjectIntoWindow(rawMinutes, windowOpenMinutes, windowCloseMinutes int) int {
	if CrossesMidnight(windowOpenMinutes, windowCloseMinutes) && rawMinutes < windowOpenMinutes {
		return rawMinutes + constant.MinutesPerDay
	}

	return rawMinutes
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals touching at a boundary do
// not overlap. Both intervals must be in the same coordinate space.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// FormatMinutes renders a minute-of-day value (extended or not) as "HH:MM".
func FormatMinutes(minutes int) string {
	folded := DisplayMinutes(minutes)

	return fmt.Sprintf("%02d:%02d", folded/60, folded%60)
}

// Generate produces every candidate slot of durationMinutes that fits inside
// the open/close window, stepping by stepMinutes, ordered ascending. For a
// midnight-crossing window the displayed start of a next-day slot is smaller
// than the open time; the caller is responsible for any date roll-over.
func Generate(openTime, closeTime string, stepMinutes, durationMinutes int) ([]Slot, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}

	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	openMinutes, err := ToMinutes(openTime)
	if err != nil {
		return nil, err
	}

	rawClose, err := ToMinutes(closeTime)
	if err != nil {
		return nil, err
	}

	closeMinutes := ResolveClose(openMinutes, rawClose)

	slots := []Slot{}
	for t := openMinutes; t+durationMinutes <= closeMinutes; t += stepMinutes {
		slots = append(slots, Slot{
			Start: DisplayMinutes(t),
			End:   DisplayMinutes(t + durationMinutes),
		})
	}

	return slots, nil
}
