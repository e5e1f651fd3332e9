package timeslot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/shared/timeslot"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "morning", value: "08:00", want: 480},
		{name: "with seconds", value: "22:30:00", want: 1350},
		{name: "end of day", value: "23:59", want: 1439},
		{name: "missing minutes", value: "08", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "10:60", wantErr: true},
		{name: "garbage", value: "ten past nine", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeslot.ToMinutes(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveClose(t *testing.T) {
	// 08:00 - 22:00 stays as-is
	assert.Equal(t, 1320, timeslot.ResolveClose(480, 1320))

	// 08:00 - 01:30 closes after midnight
	assert.Equal(t, 1530, timeslot.ResolveClose(480, 90))

	// close equal to open is treated as a full-day window
	assert.Equal(t, 480+1440, timeslot.ResolveClose(480, 480))
}

func TestCrossesMidnight(t *testing.T) {
	assert.False(t, timeslot.CrossesMidnight(480, 1320))
	assert.True(t, timeslot.CrossesMidnight(480, 90))
}

func TestProjectIntoWindow(t *testing.T) {
	// 00:30 inside an 08:00-01:30 window maps to minute 1470
	assert.Equal(t, 1470, timeslot.ProjectIntoWindow(30, 480, 90))

	// 09:00 inside the same window is untouched
	assert.Equal(t, 540, timeslot.ProjectIntoWindow(540, 480, 90))

	// 00:30 against a same-day 08:00-22:00 window stays on the same day
	assert.Equal(t, 30, timeslot.ProjectIntoWindow(30, 480, 1320))

	// in-window time of a same-day window is untouched
	assert.Equal(t, 540, timeslot.ProjectIntoWindow(540, 480, 1320))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{name: "disjoint", aStart: 480, aEnd: 540, bStart: 600, bEnd: 660, want: false},
		{name: "back to back", aStart: 480, aEnd: 540, bStart: 540, bEnd: 600, want: false},
		{name: "partial overlap", aStart: 480, aEnd: 570, bStart: 540, bEnd: 600, want: true},
		{name: "contained", aStart: 480, aEnd: 600, bStart: 510, bEnd: 540, want: true},
		{name: "identical", aStart: 480, aEnd: 540, bStart: 480, bEnd: 540, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeslot.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, timeslot.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "08:00", timeslot.FormatMinutes(480))
	assert.Equal(t, "00:30", timeslot.FormatMinutes(1470))
	assert.Equal(t, "00:00", timeslot.FormatMinutes(1440))
}

func TestGenerate(t *testing.T) {
	slots, err := timeslot.Generate("08:00", "22:00", 30, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	first := slots[0]
	assert.Equal(t, 480, first.Start)
	assert.Equal(t, 540, first.End)

	last := slots[len(slots)-1]
	assert.Equal(t, 1260, last.Start) // 21:00
	assert.Equal(t, 1320, last.End)   // 22:00

	for _, slot := range slots {
		assert.NotEqual(t, 1320, slot.Start, "no slot may start at closing time")
	}
}

func TestGenerate_MidnightCrossing(t *testing.T) {
	slots, err := timeslot.Generate("08:00", "01:30", 30, 60)
	require.NoError(t, err)

	var hasMidnightSlot bool

	for _, slot := range slots {
		// 01:00 + 60min = 1560 extended, past the 01:30 close at 1530
		assert.NotEqual(t, 60, slot.Start, "no slot may start at 01:00")

		if slot.Start == 0 && slot.End == 60 {
			hasMidnightSlot = true
		}
	}

	assert.True(t, hasMidnightSlot, "expected the 00:00-01:00 slot to be generated")

	// slots are emitted in ascending extended order; the displayed start of the
	// final slot belongs to the next calendar day
	last := slots[len(slots)-1]
	assert.Equal(t, 30, last.Start)
	assert.Equal(t, 90, last.End)
}

func TestGenerate_InvalidInput(t *testing.T) {
	_, err := timeslot.Generate("25:00", "22:00", 30, 60)
	assert.ErrorIs(t, err, timeslot.ErrInvalidTime)

	_, err = timeslot.Generate("08:00", "22:00", 0, 60)
	assert.ErrorIs(t, err, timeslot.ErrInvalidStep)

	_, err = timeslot.Generate("08:00", "22:00", 30, -15)
	assert.ErrorIs(t, err, timeslot.ErrInvalidDuration)
}
