package checkout

import (
	"testing"
	"time"

	"bistro-chat-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotsAfternoon(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 3, 0, 0, time.UTC)
	slots := TimeSlots(now, models.LangEN)

	require.NotEmpty(t, slots)
	// 14:03 rounds up to 14:15, plus the prep buffer
	assert.Equal(t, "2:30 PM", slots[0])
	assert.Equal(t, "10:45 PM", slots[len(slots)-1])
}

func TestTimeSlotsOnTheQuarter(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	slots := TimeSlots(now, models.LangEN)
	require.NotEmpty(t, slots)
	assert.Equal(t, "2:15 PM", slots[0])
}

func TestTimeSlotsAreMonotonic(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 7, 0, 0, time.UTC)
	slots := TimeSlots(now, models.LangEN)
	require.Greater(t, len(slots), 1)

	prev, err := time.Parse("3:04 PM", slots[0])
	require.NoError(t, err)
	for _, s := range slots[1:] {
		cur, err := time.Parse("3:04 PM", s)
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, cur.Sub(prev), "slot %s", s)
		prev = cur
	}
}

func TestTimeSlotsLateNightFallback(t *testing.T) {
	for _, hhmm := range [][2]int{{22, 50}, {23, 30}, {22, 31}} {
		now := time.Date(2026, 8, 31, hhmm[0], hhmm[1], 0, 0, time.UTC)
		slots := TimeSlots(now, models.LangEN)
		assert.Equal(t, []string{"ASAP", "Tomorrow 10:00 AM"}, slots, "at %02d:%02d", hhmm[0], hhmm[1])
	}
}

func TestTimeSlotsBengaliDigits(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 3, 0, 0, time.UTC)
	slots := TimeSlots(now, models.LangBN)
	require.NotEmpty(t, slots)
	assert.Equal(t, "২:৩০ PM", slots[0])
	assert.NotContains(t, slots[0], "2")
}
