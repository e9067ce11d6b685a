package checkout

import (
	"strings"
	"time"

	"bistro-chat-api/models"
)

// closingHour is when the kitchen stops taking pickups (23:00 local)
const closingHour = 23

// prepBuffer is added on top of the next quarter-hour boundary
const prepBuffer = 15 * time.Minute

var bengaliDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// TimeSlots enumerates selectable pickup times: the current time
// rounded up to the next quarter hour, plus the prep buffer, then
// 15-minute increments strictly before closing. An empty window (late
// night) falls back to exactly two canned choices.
func TimeSlots(now time.Time, lang models.Language) []string {
	nextQuarter := ((now.Minute() + 14) / 15) * 15
	hourStart := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	start := hourStart.Add(time.Duration(nextQuarter)*time.Minute + prepBuffer)
	end := time.Date(now.Year(), now.Month(), now.Day(), closingHour, 0, 0, 0, now.Location())

	var slots []string
	for t := start; t.Before(end); t = t.Add(15 * time.Minute) {
		slots = append(slots, formatSlot(t, lang))
	}

	if len(slots) == 0 {
		if lang == models.LangBN {
			return []string{"যত দ্রুত সম্ভব", "আগামীকাল সকাল ১০:০০"}
		}
		return []string{"ASAP", "Tomorrow 10:00 AM"}
	}
	return slots
}

func formatSlot(t time.Time, lang models.Language) string {
	s := t.Format("3:04 PM")
	if lang == models.LangBN {
		return bengaliDigits.Replace(s)
	}
	return s
}
