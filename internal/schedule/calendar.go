package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// WeekStart rewinds a date to the most recent day whose weekday equals
// weekStartDay (0=Sun..6=Sat), at midnight.
func WeekStart(date time.Time, weekStartDay int) time.Time {
	day := midnightUTC(date)
	offset := (int(day.Weekday()) - weekStartDay + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekMeta describes one 7-day block of a year's week partition.
type WeekMeta struct {
	WeekNumber   int          `json:"weekNumber"`
	DayKeys      []DayKey     `json:"dayKeys"`
	Months       []time.Month `json:"months"`
	PrimaryMonth time.Month   `json:"primaryMonth"`
	RangeLabel   string       `json:"rangeLabel"`
}

// BuildWeeksForYear partitions a year into 7-day blocks, walking from the
// week containing Jan 1 through the week containing Dec 31. DayKeys lists
// only the days that fall inside the year, so the union across all weeks
// covers the year exactly once. Blocks straddling the year boundary belong
// to the year owning the block's start day, which is why the terminal
// block may spill into January of the next year.
func BuildWeeksForYear(year, weekStartDay int) []WeekMeta {
	if weekStartDay < 0 || weekStartDay > 6 {
		weekStartDay = 0
	}
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	start := WeekStart(jan1, weekStartDay)
	last := WeekStart(dec31, weekStartDay)

	var weeks []WeekMeta
	number := 0
	for ws := start; !ws.After(last); ws = ws.AddDate(0, 0, 7) {
		number++
		meta := WeekMeta{WeekNumber: number}

		monthDays := make(map[time.Month]int)
		for i := 0; i < 7; i++ {
			day := ws.AddDate(0, 0, i)
			if day.Year() != year {
				continue
			}
			meta.DayKeys = append(meta.DayKeys, KeyFor(day))
			if monthDays[day.Month()] == 0 {
				meta.Months = append(meta.Months, day.Month())
			}
			monthDays[day.Month()]++
		}
		if len(meta.DayKeys) == 0 {
			continue
		}

		// Ties go to the first month encountered in the block.
		best := 0
		for _, month := range meta.Months {
			if monthDays[month] > best {
				best = monthDays[month]
				meta.PrimaryMonth = month
			}
		}

		weekEnd := ws.AddDate(0, 0, 6)
		meta.RangeLabel = rangeLabel(ws, weekEnd)
		weeks = append(weeks, meta)
	}
	return weeks
}

func rangeLabel(start, end time.Time) string {
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d–%d", start.Month().String()[:3], start.Day(), end.Day())
	}
	return fmt.Sprintf("%s %d – %s %d",
		start.Month().String()[:3], start.Day(), end.Month().String()[:3], end.Day())
}

var isoWeekPattern = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)

// FormatISOWeekInput renders a date as the "2024-W11" value used by
// week input fields, following ISO-8601 week numbering.
func FormatISOWeekInput(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ParseISOWeekInput parses a "2024-W11" value into the Monday of that
// ISO week. Malformed input reports ok=false rather than an error.
func ParseISOWeekInput(value string) (time.Time, bool) {
	m := isoWeekPattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return time.Time{}, false
	}

	// Jan 4 is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, -((int(jan4.Weekday())+6)%7))
	monday := week1Monday.AddDate(0, 0, (week-1)*7)

	// Reject week numbers past the year's last ISO week (e.g. W53 in a
	// 52-week year).
	if isoYear, isoWeek := monday.ISOWeek(); isoYear != year || isoWeek != week {
		return time.Time{}, false
	}
	return monday, true
}
