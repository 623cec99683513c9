// Package ics renders a schedule store as an iCalendar feed. Recurring
// entries are emitted as RRULE-bearing VEVENTs rather than pre-expanded
// instances, so subscribing clients do their own expansion.
package ics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/serdarsalim/timespent-sub000/internal/schedule"
)

const productID = "-//timespent//schedule//EN"

var rruleWeekdays = []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Build renders the store as an ICS document. Entries with an
// unparseable day key are skipped; the feed only carries what can be
// dated.
func Build(store schedule.Store, calendarName string, now time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if calendarName != "" {
		cal.SetName(calendarName)
		cal.SetXWRCalName(calendarName)
	}

	keys := make([]schedule.DayKey, 0, len(store))
	for key := range store {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	for _, key := range keys {
		day, ok := key.Parse()
		if !ok {
			continue
		}
		for i, entry := range store[key] {
			event := cal.AddEvent(fmt.Sprintf("%s-%d@timespent", key, i))
			event.SetDtStampTime(now)
			event.SetSummary(entry.Title)

			start, timed := combine(day, entry.Time)
			if timed {
				event.SetStartAt(start)
				if end, ok := combine(day, entry.EndTime); ok {
					if !end.After(start) {
						end = end.AddDate(0, 0, 1)
					}
					event.SetEndAt(end)
				}
			} else {
				event.SetAllDayStartAt(day)
				event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			}

			if entry.Recurring() {
				rule, err := recurrenceRule(entry, start)
				if err != nil {
					return "", fmt.Errorf("entry %s[%d]: %w", key, i, err)
				}
				event.AddProperty(ical.ComponentProperty(ical.PropertyRrule), rule)
				for _, skip := range entry.SkipDates {
					skipDay, ok := skip.Parse()
					if !ok {
						continue
					}
					ex, _ := combine(skipDay, entry.Time)
					event.AddProperty(ical.ComponentProperty(ical.PropertyExdate), ex.UTC().Format("20060102T150405Z"))
				}
			}
		}
	}

	return cal.Serialize(), nil
}

// recurrenceRule translates an entry's repeat settings into an RRULE
// value. Daily entries restricted to weekdays become a weekly BYDAY
// rule, which is the same occurrence set.
func recurrenceRule(entry schedule.Entry, start time.Time) (string, error) {
	opt := rrule.ROption{Dtstart: start}

	switch entry.Repeat {
	case schedule.RepeatDaily:
		if len(entry.RepeatDays) > 0 {
			opt.Freq = rrule.WEEKLY
			for _, d := range entry.RepeatDays {
				if d >= 0 && d < len(rruleWeekdays) {
					opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d])
				}
			}
		} else {
			opt.Freq = rrule.DAILY
		}
	case schedule.RepeatWeekly:
		opt.Freq = rrule.WEEKLY
	case schedule.RepeatBiweekly:
		opt.Freq = rrule.WEEKLY
		opt.Interval = 2
	case schedule.RepeatMonthly:
		opt.Freq = rrule.MONTHLY
	default:
		return "", fmt.Errorf("unknown repeat %q", entry.Repeat)
	}

	if entry.RepeatUntil != "" {
		if until, ok := entry.RepeatUntil.Parse(); ok {
			// RepeatUntil is inclusive, so the UNTIL boundary sits at
			// the end of that day.
			opt.Until = until.Add(24*time.Hour - time.Second)
		}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("build rrule: %w", err)
	}
	return rule.OrigOptions.RRuleString(), nil
}

// combine anchors a wall-clock "15:04" value onto a day. The second
// return is false when the value is empty or malformed, which callers
// treat as an all-day entry.
func combine(day time.Time, clock string) (time.Time, bool) {
	if clock == "" {
		return day, false
	}
	parsed, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return day, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC), true
}
