package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/ics"
	"github.com/serdarsalim/timespent-sub000/internal/models"
	"github.com/serdarsalim/timespent-sub000/internal/schedule"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
	"github.com/serdarsalim/timespent-sub000/pkg/export"
)

// ExportConfig controls the export endpoints.
type ExportConfig struct {
	Enabled      bool
	CalendarName string
}

// ExportService renders the caller's data as downloadable documents:
// schedule and ratings as CSV, a week report as PDF and the schedule as
// an iCalendar feed.
type ExportService struct {
	schedules *ScheduleService
	journal   *JournalService
	logger    *zap.Logger
	config    ExportConfig
}

// NewExportService constructs an ExportService instance.
func NewExportService(schedules *ScheduleService, journal *JournalService, logger *zap.Logger, config ExportConfig) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{schedules: schedules, journal: journal, logger: logger, config: config}
}

func (s *ExportService) guard() error {
	if !s.config.Enabled {
		return appErrors.Clone(appErrors.ErrExportsDisabled, "exports are disabled")
	}
	return nil
}

// ScheduleCSV flattens the full schedule document into CSV rows.
func (s *ExportService) ScheduleCSV(ctx context.Context, p Principal) ([]byte, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	store, err := s.schedules.Load(ctx, p)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Columns: []string{"day_key", "position", "time", "end_time", "title", "color", "repeat", "repeat_until", "repeat_days", "skip_dates"},
	}
	for _, row := range schedule.ToRows(store, nil) {
		table.Rows = append(table.Rows, []string{
			row.DayKey, fmt.Sprintf("%d", row.Position), row.Time, row.EndTime,
			row.Title, row.Color, row.Repeat, row.RepeatUntil, row.RepeatDays, row.SkipDates,
		})
	}
	return export.CSV(table)
}

// RatingsCSV dumps the productivity ratings ordered by day.
func (s *ExportService) RatingsCSV(ctx context.Context, p Principal) ([]byte, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	ratings, err := s.journal.Ratings(ctx, p)
	if err != nil {
		return nil, err
	}
	sort.Slice(ratings, func(i, j int) bool {
		return schedule.DayKey(ratings[i].DayKey).Before(schedule.DayKey(ratings[j].DayKey))
	})

	table := export.Table{Columns: []string{"day_key", "score", "note"}}
	for _, r := range ratings {
		table.Rows = append(table.Rows, []string{r.DayKey, fmt.Sprintf("%d", r.Score), r.Note})
	}
	return export.CSV(table)
}

// WeekReportPDF renders one week of occurrences, ratings and the weekly
// note as a printable report. The week parameter uses the ISO form
// "2024-W11".
func (s *ExportService) WeekReportPDF(ctx context.Context, p Principal, week string) ([]byte, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	weekStart, ok := schedule.ParseISOWeekInput(week)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid week value")
	}

	store, err := s.schedules.Load(ctx, p)
	if err != nil {
		return nil, err
	}
	ratings, err := s.journal.Ratings(ctx, p)
	if err != nil {
		return nil, err
	}
	notes, err := s.journal.WeeklyNotes(ctx, p)
	if err != nil {
		return nil, err
	}

	ratingByDay := make(map[string]models.Rating, len(ratings))
	for _, r := range ratings {
		ratingByDay[r.DayKey] = r
	}

	table := export.Table{Columns: []string{"Day", "Time", "Title", "Rating"}}
	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		key := string(schedule.KeyFor(day))
		occurrences := schedule.OccurrencesOn(store, day)
		schedule.SortByTime(occurrences)

		score := ""
		if r, ok := ratingByDay[key]; ok {
			score = fmt.Sprintf("%d", r.Score)
		}
		if len(occurrences) == 0 {
			table.Rows = append(table.Rows, []string{day.Format("Mon Jan 2"), "", "", score})
			continue
		}
		for i, occ := range occurrences {
			label, rating := "", ""
			if i == 0 {
				label, rating = day.Format("Mon Jan 2"), score
			}
			table.Rows = append(table.Rows, []string{label, occ.Entry.Time, occ.Entry.Title, rating})
		}
	}

	var sections []export.Section
	for _, n := range notes {
		if n.WeekKey == week {
			sections = append(sections, export.Section{Heading: "Weekly note", Body: n.Body})
			break
		}
	}

	title := fmt.Sprintf("Week report %s", week)
	return export.PDF(table, title, sections)
}

// CalendarICS renders the schedule as an iCalendar feed, recurring
// entries included as RRULEs.
func (s *ExportService) CalendarICS(ctx context.Context, p Principal) ([]byte, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	store, err := s.schedules.Load(ctx, p)
	if err != nil {
		return nil, err
	}

	name := s.config.CalendarName
	if name == "" {
		name = "timespent"
	}
	out, err := ics.Build(store, name, time.Now().UTC())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build calendar feed")
	}
	return []byte(out), nil
}
