package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
)

func newTestExportService(scheduleRows []models.ScheduleRow, ratings []models.Rating, notes []models.WeeklyNote) *ExportService {
	schedules := newTestScheduleService(&mockScheduleRepo{rows: scheduleRows}, nil, nil)
	journal, mocks := newTestJournalService()
	mocks.ratings.ratings = ratings
	mocks.notes.weekly = notes
	return NewExportService(schedules, journal, zap.NewNop(), ExportConfig{Enabled: true, CalendarName: "timespent"})
}

func TestExportServiceScheduleCSV(t *testing.T) {
	svc := newTestExportService([]models.ScheduleRow{
		{DayKey: "2026-3-9", Position: 0, Time: "9:00", Title: "Standup"},
	}, nil, nil)

	out, err := svc.ScheduleCSV(context.Background(), userPrincipal("u-1"))
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "day_key,position,time"))
	assert.Contains(t, text, "2026-3-9,0,9:00,,Standup")
}

func TestExportServiceRatingsCSVSorted(t *testing.T) {
	svc := newTestExportService(nil, []models.Rating{
		{DayKey: "2026-3-12", Score: 2},
		{DayKey: "2026-3-9", Score: 4, Note: "good day"},
	}, nil)

	out, err := svc.RatingsCSV(context.Background(), userPrincipal("u-1"))
	require.NoError(t, err)

	text := string(out)
	first := strings.Index(text, "2026-3-9")
	second := strings.Index(text, "2026-3-12")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
	assert.Contains(t, text, "good day")
}

func TestExportServiceWeekReportPDF(t *testing.T) {
	svc := newTestExportService([]models.ScheduleRow{
		{DayKey: "2026-3-9", Position: 0, Time: "9:00", Title: "Standup"},
	}, []models.Rating{
		{DayKey: "2026-3-9", Score: 4},
	}, []models.WeeklyNote{
		{WeekKey: "2026-W11", Body: "steady week"},
	})

	out, err := svc.WeekReportPDF(context.Background(), userPrincipal("u-1"), "2026-W11")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestExportServiceWeekReportPDFInvalidWeek(t *testing.T) {
	svc := newTestExportService(nil, nil, nil)

	_, err := svc.WeekReportPDF(context.Background(), userPrincipal("u-1"), "week eleven")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportServiceCalendarICS(t *testing.T) {
	svc := newTestExportService([]models.ScheduleRow{
		{DayKey: "2026-3-9", Position: 0, Time: "9:00", EndTime: "9:30", Title: "Standup", Repeat: "weekly"},
	}, nil, nil)

	out, err := svc.CalendarICS(context.Background(), userPrincipal("u-1"))
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "X-WR-CALNAME:timespent")
	assert.Contains(t, text, "SUMMARY:Standup")
	assert.Contains(t, text, "RRULE:")
}

func TestExportServiceDisabled(t *testing.T) {
	schedules := newTestScheduleService(&mockScheduleRepo{}, nil, nil)
	journal, _ := newTestJournalService()
	svc := NewExportService(schedules, journal, zap.NewNop(), ExportConfig{Enabled: false})

	_, err := svc.ScheduleCSV(context.Background(), userPrincipal("u-1"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrExportsDisabled.Code, appErrors.FromError(err).Code)
}
